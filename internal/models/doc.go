// Package models defines the data shapes shared by the resolver, the metadata service and persistence.
//
// Two categories of types:
//
// 1. Data Transfer Objects: normalized YouTube Data API results
//   - [Channel] : channel metadata with refined topic categories
//   - [Video] : video metadata with a human readable category
//   - [ChannelVideos] : one page of a channel's uploads
//
// 2. Persistent Entities: database-backed models
//   - [AddedVideo] : a video the user marked as added to their library
//
// Persistent entities implement [Model]; [Repository] describes CRUD access to them.
package models
