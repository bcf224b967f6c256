// Package services implements the collaborators the resolver and CLI talk to.
//
// # Channel page lookup
//
// [PageLookup] satisfies [resolver.ChannelLookup]. It fetches a public channel page
// (https://www.youtube.com/user/<name> or https://www.youtube.com/<name>), finds the
// <link rel="canonical"> element with goquery and returns path segment 4 of its href.
// Requests are paced with a shared [rate.Limiter]; nothing is retried.
//
// # Metadata
//
// [TubeService] implements [MetadataService] on the YouTube Data API v3 client.
// Credentials are passed explicitly through [TubeOptions]: an API key is attached by an
// API key transport, an access token through an [oauth2] static token source.
//
//   - Channel: channels.list with statistics and refined topic categories
//   - ChannelVideos: search.list ordered by date, nine results per page
//   - Videos: videos.list with view counts and category names
//   - PopularVideo: search.list ordered by view count, one result
//
// # Error Handling
//
// Errors wrap sentinels from the shared package:
//   - [shared.ErrLookupFailed] : username could not be turned into a channel ID
//   - [shared.ErrUnexpectedStatus] : channel page returned something other than 200
//   - [shared.ErrCanonicalNotFound] : channel page had no usable canonical link
//   - [shared.ErrAPIRequest] : YouTube Data API call failed
//   - [shared.ErrChannelNotFound] : channels.list returned no items
//   - [shared.ErrMissingCredentials] : neither API key nor access token configured
package services
