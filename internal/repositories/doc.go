// Package repositories implements SQLite persistence for the added-video library.
//
// Key Implementations:
//   - [AddedVideoRepository] : added video records with soft deletes and channel filters
//   - [AddedAdapter] : services.AddedChecker on top of the repository, with mark/unmark dedup
//
// Sequence numbers give a stable insertion order independent of UUIDs and timestamps.
// [NextSequence] atomically increments per-table counters kept in dedicated sequence tables.
package repositories
