// package services implements the external collaborators of the resolver: the channel page
// lookup and the YouTube Data API metadata service.
package services

import (
	"context"

	"github.com/desertthunder/tubestuff/internal/models"
)

// MetadataService fetches normalized channel and video metadata.
type MetadataService interface {
	// Channel fetches a channel by ID. Non-ID input is treated as a legacy username and looked up first.
	Channel(ctx context.Context, idOrUsername string) (*models.Channel, error)

	// ChannelVideos fetches one page of a channel's uploads, newest first.
	// An empty pageToken requests the first page.
	ChannelVideos(ctx context.Context, channelID, pageToken string) (*models.ChannelVideos, error)

	// Videos fetches metadata for up to 50 video IDs. Unknown IDs are silently absent from the result.
	Videos(ctx context.Context, ids ...string) ([]models.Video, error)

	// PopularVideo returns the ID of the channel's most viewed video, or "" when it has none.
	PopularVideo(ctx context.Context, channelID string) (string, error)
}

// AddedChecker reports whether a video has been added to the user's library.
type AddedChecker interface {
	IsAdded(videoID string) bool
}
