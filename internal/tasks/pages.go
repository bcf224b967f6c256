package tasks

import (
	"context"
	"fmt"

	"github.com/desertthunder/tubestuff/internal/models"
	"github.com/desertthunder/tubestuff/internal/services"
)

// CollectVideos fetches up to maxPages pages of a channel's uploads starting at pageToken
// and merges them into one page. NextPageToken of the result points past the last fetched page.
//
// maxPages <= 0 fetches a single page.
func CollectVideos(
	ctx context.Context,
	svc services.MetadataService,
	channelID, pageToken string,
	maxPages int,
	progress chan<- ProgressUpdate,
) (*models.ChannelVideos, error) {
	if maxPages <= 0 {
		maxPages = 1
	}

	var merged *models.ChannelVideos
	token := pageToken

	for step := 1; step <= maxPages; step++ {
		page, err := svc.ChannelVideos(ctx, channelID, token)
		if err != nil {
			return merged, fmt.Errorf("failed to fetch page %d: %w", step, err)
		}

		if merged == nil {
			first := *page
			first.Videos = append([]models.VideoSummary(nil), page.Videos...)
			merged = &first
		} else {
			merged.Videos = append(merged.Videos, page.Videos...)
			merged.NextPageToken = page.NextPageToken
		}

		sendProgress(progress, pageUpdate(step, maxPages, len(page.Videos)))

		token = page.NextPageToken
		if token == "" {
			break
		}
	}

	return merged, nil
}
