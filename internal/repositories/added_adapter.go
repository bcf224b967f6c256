package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tubestuff/internal/models"
	"github.com/desertthunder/tubestuff/internal/shared"
)

// AddedAdapter implements services.AddedChecker using AddedVideoRepository.
//
// Marking an already added video is a no-op, and so is unmarking one that was never added.
type AddedAdapter struct {
	repo   *AddedVideoRepository
	logger *log.Logger
}

// NewAddedAdapter creates a new AddedAdapter. A nil logger discards output.
func NewAddedAdapter(repo *AddedVideoRepository, logger *log.Logger) *AddedAdapter {
	if logger == nil {
		logger = shared.DiscardLogger()
	}
	return &AddedAdapter{repo: repo, logger: logger}
}

// IsAdded reports whether a live record exists for videoID.
// Lookup failures other than a missing row are logged and reported as not added.
func (a *AddedAdapter) IsAdded(videoID string) bool {
	_, err := a.repo.GetByVideoID(videoID)
	if err == nil {
		return true
	}
	if !errors.Is(err, shared.ErrNotFound) {
		a.logger.Warn("added lookup failed", "video", videoID, "error", err)
	}
	return false
}

// Mark records a video as added. It reports false when the video was already added.
func (a *AddedAdapter) Mark(videoID, channelID, title string) (bool, error) {
	if a.IsAdded(videoID) {
		return false, nil
	}

	if err := a.repo.Create(models.NewAddedVideo(videoID, channelID, title)); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return false, nil
		}
		return false, fmt.Errorf("failed to mark video: %w", err)
	}

	a.logger.Debug("marked video", "video", videoID)
	return true, nil
}

// Unmark soft-deletes the live record for videoID. It reports false when the video was not added.
func (a *AddedAdapter) Unmark(videoID string) (bool, error) {
	existing, err := a.repo.GetByVideoID(videoID)
	if errors.Is(err, shared.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := a.repo.Delete(existing.ID()); err != nil {
		return false, fmt.Errorf("failed to unmark video: %w", err)
	}

	a.logger.Debug("unmarked video", "video", videoID)
	return true, nil
}

// List returns the added videos, optionally filtered by channel ID.
func (a *AddedAdapter) List(channelID string) ([]*models.AddedVideo, error) {
	return a.repo.List(map[string]any{"channel_id": channelID})
}
