package models

import (
	"fmt"
	"time"

	"github.com/desertthunder/tubestuff/internal/identifier"
)

// AddedVideo records that a video was added to the user's library.
type AddedVideo struct {
	id        string
	sequence  int
	videoID   string
	channelID string
	title     string
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// NewAddedVideo creates an unsaved [AddedVideo]. The ID is assigned by the repository on create.
func NewAddedVideo(videoID, channelID, title string) *AddedVideo {
	now := time.Now()
	return &AddedVideo{
		videoID:   videoID,
		channelID: channelID,
		title:     title,
		createdAt: now,
		updatedAt: now,
	}
}

// RestoreAddedVideo rebuilds an [AddedVideo] from stored columns.
func RestoreAddedVideo(id string, sequence int, videoID, channelID, title string, createdAt, updatedAt time.Time, deletedAt *time.Time) *AddedVideo {
	return &AddedVideo{
		id:        id,
		sequence:  sequence,
		videoID:   videoID,
		channelID: channelID,
		title:     title,
		createdAt: createdAt,
		updatedAt: updatedAt,
		deletedAt: deletedAt,
	}
}

func (a *AddedVideo) ID() string            { return a.id }
func (a *AddedVideo) Sequence() int         { return a.sequence }
func (a *AddedVideo) VideoID() string       { return a.videoID }
func (a *AddedVideo) ChannelID() string     { return a.channelID }
func (a *AddedVideo) Title() string         { return a.title }
func (a *AddedVideo) CreatedAt() time.Time  { return a.createdAt }
func (a *AddedVideo) UpdatedAt() time.Time  { return a.updatedAt }
func (a *AddedVideo) DeletedAt() *time.Time { return a.deletedAt }

func (a *AddedVideo) SetID(id string)             { a.id = id }
func (a *AddedVideo) SetSequence(seq int)         { a.sequence = seq }
func (a *AddedVideo) SetTitle(title string)       { a.title = title }
func (a *AddedVideo) SetUpdatedAt(t time.Time)    { a.updatedAt = t }
func (a *AddedVideo) SetChannelID(channel string) { a.channelID = channel }

// Validate checks the video and channel IDs are well formed.
func (a *AddedVideo) Validate() error {
	if !identifier.IsVideoID(a.videoID) {
		return fmt.Errorf("invalid video id %q", a.videoID)
	}
	if a.channelID != "" && !identifier.IsChannelID(a.channelID) {
		return fmt.Errorf("invalid channel id %q", a.channelID)
	}
	return nil
}
