package models

import (
	"time"
)

// Model defines the base interface for all persistent models.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the database
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	Update(model T) error                      // Update modifies an existing model in the database
	Delete(id string) error                    // Delete removes a model from the database by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

// Channel is the normalized view of a YouTube channel.
type Channel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Logo        string   `json:"logo"`
	Categories  []string `json:"categories,omitempty"`
	Subscribers uint64   `json:"subs"`
	Uploads     uint64   `json:"uploads"`
	Views       uint64   `json:"views"`
}

// Video is the normalized view of a single YouTube video.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Views       uint64 `json:"views"`
	Category    string `json:"category,omitempty"`
	Cover       string `json:"cover"`
}

// VideoSummary is a video as listed on a channel page.
type VideoSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Cover       string `json:"cover"`
	Added       bool   `json:"added"`
}

// ChannelVideos is one page of a channel's uploads, newest first.
type ChannelVideos struct {
	ChannelID     string         `json:"channelId"`
	ChannelTitle  string         `json:"channelTitle"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
	PrevPageToken string         `json:"prevPageToken,omitempty"`
	TotalResults  int64          `json:"totalResults"`
	Videos        []VideoSummary `json:"videos"`
}
