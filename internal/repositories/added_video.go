package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/tubestuff/internal/models"
	"github.com/desertthunder/tubestuff/internal/shared"
)

const addedVideoColumns = `id, sequence, video_id, channel_id, title, created_at, updated_at, deleted_at`

// AddedVideoRepository implements models.Repository[*models.AddedVideo].
//
// At most one live row exists per video ID; soft-deleted rows are kept and ignored by every query.
type AddedVideoRepository struct {
	db *sql.DB
}

// NewAddedVideoRepository creates a new AddedVideoRepository with the given database connection
func NewAddedVideoRepository(db *sql.DB) *AddedVideoRepository {
	return &AddedVideoRepository{db: db}
}

// Create validates and inserts a new [models.AddedVideo], assigning its ID and sequence.
func (r *AddedVideoRepository) Create(video *models.AddedVideo) error {
	if err := video.Validate(); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrInvalidInput, err)
	}

	sequence, err := NextSequence(r.db, "added_videos")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()

	query := `
		INSERT INTO added_videos (id, sequence, video_id, channel_id, title, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query,
		id,
		sequence,
		video.VideoID(),
		video.ChannelID(),
		video.Title(),
		video.CreatedAt(),
		video.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert added video: %w", err)
	}

	video.SetID(id)
	video.SetSequence(sequence)
	return nil
}

// Get retrieves an added video by ID, excluding soft-deleted rows
func (r *AddedVideoRepository) Get(id string) (*models.AddedVideo, error) {
	query := `SELECT ` + addedVideoColumns + ` FROM added_videos WHERE id = ? AND deleted_at IS NULL`
	return scanAddedVideo(r.db.QueryRow(query, id))
}

// GetByVideoID retrieves the live record for a YouTube video ID
func (r *AddedVideoRepository) GetByVideoID(videoID string) (*models.AddedVideo, error) {
	query := `SELECT ` + addedVideoColumns + ` FROM added_videos WHERE video_id = ? AND deleted_at IS NULL`
	return scanAddedVideo(r.db.QueryRow(query, videoID))
}

// Update writes the title and channel of an existing record
func (r *AddedVideoRepository) Update(video *models.AddedVideo) error {
	if err := video.Validate(); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrInvalidInput, err)
	}

	now := time.Now()
	query := `
		UPDATE added_videos
		SET channel_id = ?, title = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`
	result, err := r.db.Exec(query, video.ChannelID(), video.Title(), now, video.ID())
	if err != nil {
		return fmt.Errorf("failed to update added video: %w", err)
	}
	if err := expectAffected(result, video.ID()); err != nil {
		return err
	}

	video.SetUpdatedAt(now)
	return nil
}

// Delete soft-deletes an added video by ID
func (r *AddedVideoRepository) Delete(id string) error {
	query := `UPDATE added_videos SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete added video: %w", err)
	}
	return expectAffected(result, id)
}

// List retrieves live records in insertion order.
//
// Supported criteria: "channel_id" (string).
func (r *AddedVideoRepository) List(criteria map[string]any) ([]*models.AddedVideo, error) {
	query := `SELECT ` + addedVideoColumns + ` FROM added_videos WHERE deleted_at IS NULL`
	args := []any{}

	if channelID, ok := criteria["channel_id"].(string); ok && channelID != "" {
		query += " AND channel_id = ?"
		args = append(args, channelID)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query added videos: %w", err)
	}
	defer rows.Close()

	var videos []*models.AddedVideo
	for rows.Next() {
		video, err := scanAddedVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return videos, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAddedVideo(row scanner) (*models.AddedVideo, error) {
	var (
		id, videoID, channelID, title string
		sequence                      int
		createdAt, updatedAt          time.Time
		deletedAt                     sql.NullTime
	)

	err := row.Scan(&id, &sequence, &videoID, &channelID, &title, &createdAt, &updatedAt, &deletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: added video", shared.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan added video: %w", err)
	}

	var deleted *time.Time
	if deletedAt.Valid {
		deleted = &deletedAt.Time
	}

	return models.RestoreAddedVideo(id, sequence, videoID, channelID, title, createdAt, updatedAt, deleted), nil
}

func expectAffected(result sql.Result, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: added video %s missing or already deleted", shared.ErrNotFound, id)
	}
	return nil
}
