package repositories

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/desertthunder/tubestuff/internal/models"
	"github.com/desertthunder/tubestuff/internal/shared"
)

const (
	channelA = "UC6MFZAOHXlKK1FI7V0XQVeA"
	channelB = "UCBa659QWEk1AI4Tg--mrJ2A"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func TestNextSequence(t *testing.T) {
	db := setupTestDB(t)

	for want := 1; want <= 3; want++ {
		got, err := NextSequence(db, "added_videos")
		if err != nil {
			t.Fatalf("failed to get sequence: %v", err)
		}
		if got != want {
			t.Errorf("expected sequence %d, got %d", want, got)
		}
	}

	t.Run("unknown table", func(t *testing.T) {
		if _, err := NextSequence(db, "missing"); err == nil {
			t.Error("expected error for missing sequence table")
		}
	})
}

func TestAddedVideoRepository(t *testing.T) {
	t.Run("Create & Get", func(t *testing.T) {
		repo := NewAddedVideoRepository(setupTestDB(t))
		video := models.NewAddedVideo("4ZK8Z8hulFg", channelA, "Test Video")

		if err := repo.Create(video); err != nil {
			t.Fatalf("failed to create added video: %v", err)
		}

		if video.ID() == "" {
			t.Error("ID should be set after creation")
		}
		if video.Sequence() != 1 {
			t.Errorf("expected sequence 1, got %d", video.Sequence())
		}

		retrieved, err := repo.Get(video.ID())
		if err != nil {
			t.Fatalf("failed to get added video: %v", err)
		}

		if retrieved.VideoID() != "4ZK8Z8hulFg" || retrieved.ChannelID() != channelA || retrieved.Title() != "Test Video" {
			t.Errorf("unexpected record: %s %s %s", retrieved.VideoID(), retrieved.ChannelID(), retrieved.Title())
		}
		if retrieved.DeletedAt() != nil {
			t.Error("expected live record")
		}
	})

	t.Run("GetByVideoID", func(t *testing.T) {
		repo := NewAddedVideoRepository(setupTestDB(t))
		video := models.NewAddedVideo("4ZK8Z8hulFg", "", "")

		if err := repo.Create(video); err != nil {
			t.Fatalf("failed to create added video: %v", err)
		}

		retrieved, err := repo.GetByVideoID("4ZK8Z8hulFg")
		if err != nil {
			t.Fatalf("failed to get by video id: %v", err)
		}
		if retrieved.ID() != video.ID() {
			t.Errorf("expected ID %s, got %s", video.ID(), retrieved.ID())
		}
	})

	t.Run("Update", func(t *testing.T) {
		repo := NewAddedVideoRepository(setupTestDB(t))
		video := models.NewAddedVideo("4ZK8Z8hulFg", "", "")

		if err := repo.Create(video); err != nil {
			t.Fatalf("failed to create added video: %v", err)
		}

		video.SetTitle("Renamed")
		video.SetChannelID(channelA)
		if err := repo.Update(video); err != nil {
			t.Fatalf("failed to update added video: %v", err)
		}

		retrieved, err := repo.Get(video.ID())
		if err != nil {
			t.Fatalf("failed to get added video: %v", err)
		}
		if retrieved.Title() != "Renamed" || retrieved.ChannelID() != channelA {
			t.Errorf("update not persisted: %s %s", retrieved.Title(), retrieved.ChannelID())
		}
	})

	t.Run("Delete", func(t *testing.T) {
		repo := NewAddedVideoRepository(setupTestDB(t))
		video := models.NewAddedVideo("4ZK8Z8hulFg", "", "")

		if err := repo.Create(video); err != nil {
			t.Fatalf("failed to create added video: %v", err)
		}
		if err := repo.Delete(video.ID()); err != nil {
			t.Fatalf("failed to delete added video: %v", err)
		}

		if _, err := repo.Get(video.ID()); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}

		again := models.NewAddedVideo("4ZK8Z8hulFg", "", "")
		if err := repo.Create(again); err != nil {
			t.Errorf("expected re-adding a deleted video to succeed, got %v", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		repo := NewAddedVideoRepository(setupTestDB(t))

		videos := []*models.AddedVideo{
			models.NewAddedVideo("4ZK8Z8hulFg", channelA, "one"),
			models.NewAddedVideo("aJX4ytfqw6k", channelB, "two"),
			models.NewAddedVideo("dQw4w9WgXcQ", channelA, "three"),
		}
		for _, v := range videos {
			if err := repo.Create(v); err != nil {
				t.Fatalf("failed to create added video: %v", err)
			}
		}
		if err := repo.Delete(videos[2].ID()); err != nil {
			t.Fatalf("failed to delete added video: %v", err)
		}

		all, err := repo.List(map[string]any{})
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 live videos, got %d", len(all))
		}
		if all[0].VideoID() != "4ZK8Z8hulFg" || all[1].VideoID() != "aJX4ytfqw6k" {
			t.Errorf("expected insertion order, got %s, %s", all[0].VideoID(), all[1].VideoID())
		}

		filtered, err := repo.List(map[string]any{"channel_id": channelB})
		if err != nil {
			t.Fatalf("failed to list filtered: %v", err)
		}
		if len(filtered) != 1 || filtered[0].Title() != "two" {
			t.Errorf("expected only channel B video, got %d", len(filtered))
		}
	})
}

func TestAddedVideoRepositoryErrors(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		t.Run("ValidationError", func(t *testing.T) {
			repo := NewAddedVideoRepository(setupTestDB(t))

			err := repo.Create(models.NewAddedVideo("not a video", "", ""))
			if !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}

			err = repo.Create(models.NewAddedVideo("4ZK8Z8hulFg", "UCshort", ""))
			if !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput for bad channel, got %v", err)
			}
		})

		t.Run("DuplicateVideoID", func(t *testing.T) {
			repo := NewAddedVideoRepository(setupTestDB(t))

			if err := repo.Create(models.NewAddedVideo("4ZK8Z8hulFg", "", "")); err != nil {
				t.Fatalf("failed to create added video: %v", err)
			}
			if err := repo.Create(models.NewAddedVideo("4ZK8Z8hulFg", "", "")); err == nil {
				t.Error("expected unique constraint error")
			}
		})
	})

	t.Run("NotFound errors", func(t *testing.T) {
		repo := NewAddedVideoRepository(setupTestDB(t))

		t.Run("Get", func(t *testing.T) {
			if _, err := repo.Get("missing"); !errors.Is(err, shared.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})

		t.Run("GetByVideoID", func(t *testing.T) {
			if _, err := repo.GetByVideoID("4ZK8Z8hulFg"); !errors.Is(err, shared.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})

		t.Run("Update", func(t *testing.T) {
			video := models.RestoreAddedVideo("missing", 1, "4ZK8Z8hulFg", "", "", time.Now(), time.Now(), nil)
			if err := repo.Update(video); !errors.Is(err, shared.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})

		t.Run("Delete", func(t *testing.T) {
			if err := repo.Delete("missing"); !errors.Is(err, shared.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})
	})
}

func TestAddedAdapter(t *testing.T) {
	t.Run("Mark dedups", func(t *testing.T) {
		adapter := NewAddedAdapter(NewAddedVideoRepository(setupTestDB(t)), nil)

		created, err := adapter.Mark("4ZK8Z8hulFg", channelA, "Test")
		if err != nil || !created {
			t.Fatalf("expected first mark to create, got %v, %v", created, err)
		}

		created, err = adapter.Mark("4ZK8Z8hulFg", channelA, "Test")
		if err != nil || created {
			t.Errorf("expected second mark to be a no-op, got %v, %v", created, err)
		}

		if !adapter.IsAdded("4ZK8Z8hulFg") {
			t.Error("expected video to be added")
		}
		if adapter.IsAdded("aJX4ytfqw6k") {
			t.Error("expected other video to not be added")
		}
	})

	t.Run("Mark rejects invalid ids", func(t *testing.T) {
		adapter := NewAddedAdapter(NewAddedVideoRepository(setupTestDB(t)), nil)

		if _, err := adapter.Mark("bad", "", ""); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("Unmark", func(t *testing.T) {
		adapter := NewAddedAdapter(NewAddedVideoRepository(setupTestDB(t)), nil)

		removed, err := adapter.Unmark("4ZK8Z8hulFg")
		if err != nil || removed {
			t.Errorf("expected unmark of unknown video to be a no-op, got %v, %v", removed, err)
		}

		if _, err := adapter.Mark("4ZK8Z8hulFg", "", ""); err != nil {
			t.Fatalf("failed to mark: %v", err)
		}

		removed, err = adapter.Unmark("4ZK8Z8hulFg")
		if err != nil || !removed {
			t.Errorf("expected unmark to remove, got %v, %v", removed, err)
		}
		if adapter.IsAdded("4ZK8Z8hulFg") {
			t.Error("expected video to no longer be added")
		}
	})

	t.Run("List", func(t *testing.T) {
		adapter := NewAddedAdapter(NewAddedVideoRepository(setupTestDB(t)), nil)

		adapter.Mark("4ZK8Z8hulFg", channelA, "")
		adapter.Mark("aJX4ytfqw6k", channelB, "")

		all, err := adapter.List("")
		if err != nil || len(all) != 2 {
			t.Errorf("expected 2 videos, got %d, %v", len(all), err)
		}

		filtered, err := adapter.List(channelA)
		if err != nil || len(filtered) != 1 {
			t.Errorf("expected 1 video, got %d, %v", len(filtered), err)
		}
	})
}
