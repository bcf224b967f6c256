package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/desertthunder/tubestuff/internal/models"
	"github.com/desertthunder/tubestuff/internal/resolver"
	"github.com/desertthunder/tubestuff/internal/shared"
	tu "github.com/desertthunder/tubestuff/internal/testing"
)

func TestResolveAll(t *testing.T) {
	lookup := &tu.MockLookup{IDs: map[string]string{"user/ProZD": "UC6MFZAOHXlKK1FI7V0XQVeA"}}
	r := resolver.New(lookup)

	t.Run("preserves input order", func(t *testing.T) {
		inputs := []string{
			"4ZK8Z8hulFg",
			"https://www.youtube.com/user/ProZD",
			"https://www.youtube.com/user/nobody",
			"not an id",
			"UC6MFZAOHXlKK1FI7V0XQVeA",
		}

		results := ResolveAll(context.Background(), r, inputs, BatchOpts{Workers: 3})

		if len(results) != len(inputs) {
			t.Fatalf("expected %d results, got %d", len(inputs), len(results))
		}
		for i, res := range results {
			if res.Input != inputs[i] {
				t.Errorf("result %d: expected input %q, got %q", i, inputs[i], res.Input)
			}
		}

		if results[0].Reference.Kind != resolver.Video {
			t.Errorf("expected video, got %v", results[0].Reference)
		}
		if results[1].Reference.ID != "UC6MFZAOHXlKK1FI7V0XQVeA" {
			t.Errorf("expected looked up channel, got %v", results[1].Reference)
		}
		if !errors.Is(results[2].Err, shared.ErrLookupFailed) {
			t.Errorf("expected lookup failure, got %v", results[2].Err)
		}
		if results[3].Err != nil || results[3].Reference.Known() {
			t.Errorf("expected unknown without error, got %v, %v", results[3].Reference, results[3].Err)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if results := ResolveAll(context.Background(), r, nil, BatchOpts{}); len(results) != 0 {
			t.Errorf("expected no results, got %d", len(results))
		}
	})

	t.Run("bounded concurrency", func(t *testing.T) {
		var active, peak int32
		slow := resolver.New(resolver.LookupFunc(func(ctx context.Context, page string) (string, error) {
			n := atomic.AddInt32(&active, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&active, -1)
			return "UC6MFZAOHXlKK1FI7V0XQVeA", nil
		}))

		inputs := make([]string, 12)
		for i := range inputs {
			inputs[i] = fmt.Sprintf("https://www.youtube.com/user/u%d", i)
		}

		results := ResolveAll(context.Background(), slow, inputs, BatchOpts{Workers: 2})
		for _, res := range results {
			if res.Err != nil {
				t.Fatalf("unexpected error: %v", res.Err)
			}
		}
		if peak > 2 {
			t.Errorf("expected at most 2 concurrent lookups, saw %d", peak)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results := ResolveAll(ctx, r, []string{"4ZK8Z8hulFg", "UC6MFZAOHXlKK1FI7V0XQVeA"}, BatchOpts{})
		for _, res := range results {
			if !errors.Is(res.Err, context.Canceled) {
				t.Errorf("expected context.Canceled, got %v", res.Err)
			}
		}
	})

	t.Run("progress updates", func(t *testing.T) {
		progress := make(chan ProgressUpdate, 10)
		ResolveAll(context.Background(), r, []string{"4ZK8Z8hulFg", "UC6MFZAOHXlKK1FI7V0XQVeA"}, BatchOpts{Progress: progress})
		close(progress)

		count := 0
		for u := range progress {
			count++
			if u.Phase != ResolveInputs || u.Total != 2 {
				t.Errorf("unexpected update %+v", u)
			}
		}
		if count != 2 {
			t.Errorf("expected 2 updates, got %d", count)
		}
	})
}

func TestCollectVideos(t *testing.T) {
	const channelID = "UC6MFZAOHXlKK1FI7V0XQVeA"

	svc := &tu.MockService{
		Pages: map[string]*models.ChannelVideos{
			channelID + "|":   {ChannelID: channelID, ChannelTitle: "ProZD", NextPageToken: "p2", Videos: []models.VideoSummary{{ID: "4ZK8Z8hulFg"}}},
			channelID + "|p2": {ChannelID: channelID, NextPageToken: "p3", Videos: []models.VideoSummary{{ID: "aJX4ytfqw6k"}}},
			channelID + "|p3": {ChannelID: channelID, Videos: []models.VideoSummary{{ID: "dQw4w9WgXcQ"}}},
		},
	}

	t.Run("follows tokens up to the limit", func(t *testing.T) {
		page, err := CollectVideos(context.Background(), svc, channelID, "", 2, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Videos) != 2 || page.NextPageToken != "p3" {
			t.Errorf("expected 2 videos and next token p3, got %d, %q", len(page.Videos), page.NextPageToken)
		}
		if page.ChannelTitle != "ProZD" {
			t.Errorf("expected title from first page, got %q", page.ChannelTitle)
		}
	})

	t.Run("stops at the last page", func(t *testing.T) {
		progress := make(chan ProgressUpdate, 10)
		page, err := CollectVideos(context.Background(), svc, channelID, "p2", 10, progress)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Videos) != 2 || page.NextPageToken != "" {
			t.Errorf("expected 2 videos and no next token, got %d, %q", len(page.Videos), page.NextPageToken)
		}
		if len(progress) != 2 {
			t.Errorf("expected 2 progress updates, got %d", len(progress))
		}
	})

	t.Run("service error", func(t *testing.T) {
		failing := &tu.MockService{Err: shared.ErrAPIRequest}
		if _, err := CollectVideos(context.Background(), failing, channelID, "", 1, nil); !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})
}

func TestSendProgressNonBlocking(t *testing.T) {
	progress := make(chan ProgressUpdate)
	done := make(chan struct{})

	go func() {
		sendProgress(progress, ProgressUpdate{Message: "dropped"})
		sendProgress(nil, ProgressUpdate{Message: "ignored"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sendProgress blocked")
	}
}
