package formatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/tubestuff/internal/models"
	"github.com/desertthunder/tubestuff/internal/resolver"
)

func testChannel() *models.Channel {
	return &models.Channel{
		ID:          "UC6MFZAOHXlKK1FI7V0XQVeA",
		Name:        "ProZD",
		Description: "sketches and voice acting",
		Logo:        "https://yt3.example/logo.jpg",
		Categories:  []string{"Comedy", "Gaming"},
		Subscribers: 4_230_000,
		Uploads:     812,
		Views:       1_500_000_000,
	}
}

func testPage() *models.ChannelVideos {
	return &models.ChannelVideos{
		ChannelID:     "UC6MFZAOHXlKK1FI7V0XQVeA",
		ChannelTitle:  "ProZD",
		NextPageToken: "CAkQAA",
		TotalResults:  812,
		Videos: []models.VideoSummary{
			{ID: "4ZK8Z8hulFg", Title: "First, with comma", Description: "one", Cover: "https://i.ytimg.com/vi/4ZK8Z8hulFg/hqdefault.jpg"},
			{ID: "aJX4ytfqw6k", Title: "Second", Added: true},
		},
	}
}

func TestReferencesToText(t *testing.T) {
	inputs := []string{"UC6MFZAOHXlKK1FI7V0XQVeA", "https://youtu.be/4ZK8Z8hulFg", "???"}
	refs := []resolver.Reference{
		{Kind: resolver.Channel, ID: "UC6MFZAOHXlKK1FI7V0XQVeA"},
		{Kind: resolver.Video, ID: "4ZK8Z8hulFg"},
		{},
	}

	lines := strings.Split(strings.TrimSpace(string(ReferencesToText(inputs, refs))), "\n")
	want := []string{
		"UC6MFZAOHXlKK1FI7V0XQVeA\tchannel\tUC6MFZAOHXlKK1FI7V0XQVeA",
		"https://youtu.be/4ZK8Z8hulFg\tvideo\t4ZK8Z8hulFg",
		"???\tunknown\t-",
	}

	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestChannelFormats(t *testing.T) {
	t.Run("ChannelToText", func(t *testing.T) {
		output := string(ChannelToText(testChannel()))

		for _, want := range []string{"Channel: ProZD", "Categories: Comedy, Gaming", "Subscribers: 4.2M", "Views: 1.5B", "Uploads: 812"} {
			if !strings.Contains(output, want) {
				t.Errorf("text missing %q, got: %s", want, output)
			}
		}
	})

	t.Run("ChannelToMarkdown", func(t *testing.T) {
		output := string(ChannelToMarkdown(testChannel()))

		if !strings.HasPrefix(output, "# ProZD\n") {
			t.Errorf("expected title header, got: %s", output)
		}
		if !strings.Contains(output, "![Logo](https://yt3.example/logo.jpg)") {
			t.Error("markdown missing logo")
		}
		if !strings.Contains(output, "## Categories\n\n- Comedy\n- Gaming\n") {
			t.Errorf("markdown missing categories, got: %s", output)
		}
	})

	t.Run("ChannelToMarkdown without optional fields", func(t *testing.T) {
		output := string(ChannelToMarkdown(&models.Channel{Name: "Bare"}))

		if strings.Contains(output, "![Logo]") || strings.Contains(output, "## Categories") {
			t.Errorf("expected optional sections to be omitted, got: %s", output)
		}
	})
}

func TestChannelVideosFormats(t *testing.T) {
	t.Run("ChannelVideosToText", func(t *testing.T) {
		output := string(ChannelVideosToText(testPage()))

		if !strings.Contains(output, "1. First, with comma [4ZK8Z8hulFg]\n") {
			t.Errorf("text missing first video, got: %s", output)
		}
		if !strings.Contains(output, "2. Second [aJX4ytfqw6k] +\n") {
			t.Errorf("text missing added marker, got: %s", output)
		}
		if !strings.Contains(output, "Next page: CAkQAA") {
			t.Error("text missing next page token")
		}
	})

	t.Run("ChannelVideosToMarkdown", func(t *testing.T) {
		output := string(ChannelVideosToMarkdown(testPage()))

		if !strings.Contains(output, "## [First, with comma](https://www.youtube.com/watch?v=4ZK8Z8hulFg)") {
			t.Errorf("markdown missing video link, got: %s", output)
		}
		if strings.Count(output, "![Cover]") != 1 {
			t.Error("expected a single cover image")
		}
	})

	t.Run("ChannelVideosToCSV", func(t *testing.T) {
		data, err := ChannelVideosToCSV(testPage())
		if err != nil {
			t.Fatalf("ChannelVideosToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.HasPrefix(output, "ID,Title,Description,Cover,Added\n") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, `4ZK8Z8hulFg,"First, with comma",one,`) {
			t.Errorf("CSV did not quote title, got: %s", output)
		}
		if !strings.Contains(output, "aJX4ytfqw6k,Second,,,true") {
			t.Errorf("CSV missing added row, got: %s", output)
		}
	})
}

func TestVideoFormats(t *testing.T) {
	videos := []models.Video{
		{ID: "4ZK8Z8hulFg", Title: "First", Category: "Comedy", Views: 1234},
		{ID: "aJX4ytfqw6k", Title: "Second", Views: 5},
	}

	t.Run("VideosToText", func(t *testing.T) {
		output := string(VideosToText(videos))

		if strings.Count(output, "Video: ") != 2 {
			t.Errorf("expected two blocks, got: %s", output)
		}
		if !strings.Contains(output, "Category: Comedy\nViews: 1.2K\n") {
			t.Errorf("text missing category and views, got: %s", output)
		}
		if strings.Count(output, "Category:") != 1 {
			t.Error("expected empty category to be omitted")
		}
	})

	t.Run("VideosToCSV", func(t *testing.T) {
		data, err := VideosToCSV(videos)
		if err != nil {
			t.Fatalf("VideosToCSV failed: %v", err)
		}
		if !strings.Contains(string(data), "4ZK8Z8hulFg,First,Comedy,1234,") {
			t.Errorf("CSV missing raw view count, got: %s", data)
		}
	})
}

func TestAddedToText(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	videos := []*models.AddedVideo{
		models.RestoreAddedVideo("a", 1, "4ZK8Z8hulFg", "", "Titled", created, created, nil),
		models.RestoreAddedVideo("b", 2, "aJX4ytfqw6k", "", "", created, created, nil),
	}

	output := string(AddedToText(videos))

	if !strings.Contains(output, "Added videos: 2") {
		t.Errorf("missing count, got: %s", output)
	}
	if !strings.Contains(output, "1. Titled [4ZK8Z8hulFg] 2025-03-01") {
		t.Errorf("missing first entry, got: %s", output)
	}
	if !strings.Contains(output, "2. (untitled) [aJX4ytfqw6k]") {
		t.Errorf("missing untitled placeholder, got: %s", output)
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1K"},
		{1234, "1.2K"},
		{5_600_000, "5.6M"},
		{2_000_000_000, "2B"},
	}

	for _, tt := range tests {
		if got := FormatCount(tt.in); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteExport(t *testing.T) {
	t.Run("writes file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "channel.md")

		if err := WriteExport([]byte("# ProZD\n"), path); err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read export: %v", err)
		}
		if string(data) != "# ProZD\n" {
			t.Errorf("unexpected contents %q", data)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if err := WriteExport([]byte("x"), ""); err == nil {
			t.Error("expected error for empty path")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope", "out.txt")
		if err := WriteExport([]byte("x"), path); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}
