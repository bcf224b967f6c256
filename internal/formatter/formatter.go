// package formatter renders channels, videos and resolved references as plain text, Markdown or CSV
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/tubestuff/internal/models"
	"github.com/desertthunder/tubestuff/internal/resolver"
)

// Format names accepted by the CLI --format flags.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// ReferencesToText writes one "input<TAB>kind<TAB>id" line per resolved input.
// Unknown references print "-" in place of the id.
func ReferencesToText(inputs []string, refs []resolver.Reference) []byte {
	var buf bytes.Buffer
	for i, ref := range refs {
		id := ref.ID
		if !ref.Known() {
			id = "-"
		}
		fmt.Fprintf(&buf, "%s\t%s\t%s\n", inputs[i], ref.Kind, id)
	}
	return buf.Bytes()
}

// ChannelToText converts a Channel to plain text
func ChannelToText(ch *models.Channel) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Channel: %s\n", ch.Name)
	fmt.Fprintf(&buf, "ID: %s\n", ch.ID)
	if len(ch.Categories) > 0 {
		fmt.Fprintf(&buf, "Categories: %s\n", strings.Join(ch.Categories, ", "))
	}
	fmt.Fprintf(&buf, "Subscribers: %s\n", FormatCount(ch.Subscribers))
	fmt.Fprintf(&buf, "Uploads: %s\n", FormatCount(ch.Uploads))
	fmt.Fprintf(&buf, "Views: %s\n", FormatCount(ch.Views))
	if ch.Description != "" {
		fmt.Fprintf(&buf, "\n%s\n", ch.Description)
	}

	return buf.Bytes()
}

// ChannelToMarkdown converts a Channel to Markdown with the logo as a header image
func ChannelToMarkdown(ch *models.Channel) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", ch.Name)
	if ch.Logo != "" {
		fmt.Fprintf(&buf, "![Logo](%s)\n\n", ch.Logo)
	}
	if ch.Description != "" {
		fmt.Fprintf(&buf, "%s\n\n", ch.Description)
	}

	fmt.Fprintf(&buf, "**Subscribers**: %s\n", FormatCount(ch.Subscribers))
	fmt.Fprintf(&buf, "**Uploads**: %s\n", FormatCount(ch.Uploads))
	fmt.Fprintf(&buf, "**Views**: %s\n", FormatCount(ch.Views))

	if len(ch.Categories) > 0 {
		buf.WriteString("\n## Categories\n\n")
		for _, c := range ch.Categories {
			fmt.Fprintf(&buf, "- %s\n", c)
		}
	}

	return buf.Bytes()
}

// ChannelVideosToText converts a page of channel uploads to a numbered list.
// Added videos are marked with a trailing "+".
func ChannelVideosToText(page *models.ChannelVideos) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Channel: %s (%s)\n", page.ChannelTitle, page.ChannelID)
	fmt.Fprintf(&buf, "Videos: %d of %d\n\n", len(page.Videos), page.TotalResults)

	for i, v := range page.Videos {
		marker := ""
		if v.Added {
			marker = " +"
		}
		fmt.Fprintf(&buf, "%d. %s [%s]%s\n", i+1, v.Title, v.ID, marker)
	}

	if page.NextPageToken != "" {
		fmt.Fprintf(&buf, "\nNext page: %s\n", page.NextPageToken)
	}

	return buf.Bytes()
}

// ChannelVideosToMarkdown converts a page of channel uploads to Markdown with cover thumbnails
func ChannelVideosToMarkdown(page *models.ChannelVideos) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", page.ChannelTitle)
	fmt.Fprintf(&buf, "**Videos**: %d\n\n", page.TotalResults)

	for _, v := range page.Videos {
		fmt.Fprintf(&buf, "## [%s](https://www.youtube.com/watch?v=%s)\n\n", v.Title, v.ID)
		if v.Cover != "" {
			fmt.Fprintf(&buf, "![Cover](%s)\n\n", v.Cover)
		}
		if v.Description != "" {
			fmt.Fprintf(&buf, "%s\n\n", v.Description)
		}
	}

	return buf.Bytes()
}

// ChannelVideosToCSV converts a page of channel uploads to CSV with columns: ID, Title, Description, Cover, Added
func ChannelVideosToCSV(page *models.ChannelVideos) ([]byte, error) {
	records := make([][]string, 0, len(page.Videos))
	for _, v := range page.Videos {
		records = append(records, []string{v.ID, v.Title, v.Description, v.Cover, strconv.FormatBool(v.Added)})
	}
	return writeCSV([]string{"ID", "Title", "Description", "Cover", "Added"}, records)
}

// VideosToText converts full video records to plain text blocks separated by blank lines
func VideosToText(videos []models.Video) []byte {
	var buf bytes.Buffer

	for i, v := range videos {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "Video: %s\n", v.Title)
		fmt.Fprintf(&buf, "ID: %s\n", v.ID)
		if v.Category != "" {
			fmt.Fprintf(&buf, "Category: %s\n", v.Category)
		}
		fmt.Fprintf(&buf, "Views: %s\n", FormatCount(v.Views))
	}

	return buf.Bytes()
}

// VideosToCSV converts full video records to CSV with columns: ID, Title, Category, Views, Cover
func VideosToCSV(videos []models.Video) ([]byte, error) {
	records := make([][]string, 0, len(videos))
	for _, v := range videos {
		records = append(records, []string{v.ID, v.Title, v.Category, strconv.FormatUint(v.Views, 10), v.Cover})
	}
	return writeCSV([]string{"ID", "Title", "Category", "Views", "Cover"}, records)
}

// AddedToText lists added videos in insertion order
func AddedToText(videos []*models.AddedVideo) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Added videos: %d\n\n", len(videos))
	for _, v := range videos {
		title := v.Title()
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(&buf, "%d. %s [%s] %s\n", v.Sequence(), title, v.VideoID(), v.CreatedAt().Format("2006-01-02"))
	}

	return buf.Bytes()
}

// FormatCount abbreviates large counts, e.g. 1234 -> "1.2K", 5600000 -> "5.6M"
func FormatCount(n uint64) string {
	switch {
	case n >= 1_000_000_000:
		return trimDecimal(float64(n)/1_000_000_000) + "B"
	case n >= 1_000_000:
		return trimDecimal(float64(n)/1_000_000) + "M"
	case n >= 1_000:
		return trimDecimal(float64(n)/1_000) + "K"
	default:
		return strconv.FormatUint(n, 10)
	}
}

func trimDecimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// WriteExport writes rendered output to path, creating or truncating the file
func WriteExport(data []byte, path string) error {
	if path == "" {
		return fmt.Errorf("empty output path")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeCSV(headers []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}
	if err := writer.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write CSV records: %w", err)
	}

	return buf.Bytes(), nil
}
