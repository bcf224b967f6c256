package main

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/tubestuff/internal/formatter"
	"github.com/desertthunder/tubestuff/internal/shared"
	"github.com/urfave/cli/v3"
)

type addedOutput struct {
	VideoID   string    `json:"videoId"`
	ChannelID string    `json:"channelId,omitempty"`
	Title     string    `json:"title,omitempty"`
	Sequence  int       `json:"sequence"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddedMark marks a video as added. Marking an added video again is a no-op.
func (r *Runner) AddedMark(ctx context.Context, cmd *cli.Command) error {
	input := cmd.Args().First()
	if input == "" {
		return fmt.Errorf("%w: video", shared.ErrMissingArgument)
	}

	videoID, err := r.videoID(ctx, input)
	if err != nil {
		return err
	}

	channelID := ""
	if ch := cmd.String("channel"); ch != "" {
		if channelID, err = r.channelID(ctx, ch); err != nil {
			return err
		}
	}

	store, err := r.addedStore()
	if err != nil {
		return err
	}

	created, err := store.Mark(videoID, channelID, cmd.String("title"))
	if err != nil {
		return err
	}

	if !created {
		return r.writePlain("%s %s\n", r.palette.Warn("already added:"), videoID)
	}
	return r.writePlain("%s %s\n", r.palette.OK("✓ added"), videoID)
}

// AddedUnmark removes a video from the added list.
func (r *Runner) AddedUnmark(ctx context.Context, cmd *cli.Command) error {
	input := cmd.Args().First()
	if input == "" {
		return fmt.Errorf("%w: video", shared.ErrMissingArgument)
	}

	videoID, err := r.videoID(ctx, input)
	if err != nil {
		return err
	}

	store, err := r.addedStore()
	if err != nil {
		return err
	}

	removed, err := store.Unmark(videoID)
	if err != nil {
		return err
	}

	if !removed {
		return r.writePlain("%s %s\n", r.palette.Warn("not added:"), videoID)
	}
	return r.writePlain("%s %s\n", r.palette.OK("✓ removed"), videoID)
}

// AddedList prints the added videos in the order they were added.
func (r *Runner) AddedList(ctx context.Context, cmd *cli.Command) error {
	channelID := ""
	if ch := cmd.String("channel"); ch != "" {
		var err error
		if channelID, err = r.channelID(ctx, ch); err != nil {
			return err
		}
	}

	store, err := r.addedStore()
	if err != nil {
		return err
	}

	videos, err := store.List(channelID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		out := make([]addedOutput, len(videos))
		for i, v := range videos {
			out[i] = addedOutput{
				VideoID:   v.VideoID(),
				ChannelID: v.ChannelID(),
				Title:     v.Title(),
				Sequence:  v.Sequence(),
				CreatedAt: v.CreatedAt(),
			}
		}
		return r.writeJSON(out, cmd.Bool("pretty"))
	}

	return r.writeBytes(formatter.AddedToText(videos))
}
