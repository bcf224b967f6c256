package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/tubestuff/internal/formatter"
	"github.com/desertthunder/tubestuff/internal/identifier"
	"github.com/desertthunder/tubestuff/internal/shared"
	"github.com/desertthunder/tubestuff/internal/tasks"
	"github.com/urfave/cli/v3"
)

const watchURLFormat = "https://www.youtube.com/watch?v=%s"

// Channel prints details of the channel an ID, URL or username refers to.
func (r *Runner) Channel(ctx context.Context, cmd *cli.Command) error {
	input := cmd.Args().First()
	if input == "" {
		return fmt.Errorf("%w: channel", shared.ErrMissingArgument)
	}

	id, err := r.channelID(ctx, input)
	if err != nil {
		return err
	}

	svc, err := r.metadata(ctx)
	if err != nil {
		return err
	}

	channel, err := svc.Channel(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(channel, cmd.Bool("pretty"))
	}

	switch format := cmd.String("format"); format {
	case formatter.FormatText:
		if path := cmd.String("output"); path != "" {
			return r.export(formatter.ChannelToText(channel), path)
		}
		if err := r.writePlainHeader(channel.Name); err != nil {
			return err
		}
		return r.writeBytes(formatter.ChannelToText(channel))
	case formatter.FormatMarkdown:
		return r.emit(formatter.ChannelToMarkdown(channel), cmd.String("output"))
	default:
		return fmt.Errorf("%w: format %q", shared.ErrInvalidFlag, format)
	}
}

// Videos lists a channel's uploads, following page tokens when --pages is above one.
func (r *Runner) Videos(ctx context.Context, cmd *cli.Command) error {
	input := cmd.Args().First()
	if input == "" {
		return fmt.Errorf("%w: channel", shared.ErrMissingArgument)
	}

	format := cmd.String("format")
	switch format {
	case formatter.FormatText, formatter.FormatMarkdown, formatter.FormatCSV:
	default:
		return fmt.Errorf("%w: format %q", shared.ErrInvalidFlag, format)
	}

	id, err := r.channelID(ctx, input)
	if err != nil {
		return err
	}

	svc, err := r.metadata(ctx)
	if err != nil {
		return err
	}

	if !identifier.IsChannelID(id) {
		channel, err := svc.Channel(ctx, id)
		if err != nil {
			return err
		}
		id = channel.ID
	}

	progress := make(chan tasks.ProgressUpdate, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for u := range progress {
			r.logger.Debug(u.Message, "phase", u.Phase, "step", u.Step, "total", u.Total)
		}
	}()

	page, err := tasks.CollectVideos(ctx, svc, id, cmd.String("page-token"), int(cmd.Int("pages")), progress)
	close(progress)
	<-done
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, cmd.Bool("pretty"))
	}

	switch format {
	case formatter.FormatMarkdown:
		return r.emit(formatter.ChannelVideosToMarkdown(page), cmd.String("output"))
	case formatter.FormatCSV:
		data, err := formatter.ChannelVideosToCSV(page)
		if err != nil {
			return err
		}
		return r.emit(data, cmd.String("output"))
	default:
		return r.emit(formatter.ChannelVideosToText(page), cmd.String("output"))
	}
}

// Video prints details for one or more videos.
func (r *Runner) Video(ctx context.Context, cmd *cli.Command) error {
	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		return fmt.Errorf("%w: video", shared.ErrMissingArgument)
	}

	ids := make([]string, 0, len(inputs))
	for _, input := range inputs {
		id, err := r.videoID(ctx, input)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	svc, err := r.metadata(ctx)
	if err != nil {
		return err
	}

	videos, err := svc.Videos(ctx, ids...)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		return fmt.Errorf("%w: %v", shared.ErrVideoNotFound, ids)
	}

	if cmd.Bool("json") {
		return r.writeJSON(videos, cmd.Bool("pretty"))
	}

	switch format := cmd.String("format"); format {
	case formatter.FormatText:
		return r.emit(formatter.VideosToText(videos), cmd.String("output"))
	case formatter.FormatCSV:
		data, err := formatter.VideosToCSV(videos)
		if err != nil {
			return err
		}
		return r.emit(data, cmd.String("output"))
	default:
		return fmt.Errorf("%w: format %q", shared.ErrInvalidFlag, format)
	}
}

// Popular prints the most viewed video of a channel.
func (r *Runner) Popular(ctx context.Context, cmd *cli.Command) error {
	input := cmd.Args().First()
	if input == "" {
		return fmt.Errorf("%w: channel", shared.ErrMissingArgument)
	}

	id, err := r.channelID(ctx, input)
	if err != nil {
		return err
	}

	svc, err := r.metadata(ctx)
	if err != nil {
		return err
	}

	if !identifier.IsChannelID(id) {
		channel, err := svc.Channel(ctx, id)
		if err != nil {
			return err
		}
		id = channel.ID
	}

	videoID, err := svc.PopularVideo(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string]string{"channelId": id, "videoId": videoID}, cmd.Bool("pretty"))
	}

	if videoID == "" {
		return r.writePlain("%s\n", r.palette.Warn("channel has no videos"))
	}
	return r.writePlain("%s\t"+watchURLFormat+"\n", videoID, videoID)
}

// emit writes data to path, or to the runner output when path is empty.
func (r *Runner) emit(data []byte, path string) error {
	if path == "" {
		return r.writeBytes(data)
	}
	return r.export(data, path)
}

func (r *Runner) export(data []byte, path string) error {
	if err := formatter.WriteExport(data, path); err != nil {
		return err
	}
	r.logger.Info("wrote export", "path", path, "bytes", len(data))
	return nil
}
