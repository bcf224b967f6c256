// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func jsonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
			Value: true,
		},
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write output to a file instead of stdout",
	}
}

// resolveCommand classifies inputs as channel or video references
func resolveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Aliases:   []string{"r"},
		Usage:     "Resolve IDs, URLs and usernames to channel or video references",
		ArgsUsage: "<input>...",
		Flags: append(jsonFlags(),
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Concurrent resolves",
				Value:   4,
			},
		),
		Action: r.Resolve,
	}
}

// describeCommand resolves an input and fetches what it points at
func describeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "describe",
		Usage:     "Resolve an input and print the channel or video behind it as JSON",
		ArgsUsage: "<input>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
				Value: true,
			},
		},
		Action: r.Describe,
	}
}

// channelCommand shows channel details
func channelCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "channel",
		Aliases:   []string{"ch"},
		Usage:     "Show channel details",
		ArgsUsage: "<id|url|username>",
		Flags: append(jsonFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text or markdown",
				Value:   "text",
			},
			outputFlag(),
		),
		Action: r.Channel,
	}
}

// videosCommand lists channel uploads
func videosCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "videos",
		Usage:     "List a channel's uploads, newest first",
		ArgsUsage: "<channel>",
		Flags: append(jsonFlags(),
			&cli.StringFlag{
				Name:  "page-token",
				Usage: "Page token from a previous listing",
			},
			&cli.IntFlag{
				Name:  "pages",
				Usage: "Number of pages to fetch",
				Value: 1,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, markdown or csv",
				Value:   "text",
			},
			outputFlag(),
		),
		Action: r.Videos,
	}
}

// videoCommand shows video details
func videoCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "video",
		Aliases:   []string{"v"},
		Usage:     "Show video details",
		ArgsUsage: "<id|url>...",
		Flags: append(jsonFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text or csv",
				Value:   "text",
			},
			outputFlag(),
		),
		Action: r.Video,
	}
}

// popularCommand finds a channel's most viewed video
func popularCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "popular",
		Usage:     "Show a channel's most viewed video",
		ArgsUsage: "<channel>",
		Flags:     jsonFlags(),
		Action:    r.Popular,
	}
}

// addedCommand manages the local added-video library
func addedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "added",
		Usage: "Manage videos marked as added",
		Commands: []*cli.Command{
			{
				Name:      "mark",
				Usage:     "Mark a video as added",
				ArgsUsage: "<id|url>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "channel",
						Usage: "Channel the video belongs to",
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Title to store with the video",
					},
				},
				Action: r.AddedMark,
			},
			{
				Name:      "unmark",
				Usage:     "Remove a video from the added list",
				ArgsUsage: "<id|url>",
				Action:    r.AddedUnmark,
			},
			{
				Name:  "list",
				Usage: "List added videos",
				Flags: append(jsonFlags(),
					&cli.StringFlag{
						Name:  "channel",
						Usage: "Only list videos of this channel",
					},
				),
				Action: r.AddedList,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write a config file from the built-in template",
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Action: r.SetupDatabase,
			},
		},
	}
}

// serveCommand runs the JSON API
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the resolver and metadata lookups over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Listen host (default from config)",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Listen port (default from config)",
			},
		},
		Action: r.Serve,
	}
}
