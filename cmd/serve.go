package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/tubestuff/internal/server"
	"github.com/desertthunder/tubestuff/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve runs the JSON API until the command context is cancelled.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	sc := r.cfg().Server
	if host := cmd.String("host"); host != "" {
		sc.Host = host
	}
	if port := int(cmd.Int("port")); port != 0 {
		sc.Port = port
	}
	if sc.Port < 0 || sc.Port > 65535 {
		return fmt.Errorf("%w: port %d", shared.ErrInvalidFlag, sc.Port)
	}

	svc, err := r.metadata(ctx)
	if err != nil {
		return err
	}

	logger := shared.WithLogger(r.logger, "component", "server")

	router := server.NewBasicRouter()
	router.Use(server.Logging(logger), server.Recover(logger))
	router.Handler(server.NewAPIHandler(r.resolver, svc, logger))

	return server.Serve(ctx, sc.Addr(), router, logger)
}
