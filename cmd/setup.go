package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/tubestuff/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the built-in config template to the --config path.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	if _, err := os.Stat(r.configPath); err == nil {
		r.logger.Info("config file already exists", "path", r.configPath)
		return r.writePlain("%s %s\n", r.palette.Warn("config exists:"), r.configPath)
	}

	if err := shared.CreateConfigFile(r.configPath); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", r.configPath)
	r.writePlain("%s %s\n", r.palette.OK("✓ config written to"), r.configPath)
	r.writePlain("%s\n", r.palette.Help(fmt.Sprintf("Set credentials.youtube.api_key or export %s before using metadata commands.", shared.EnvAPIKey)))
	return nil
}

// SetupDatabase initializes the database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	dbc := r.cfg().Database
	r.logger.Info("initializing database", "path", dbc.Path)

	db, err := shared.OpenDatabase(dbc)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}
	defer db.Close()

	r.logger.Infof("setup complete for database: %v", dbc.Path)
	return r.writePlain("%s %s\n", r.palette.OK("✓ database ready:"), dbc.Path)
}
