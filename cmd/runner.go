package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tubestuff/internal/repositories"
	"github.com/desertthunder/tubestuff/internal/resolver"
	"github.com/desertthunder/tubestuff/internal/services"
	"github.com/desertthunder/tubestuff/internal/shared"
	"github.com/desertthunder/tubestuff/internal/ui"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
//
// Dependencies not supplied through [RunnerOpts] are built from the loaded config on first use.
type Runner struct {
	config     *shared.Config
	configPath string
	httpClient *http.Client
	lookup     resolver.ChannelLookup
	resolver   *resolver.Resolver
	service    services.MetadataService
	added      *repositories.AddedAdapter
	db         *sql.DB
	logger     *log.Logger
	output     io.Writer
	palette    *ui.Palette
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	HTTPClient *http.Client
	Lookup     resolver.ChannelLookup
	Service    services.MetadataService
	Added      *repositories.AddedAdapter
	Logger     *log.Logger
	Output     io.Writer
	Palette    *ui.Palette
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Palette == nil {
		opts.Palette = ui.Default
	}

	r := &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		httpClient: opts.HTTPClient,
		lookup:     opts.Lookup,
		service:    opts.Service,
		added:      opts.Added,
		logger:     opts.Logger,
		output:     opts.Output,
		palette:    opts.Palette,
	}
	if r.lookup != nil {
		r.resolver = resolver.New(r.lookup, resolver.WithLogger(r.logger))
	}
	return r
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		resolveCommand, describeCommand, channelCommand, videosCommand, videoCommand, popularCommand,
		addedCommand, setupCommand, serveCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// before runs ahead of every command: it applies --verbose and loads the config.
func (r *Runner) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}
	if path := cmd.String("config"); path != "" {
		r.configPath = path
	}
	if r.config != nil {
		return ctx, nil
	}

	if _, err := os.Stat(r.configPath); err != nil {
		r.logger.Debug("config file not found, using defaults", "path", r.configPath)
		r.config = shared.DefaultConfig()
		return ctx, nil
	}

	config, err := shared.LoadConfig(r.configPath)
	if err != nil {
		return ctx, err
	}
	r.config = config
	return ctx, nil
}

// Close releases the database connection, if one was opened.
func (r *Runner) Close() error {
	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

func (r *Runner) cfg() *shared.Config {
	if r.config == nil {
		r.config = shared.DefaultConfig()
	}
	return r.config
}

// ensureResolver builds the page lookup and resolver from config when they were not injected.
func (r *Runner) ensureResolver() {
	if r.resolver == nil {
		lc := r.cfg().Lookup
		client := r.httpClient
		if lc.Timeout.Duration > 0 && client == http.DefaultClient {
			client = &http.Client{Timeout: lc.Timeout.Duration}
		}

		r.lookup = services.NewPageLookup(services.LookupOptions{
			BaseURL:           lc.BaseURL,
			UserAgent:         lc.UserAgent,
			RequestsPerSecond: lc.RequestsPerSecond,
			HTTPClient:        client,
			Logger:            shared.WithLogger(r.logger, "component", "lookup"),
		})
		r.resolver = resolver.New(r.lookup, resolver.WithLogger(r.logger))
	}
}

func (r *Runner) resolveRef(ctx context.Context, input string) (resolver.Reference, error) {
	r.ensureResolver()
	return r.resolver.Resolve(ctx, input)
}

// addedStore opens the database and returns the added-video adapter.
func (r *Runner) addedStore() (*repositories.AddedAdapter, error) {
	if r.added != nil {
		return r.added, nil
	}

	db, err := shared.OpenDatabase(r.cfg().Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	r.db = db
	r.added = repositories.NewAddedAdapter(repositories.NewAddedVideoRepository(db), r.logger)
	return r.added, nil
}

// metadata returns the YouTube metadata service. The added-video store is attached when it opens.
func (r *Runner) metadata(ctx context.Context) (services.MetadataService, error) {
	if r.service != nil {
		return r.service, nil
	}

	r.ensureResolver()

	creds := r.cfg().Credentials.YouTube
	opts := services.TubeOptions{
		APIKey:      creds.APIKey,
		AccessToken: creds.AccessToken,
		Lookup:      r.lookup,
		Logger:      shared.WithLogger(r.logger, "component", "youtube"),
	}
	if r.httpClient != http.DefaultClient {
		opts.HTTPClient = r.httpClient
	}

	if added, err := r.addedStore(); err != nil {
		r.logger.Warn("added videos unavailable", "error", err)
	} else {
		opts.Added = added
	}

	svc, err := services.NewTubeService(ctx, opts)
	if err != nil {
		if errors.Is(err, shared.ErrMissingCredentials) {
			return nil, fmt.Errorf("%w (set %s or credentials.youtube.api_key)", err, shared.EnvAPIKey)
		}
		return nil, err
	}
	r.service = svc
	return svc, nil
}

// channelID resolves input to a channel ID. Unrecognized input is returned as-is
// so the metadata service can treat it as a username.
func (r *Runner) channelID(ctx context.Context, input string) (string, error) {
	ref, err := r.resolveRef(ctx, input)
	if err != nil {
		return "", err
	}
	switch ref.Kind {
	case resolver.Channel:
		return ref.ID, nil
	case resolver.Video:
		return "", fmt.Errorf("%w: %q is a video, not a channel", shared.ErrInvalidInput, input)
	default:
		return input, nil
	}
}

// videoID resolves input to a video ID.
func (r *Runner) videoID(ctx context.Context, input string) (string, error) {
	ref, err := r.resolveRef(ctx, input)
	if err != nil {
		return "", err
	}
	if ref.Kind != resolver.Video {
		return "", fmt.Errorf("%w: %q is not a video", shared.ErrInvalidInput, input)
	}
	return ref.ID, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(append(output, '\n')); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writeBytes(data []byte) error {
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	return r.writeBytes([]byte(fmt.Sprintf(format, args...)))
}

func (r *Runner) writePlainHeader(title string) error {
	return r.writePlain("%s\n", r.palette.Header(title))
}
