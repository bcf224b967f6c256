package resolver

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tubestuff/internal/identifier"
	"github.com/desertthunder/tubestuff/internal/shared"
)

// ChannelLookup finds the canonical channel ID behind a public page.
//
// page is the path after the host without a leading slash, e.g. "user/ProZD" or "idubbbztv".
type ChannelLookup interface {
	LookupChannelID(ctx context.Context, page string) (string, error)
}

// LookupFunc adapts a function to [ChannelLookup].
type LookupFunc func(ctx context.Context, page string) (string, error)

func (f LookupFunc) LookupChannelID(ctx context.Context, page string) (string, error) {
	return f(ctx, page)
}

// Resolver resolves raw input into a [Reference]. It holds no per-call state and is safe for concurrent use.
type Resolver struct {
	lookup ChannelLookup
	logger *log.Logger
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithLogger sets the logger used for debug tracing of matched rules.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a [Resolver]. lookup may be nil, in which case username and vanity URLs fail to resolve.
func New(lookup ChannelLookup, opts ...Option) *Resolver {
	r := &Resolver{lookup: lookup, logger: shared.DiscardLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve classifies input as a channel or video reference.
//
// Unrecognized input is not an error and yields an [Unknown] reference. The only error comes from the
// channel lookup, in which case the returned reference is the zero value.
func (r *Resolver) Resolve(ctx context.Context, input string) (Reference, error) {
	fallback := classifyBare(input)

	u, ok := parseURL(input)
	if !ok {
		return fallback.normalize(), nil
	}

	t := newTarget(u)
	for _, rl := range rules {
		if !rl.match(t) {
			continue
		}

		r.logger.Debug("matched url shape", "rule", rl.name, "input", input)

		ref, err := rl.apply(ctx, r, t, fallback)
		if err != nil {
			return Reference{}, err
		}
		return ref.normalize(), nil
	}

	return fallback.normalize(), nil
}

// classifyBare is the fast path: the whole input tested as a raw channel or video ID.
func classifyBare(input string) Reference {
	if !identifier.HasToken(input) {
		return Reference{}
	}

	switch {
	case identifier.IsChannelID(input):
		return Reference{Kind: Channel, ID: input}
	case identifier.IsVideoID(input):
		return Reference{Kind: Video, ID: input}
	default:
		return Reference{}
	}
}

// parseURL parses input as an absolute URL, adding a scheme to "www..." and "youtube..." inputs.
// ok is false when the result has no host.
func parseURL(input string) (*url.URL, bool) {
	if strings.HasPrefix(input, "www") || strings.HasPrefix(input, "youtube.") {
		input = "https://" + input
	}

	u, err := url.Parse(input)
	if err != nil || u.Host == "" {
		return nil, false
	}
	return u, true
}

// channelFromPage asks the lookup for the channel behind page.
func (r *Resolver) channelFromPage(ctx context.Context, page string) (Reference, error) {
	if r.lookup == nil {
		return Reference{}, fmt.Errorf("%w: no lookup configured for %q", shared.ErrLookupFailed, page)
	}

	id, err := r.lookup.LookupChannelID(ctx, page)
	if err != nil {
		return Reference{}, fmt.Errorf("%w: %q: %w", shared.ErrLookupFailed, page, err)
	}
	if id == "" {
		return Reference{}, fmt.Errorf("%w: %q: no channel id", shared.ErrLookupFailed, page)
	}

	r.logger.Debug("looked up channel", "page", page, "id", id)
	return Reference{Kind: Channel, ID: id}, nil
}
