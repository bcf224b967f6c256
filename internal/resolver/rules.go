package resolver

import (
	"context"
	"net/url"
	"strings"

	"github.com/desertthunder/tubestuff/internal/identifier"
)

const shortLinkHost = "youtu.be"

// target is the part of a parsed URL the rules look at.
type target struct {
	host     string
	path     string
	segments []string // path split on "/", so segments[0] is always ""
	query    url.Values
	hasQuery bool
}

func newTarget(u *url.URL) target {
	return target{
		host:     u.Hostname(),
		path:     u.Path,
		segments: strings.Split(u.Path, "/"),
		query:    u.Query(),
		hasQuery: u.RawQuery != "" || u.ForceQuery,
	}
}

// segment returns the i-th path segment, or "" when the path is shorter.
func (t target) segment(i int) string {
	if i < len(t.segments) {
		return t.segments[i]
	}
	return ""
}

// rule is one recognized URL shape.
type rule struct {
	name  string
	match func(t target) bool
	apply func(ctx context.Context, r *Resolver, t target, fallback Reference) (Reference, error)
}

// rules is evaluated top to bottom and the first match wins.
//
// Short links and watch URLs come first so that paths such as "/aJX4ytfqw6k" on youtu.be or a bare
// "/watch" are never sent to the channel lookup.
var rules = []rule{
	{
		name:  "short link",
		match: func(t target) bool { return t.host == shortLinkHost },
		apply: func(_ context.Context, _ *Resolver, t target, _ Reference) (Reference, error) {
			return Reference{Kind: Video, ID: strings.TrimPrefix(t.path, "/")}, nil
		},
	},
	{
		name:  "watch",
		match: func(t target) bool { return strings.HasPrefix(t.path, "/watch") },
		apply: func(_ context.Context, _ *Resolver, t target, _ Reference) (Reference, error) {
			return Reference{Kind: Video, ID: t.query.Get("v")}, nil
		},
	},
	{
		name:  "vanity",
		match: func(t target) bool { return len(t.segments) == 2 && t.segment(1) != "" && !t.hasQuery },
		apply: func(ctx context.Context, r *Resolver, t target, _ Reference) (Reference, error) {
			return r.channelFromPage(ctx, t.segment(1))
		},
	},
	{
		name:  "user",
		match: func(t target) bool { return strings.HasPrefix(t.path, "/user") },
		apply: func(ctx context.Context, r *Resolver, t target, _ Reference) (Reference, error) {
			return r.channelFromPage(ctx, "user/"+t.segment(2))
		},
	},
	{
		name:  "channel",
		match: func(t target) bool { return strings.HasPrefix(t.path, "/channel") },
		apply: func(_ context.Context, _ *Resolver, t target, fallback Reference) (Reference, error) {
			candidate := t.segment(2)
			if identifier.IsChannelID(candidate) {
				return Reference{Kind: Channel, ID: candidate}, nil
			}
			return Reference{Kind: fallback.Kind, ID: candidate}, nil
		},
	},
}
