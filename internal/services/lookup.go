// Public page scrape used to turn usernames and vanity paths into channel IDs.
//
// The channel ID is recovered from the page's <link rel="canonical"> element, which points at
// https://www.youtube.com/channel/<ID> for every channel page.
package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/tubestuff/internal/shared"
	"golang.org/x/time/rate"
)

const (
	defaultLookupBaseURL   = "https://www.youtube.com"
	defaultLookupUserAgent = "Mozilla/5.0 (compatible; tubestuff/0.2)"
	maxPageBytes           = 2 << 20

	// canonicalIDIndex is where the ID sits in strings.Split("https://www.youtube.com/channel/<ID>", "/").
	canonicalIDIndex = 4
)

// LookupOptions configures a [PageLookup].
type LookupOptions struct {
	BaseURL           string
	UserAgent         string
	RequestsPerSecond float64 // <= 0 disables pacing
	HTTPClient        *http.Client
	Logger            *log.Logger
}

// PageLookup implements [resolver.ChannelLookup] by fetching the public channel page.
//
// Requests share one rate limiter, so a PageLookup can be used from many goroutines without
// hammering the site. Failures are returned as-is; nothing is retried.
type PageLookup struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// NewPageLookup creates a new [PageLookup].
func NewPageLookup(opts LookupOptions) *PageLookup {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultLookupBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultLookupUserAgent
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = shared.DiscardLogger()
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	return &PageLookup{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		userAgent:  opts.UserAgent,
		httpClient: opts.HTTPClient,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     opts.Logger,
	}
}

// LookupChannelID fetches <base>/<page> and returns the channel ID from its canonical link.
//
// page is "user/<name>" for legacy usernames or "<name>" for vanity paths.
func (p *PageLookup) LookupChannelID(ctx context.Context, page string) (string, error) {
	pageURL, err := p.pageURL(page)
	if err != nil {
		return "", err
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept-Language", "en")

	p.logger.Debug("fetching channel page", "url", pageURL)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s for %s", shared.ErrUnexpectedStatus, resp.Status, pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}

	href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href")
	if !ok {
		return "", fmt.Errorf("%w on %s", shared.ErrCanonicalNotFound, pageURL)
	}

	id, err := channelIDFromCanonical(href)
	if err != nil {
		return "", err
	}

	p.logger.Debug("found canonical channel", "page", page, "id", id)
	return id, nil
}

// pageURL joins page onto the base URL, escaping each segment.
func (p *PageLookup) pageURL(page string) (string, error) {
	page = strings.TrimPrefix(page, "/")
	if page == "" {
		return "", fmt.Errorf("%w: empty page", shared.ErrInvalidInput)
	}

	segments := strings.Split(page, "/")
	for i, s := range segments {
		if s == "" {
			return "", fmt.Errorf("%w: empty path segment in %q", shared.ErrInvalidInput, page)
		}
		segments[i] = url.PathEscape(s)
	}

	return p.baseURL + "/" + strings.Join(segments, "/"), nil
}

// channelIDFromCanonical takes path segment 4 of a canonical href.
func channelIDFromCanonical(href string) (string, error) {
	parts := strings.Split(href, "/")
	if len(parts) <= canonicalIDIndex || parts[canonicalIDIndex] == "" {
		return "", fmt.Errorf("%w: unexpected canonical href %q", shared.ErrCanonicalNotFound, href)
	}
	return parts[canonicalIDIndex], nil
}
