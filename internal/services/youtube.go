// YouTube Data API v3 [MetadataService] implementation
package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tubestuff/internal/category"
	"github.com/desertthunder/tubestuff/internal/identifier"
	"github.com/desertthunder/tubestuff/internal/models"
	"github.com/desertthunder/tubestuff/internal/resolver"
	"github.com/desertthunder/tubestuff/internal/shared"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	channelPageSize = 9
	maxVideoIDs     = 50
	coverURLFormat  = "https://i.ytimg.com/vi/%s/hqdefault.jpg"
)

// Cover returns the high quality thumbnail URL of a video.
func Cover(videoID string) string {
	return fmt.Sprintf(coverURLFormat, videoID)
}

// TubeOptions configures a [TubeService].
//
// One of APIKey or AccessToken is required.
type TubeOptions struct {
	APIKey      string
	AccessToken string
	Endpoint    string       // overrides the API base URL, e.g. for tests
	HTTPClient  *http.Client // base client; credentials are layered on top of its transport
	Lookup      resolver.ChannelLookup
	Added       AddedChecker
	Logger      *log.Logger
}

// TubeService implements [MetadataService] on the YouTube Data API.
type TubeService struct {
	yt     *youtube.Service
	lookup resolver.ChannelLookup
	added  AddedChecker
	logger *log.Logger
}

// NewTubeService creates a new [TubeService] with explicit credentials.
func NewTubeService(ctx context.Context, opts TubeOptions) (*TubeService, error) {
	client, err := authorizedClient(ctx, opts)
	if err != nil {
		return nil, err
	}

	clientOpts := []option.ClientOption{option.WithHTTPClient(client)}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}

	yt, err := youtube.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	if opts.Logger == nil {
		opts.Logger = shared.DiscardLogger()
	}

	return &TubeService{
		yt:     yt,
		lookup: opts.Lookup,
		added:  opts.Added,
		logger: opts.Logger,
	}, nil
}

// authorizedClient wraps the base client with an OAuth2 token or an API key transport.
func authorizedClient(ctx context.Context, opts TubeOptions) (*http.Client, error) {
	base := opts.HTTPClient
	if base == nil {
		base = &http.Client{Timeout: 30 * time.Second}
	}

	switch {
	case opts.AccessToken != "":
		ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.AccessToken, TokenType: "Bearer"})
		client := oauth2.NewClient(ctx, ts)
		client.Timeout = base.Timeout
		return client, nil
	case opts.APIKey != "":
		rt := base.Transport
		if rt == nil {
			rt = http.DefaultTransport
		}
		return &http.Client{
			Transport: &transport.APIKey{Key: opts.APIKey, Transport: rt},
			Timeout:   base.Timeout,
		}, nil
	default:
		return nil, fmt.Errorf("%w: youtube api_key or access_token", shared.ErrMissingCredentials)
	}
}

// Channel fetches a channel with statistics and refined topic categories.
//
// Calls channels.list(id,snippet,topicDetails,statistics).
func (s *TubeService) Channel(ctx context.Context, idOrUsername string) (*models.Channel, error) {
	id := idOrUsername
	if !identifier.IsChannelID(id) {
		resolved, err := s.lookupUser(ctx, idOrUsername)
		if err != nil {
			return nil, err
		}
		id = resolved
	}

	resp, err := s.yt.Channels.
		List([]string{"id", "snippet", "topicDetails", "statistics"}).
		Id(id).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: channels.list: %w", shared.ErrAPIRequest, err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrChannelNotFound, id)
	}

	item := resp.Items[0]
	channel := &models.Channel{ID: id}

	if sn := item.Snippet; sn != nil {
		channel.Name = sn.Title
		channel.Description = sn.Description
		if sn.Thumbnails != nil && sn.Thumbnails.High != nil {
			channel.Logo = sn.Thumbnails.High.Url
		}
	}

	if td := item.TopicDetails; td != nil {
		for _, topic := range td.TopicCategories {
			if name := category.FromTopicURL(topic); name != "" {
				channel.Categories = append(channel.Categories, name)
			}
		}
	}

	if st := item.Statistics; st != nil {
		channel.Subscribers = st.SubscriberCount
		channel.Uploads = st.VideoCount
		channel.Views = st.ViewCount
	}

	return channel, nil
}

// ChannelVideos fetches one page of a channel's uploads, newest first.
//
// Calls search.list(snippet) with order=date.
func (s *TubeService) ChannelVideos(ctx context.Context, channelID, pageToken string) (*models.ChannelVideos, error) {
	call := s.yt.Search.
		List([]string{"snippet"}).
		ChannelId(channelID).
		Type("video").
		Order("date").
		MaxResults(channelPageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("%w: search.list: %w", shared.ErrAPIRequest, err)
	}

	page := &models.ChannelVideos{
		ChannelID:     channelID,
		NextPageToken: resp.NextPageToken,
		PrevPageToken: resp.PrevPageToken,
		Videos:        make([]models.VideoSummary, 0, len(resp.Items)),
	}
	if resp.PageInfo != nil {
		page.TotalResults = resp.PageInfo.TotalResults
	}

	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}

		summary := models.VideoSummary{
			ID:    item.Id.VideoId,
			Cover: Cover(item.Id.VideoId),
		}
		if sn := item.Snippet; sn != nil {
			summary.Title = sn.Title
			summary.Description = sn.Description
			if page.ChannelTitle == "" {
				page.ChannelTitle = sn.ChannelTitle
			}
		}
		if s.added != nil {
			summary.Added = s.added.IsAdded(summary.ID)
		}

		page.Videos = append(page.Videos, summary)
	}

	return page, nil
}

// Videos fetches view counts, descriptions and categories for the given IDs.
//
// Calls videos.list(statistics,snippet).
func (s *TubeService) Videos(ctx context.Context, ids ...string) ([]models.Video, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no video ids", shared.ErrInvalidInput)
	}
	if len(ids) > maxVideoIDs {
		return nil, fmt.Errorf("%w: at most %d video ids per call, got %d", shared.ErrInvalidInput, maxVideoIDs, len(ids))
	}

	resp, err := s.yt.Videos.
		List([]string{"statistics", "snippet"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: videos.list: %w", shared.ErrAPIRequest, err)
	}

	videos := make([]models.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		v := models.Video{ID: item.Id, Cover: Cover(item.Id)}
		if sn := item.Snippet; sn != nil {
			v.Title = sn.Title
			v.Description = sn.Description
			if name, ok := category.Name(sn.CategoryId); ok {
				v.Category = name
			}
		}
		if st := item.Statistics; st != nil {
			v.Views = st.ViewCount
		}
		videos = append(videos, v)
	}

	return videos, nil
}

// PopularVideo returns the most viewed video of a channel.
//
// Calls search.list(snippet) with order=viewCount and a single result.
func (s *TubeService) PopularVideo(ctx context.Context, channelID string) (string, error) {
	resp, err := s.yt.Search.
		List([]string{"snippet"}).
		ChannelId(channelID).
		Type("video").
		Order("viewCount").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("%w: search.list: %w", shared.ErrAPIRequest, err)
	}

	if len(resp.Items) == 0 || resp.Items[0].Id == nil {
		return "", nil
	}
	return resp.Items[0].Id.VideoId, nil
}

func (s *TubeService) lookupUser(ctx context.Context, username string) (string, error) {
	if s.lookup == nil {
		return "", fmt.Errorf("%w: no lookup configured for %q", shared.ErrLookupFailed, username)
	}

	s.logger.Debug("resolving username", "username", username)

	id, err := s.lookup.LookupChannelID(ctx, "user/"+username)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", shared.ErrLookupFailed, username, err)
	}
	return id, nil
}
