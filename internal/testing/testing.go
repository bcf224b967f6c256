// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/desertthunder/tubestuff/internal/models"
	"github.com/desertthunder/tubestuff/internal/shared"
)

// MockLookup is a test double for [resolver.ChannelLookup].
//
// Pages found in IDs resolve to their value; any other page fails with Err, or with a generic error when Err is nil.
type MockLookup struct {
	IDs map[string]string
	Err error

	mu    sync.Mutex
	calls []string
}

func (m *MockLookup) LookupChannelID(ctx context.Context, page string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, page)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if id, ok := m.IDs[page]; ok && m.Err == nil {
		return id, nil
	}
	if m.Err != nil {
		return "", m.Err
	}
	return "", errors.New("page not found: " + page)
}

// Calls returns the pages looked up so far, in order.
func (m *MockLookup) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MockAddedChecker reports the listed video IDs as added.
type MockAddedChecker map[string]bool

func (m MockAddedChecker) IsAdded(videoID string) bool {
	return m[videoID]
}

// MockService is an in-memory metadata service for handler and command tests.
//
// Missing channels and videos fail with the matching not-found error; Err, when set, fails every call.
type MockService struct {
	Channels  map[string]*models.Channel       // keyed by ID or username
	Pages     map[string]*models.ChannelVideos // keyed by channel ID + "|" + page token
	VideoByID map[string]models.Video
	Popular   map[string]string
	Err       error

	mu    sync.Mutex
	calls []string
}

func (m *MockService) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

// Calls returns the recorded calls as "method:arg" strings, in order.
func (m *MockService) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockService) Channel(ctx context.Context, idOrUsername string) (*models.Channel, error) {
	m.record("Channel:" + idOrUsername)
	if m.Err != nil {
		return nil, m.Err
	}
	if ch, ok := m.Channels[idOrUsername]; ok {
		return ch, nil
	}
	return nil, fmt.Errorf("%w: %s", shared.ErrChannelNotFound, idOrUsername)
}

func (m *MockService) ChannelVideos(ctx context.Context, channelID, pageToken string) (*models.ChannelVideos, error) {
	m.record("ChannelVideos:" + channelID + "|" + pageToken)
	if m.Err != nil {
		return nil, m.Err
	}
	if page, ok := m.Pages[channelID+"|"+pageToken]; ok {
		return page, nil
	}
	return &models.ChannelVideos{ChannelID: channelID, Videos: []models.VideoSummary{}}, nil
}

func (m *MockService) Videos(ctx context.Context, ids ...string) ([]models.Video, error) {
	m.record(fmt.Sprintf("Videos:%v", ids))
	if m.Err != nil {
		return nil, m.Err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no video ids", shared.ErrInvalidInput)
	}

	videos := []models.Video{}
	for _, id := range ids {
		if v, ok := m.VideoByID[id]; ok {
			videos = append(videos, v)
		}
	}
	return videos, nil
}

func (m *MockService) PopularVideo(ctx context.Context, channelID string) (string, error) {
	m.record("PopularVideo:" + channelID)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Popular[channelID], nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites int, target io.Writer) *LimitedWriter {
	return &LimitedWriter{maxWrites: maxWrites, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}
