package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tubestuff/internal/resolver"
	"github.com/desertthunder/tubestuff/internal/services"
	"github.com/desertthunder/tubestuff/internal/shared"
)

const (
	routeResolve       = "GET /api/resolve"
	routeChannel       = "GET /api/channels/{id}"
	routeChannelVideos = "GET /api/channels/{id}/videos"
	routeVideos        = "GET /api/videos"
)

// ReferenceResolver turns raw input into a channel or video reference.
type ReferenceResolver interface {
	Resolve(ctx context.Context, input string) (resolver.Reference, error)
}

// APIHandler serves the JSON API over a resolver and a metadata service.
type APIHandler struct {
	resolver ReferenceResolver
	service  services.MetadataService
	logger   *log.Logger
}

// NewAPIHandler creates an [APIHandler]. A nil logger discards output.
func NewAPIHandler(r ReferenceResolver, svc services.MetadataService, logger *log.Logger) *APIHandler {
	if logger == nil {
		logger = shared.DiscardLogger()
	}
	return &APIHandler{resolver: r, service: svc, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *APIHandler) Routes() []string {
	return []string{routeResolve, routeChannel, routeChannelVideos, routeVideos}
}

// ServeHTTP dispatches on the mux pattern that matched the request.
func (h *APIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Pattern {
	case routeResolve:
		h.resolve(w, r)
	case routeChannel:
		h.channel(w, r)
	case routeChannelVideos:
		h.channelVideos(w, r)
	case routeVideos:
		h.videos(w, r)
	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

func (h *APIHandler) resolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		h.fail(w, shared.ErrMissingArgument)
		return
	}

	ref, err := h.resolver.Resolve(r.Context(), q)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ref)
}

func (h *APIHandler) channel(w http.ResponseWriter, r *http.Request) {
	id, err := h.channelID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	channel, err := h.service.Channel(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, channel)
}

func (h *APIHandler) channelVideos(w http.ResponseWriter, r *http.Request) {
	id, err := h.channelID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	page, err := h.service.ChannelVideos(r.Context(), id, r.URL.Query().Get("page"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *APIHandler) videos(w http.ResponseWriter, r *http.Request) {
	var ids []string
	for _, v := range r.URL.Query()["id"] {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	videos, err := h.service.Videos(r.Context(), ids...)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

// channelID resolves the {id} path value. Input that does not resolve to a channel is
// passed through so the service can treat it as a username.
func (h *APIHandler) channelID(r *http.Request) (string, error) {
	raw := r.PathValue("id")
	ref, err := h.resolver.Resolve(r.Context(), raw)
	if err != nil {
		return "", err
	}
	if ref.Kind == resolver.Channel {
		return ref.ID, nil
	}
	if ref.Kind == resolver.Video {
		return "", shared.ErrInvalidInput
	}
	return raw, nil
}

func (h *APIHandler) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
	} else {
		h.logger.Debug("request rejected", "error", err)
	}
	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, shared.ErrInvalidInput), errors.Is(err, shared.ErrMissingArgument):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrChannelNotFound), errors.Is(err, shared.ErrVideoNotFound),
		errors.Is(err, shared.ErrNotFound), errors.Is(err, shared.ErrUnknownReference):
		return http.StatusNotFound
	case errors.Is(err, shared.ErrLookupFailed), errors.Is(err, shared.ErrAPIRequest):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := shared.MarshalJSON(v, false)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	data, _ := shared.MarshalJSON(map[string]string{"error": msg}, false)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
