// Package web exposes the aggregated fixture views over HTTP.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"fixtures-service/internal/config"
	"fixtures-service/internal/domain"
	"fixtures-service/internal/refresh"
	"fixtures-service/internal/upstream"
)

// Aggregator is the slice of the aggregation service the handlers need.
type Aggregator interface {
	TodayDigest(ctx context.Context) (domain.DigestResponse, error)
	SportFixtures(ctx context.Context, key string) (domain.FixturesResponse, error)
	TeamFixtures(ctx context.Context, key string) (domain.FixturesResponse, error)
}

// Handler wires HTTP routes to the aggregation service.
type Handler struct {
	agg      Aggregator
	catalog  config.Catalog
	logger   *slog.Logger
	statusFn func() refresh.Status
}

// NewHandler constructs a Handler. statusFn may be nil when no background
// refresher runs; readiness then reports ready unconditionally.
func NewHandler(agg Aggregator, catalog config.Catalog, logger *slog.Logger, statusFn func() refresh.Status) *Handler {
	return &Handler{
		agg:      agg,
		catalog:  catalog,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

type catalogSport struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	LeagueID   string `json:"leagueId"`
	Season     string `json:"season"`
	Motorsport bool   `json:"motorsport,omitempty"`
}

type catalogTeam struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Sport string `json:"sport,omitempty"`
}

type catalogResponse struct {
	Sports []catalogSport `json:"sports"`
	Teams  []catalogTeam  `json:"teams"`
}

// Catalog returns the configured sports and teams so clients can discover
// valid keys for the fixture views.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	resp := catalogResponse{
		Sports: make([]catalogSport, 0, len(h.catalog.Sports)),
		Teams:  make([]catalogTeam, 0, len(h.catalog.Teams)),
	}
	for _, sport := range h.catalog.Sports {
		resp.Sports = append(resp.Sports, catalogSport{
			Key:        sport.Key,
			Name:       sport.Name,
			LeagueID:   sport.LeagueID,
			Season:     sport.Season,
			Motorsport: sport.Motorsport,
		})
	}
	for _, team := range h.catalog.Teams {
		resp.Teams = append(resp.Teams, catalogTeam{Key: team.Key, Name: team.Name, Sport: team.Sport})
	}
	sort.Slice(resp.Sports, func(i, j int) bool { return resp.Sports[i].Key < resp.Sports[j].Key })
	sort.Slice(resp.Teams, func(i, j int) bool { return resp.Teams[i].Key < resp.Teams[j].Key })

	writeJSON(w, http.StatusOK, resp, h.logger)
}

// FixturesToday returns the cross-team digest for the current local date.
func (h *Handler) FixturesToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	digest, err := h.agg.TodayDigest(r.Context())
	if err != nil {
		h.writeMapped(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, digest, h.logger)
}

// FixturesSport returns the future fixtures of one sport or league.
func (h *Handler) FixturesSport(w http.ResponseWriter, r *http.Request) {
	h.fixturesByKey(w, r, "/fixtures/sport/", h.agg.SportFixtures)
}

// FixturesTeam returns the upcoming fixtures of one configured team.
func (h *Handler) FixturesTeam(w http.ResponseWriter, r *http.Request) {
	h.fixturesByKey(w, r, "/fixtures/team/", h.agg.TeamFixtures)
}

func (h *Handler) fixturesByKey(w http.ResponseWriter, r *http.Request, prefix string, fetch func(context.Context, string) (domain.FixturesResponse, error)) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	key, ok := pathKey(r.URL.Path, prefix)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid key", h.logger)
		return
	}

	resp, err := fetch(r.Context(), key)
	if err != nil {
		h.writeMapped(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// pathKey extracts the trailing key segment, rejecting empty and nested
// paths.
func pathKey(path, prefix string) (string, bool) {
	raw := strings.TrimPrefix(path, prefix)
	if raw == "" || strings.Contains(raw, "/") {
		return "", false
	}
	key, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(key) == "" {
		return "", false
	}
	return key, true
}

// writeMapped translates domain errors onto HTTP statuses: unknown keys are
// the client's problem, broken catalog entries are configuration, and a
// failing upstream is a bad gateway.
func (h *Handler) writeMapped(w http.ResponseWriter, r *http.Request, err error) {
	logger := loggerFromContext(r, h.logger)

	if nf, ok := domain.AsNotFound(err); ok {
		writeError(w, r, http.StatusNotFound, nf.Error(), logger)
		return
	}
	if ce, ok := domain.AsConfigError(err); ok {
		writeError(w, r, http.StatusBadRequest, ce.Error(), logger)
		return
	}
	if fe, ok := upstream.AsFetchError(err); ok {
		if logger != nil {
			logger.Warn("upstream fetch failed", "error", fe)
		}
		writeError(w, r, http.StatusBadGateway, "upstream unavailable", logger)
		return
	}
	if logger != nil {
		logger.Error("request failed", "error", err)
	}
	writeError(w, r, http.StatusInternalServerError, "internal error", logger)
}
