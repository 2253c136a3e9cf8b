package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fixtures-service/internal/config"
	"fixtures-service/internal/domain"
	"fixtures-service/internal/refresh"
	"fixtures-service/internal/upstream"
)

type stubAggregator struct {
	digest    domain.DigestResponse
	digestErr error
	sport     domain.FixturesResponse
	sportErr  error
	team      domain.FixturesResponse
	teamErr   error

	lastKey string
}

func (s *stubAggregator) TodayDigest(ctx context.Context) (domain.DigestResponse, error) {
	return s.digest, s.digestErr
}

func (s *stubAggregator) SportFixtures(ctx context.Context, key string) (domain.FixturesResponse, error) {
	s.lastKey = key
	return s.sport, s.sportErr
}

func (s *stubAggregator) TeamFixtures(ctx context.Context, key string) (domain.FixturesResponse, error) {
	s.lastKey = key
	return s.team, s.teamErr
}

func newTestHandler(agg Aggregator) *Handler {
	catalog := config.Catalog{
		Sports: map[string]domain.SportRef{
			"f1":  {Key: "f1", Name: "Formula 1", LeagueID: "4370", Season: "2024", Motorsport: true},
			"epl": {Key: "epl", Name: "Premier League", LeagueID: "4328", Season: "2024-2025"},
		},
		Teams: map[string]domain.TeamRef{
			"arsenal": {Key: "arsenal", Name: "Arsenal", SportsDBID: "133604", Sport: "epl"},
		},
	}
	return NewHandler(agg, catalog, nil, nil)
}

func doRequest(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthReturnsOK(t *testing.T) {
	router := NewRouter(newTestHandler(&stubAggregator{}))

	rec := doRequest(router, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected ok status, got %+v", body)
	}
}

func TestReadyWithoutRefresherIsAlwaysReady(t *testing.T) {
	router := NewRouter(newTestHandler(&stubAggregator{}))

	rec := doRequest(router, http.MethodGet, "/ready")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyReflectsRefresherStatus(t *testing.T) {
	status := refresh.Status{}
	handler := NewHandler(&stubAggregator{}, config.Catalog{}, nil, func() refresh.Status { return status })
	router := NewRouter(handler)

	rec := doRequest(router, http.MethodGet, "/ready")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before first success, got %d", rec.Code)
	}

	status = refresh.Status{LastSuccess: time.Now()}
	rec = doRequest(router, http.MethodGet, "/ready")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after success, got %d", rec.Code)
	}
}

func TestCatalogListsSortedEntries(t *testing.T) {
	router := NewRouter(newTestHandler(&stubAggregator{}))

	rec := doRequest(router, http.MethodGet, "/catalog")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body catalogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Sports) != 2 || body.Sports[0].Key != "epl" || body.Sports[1].Key != "f1" {
		t.Fatalf("expected sorted sports, got %+v", body.Sports)
	}
	if len(body.Teams) != 1 || body.Teams[0].Key != "arsenal" {
		t.Fatalf("expected configured team, got %+v", body.Teams)
	}
}

func TestFixturesTodayReturnsDigestWithFailures(t *testing.T) {
	agg := &stubAggregator{
		digest: domain.DigestResponse{
			Date:     "2024-06-01",
			Fixtures: []domain.Fixture{{Home: "Arsenal", Away: "Chelsea", Date: "2024-06-01", Venue: "Emirates"}},
			Failures: []domain.TeamFailure{{Team: "spurs", Error: "fetch failed"}},
		},
	}
	router := NewRouter(newTestHandler(agg))

	rec := doRequest(router, http.MethodGet, "/fixtures/today")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body domain.DigestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Date != "2024-06-01" || len(body.Fixtures) != 1 || len(body.Failures) != 1 {
		t.Fatalf("unexpected digest payload: %+v", body)
	}
}

func TestFixturesSportPassesKey(t *testing.T) {
	agg := &stubAggregator{sport: domain.FixturesResponse{Sport: "Formula 1"}}
	router := NewRouter(newTestHandler(agg))

	rec := doRequest(router, http.MethodGet, "/fixtures/sport/f1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if agg.lastKey != "f1" {
		t.Fatalf("expected key passed through, got %q", agg.lastKey)
	}
}

func TestFixturesTeamErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown team", &domain.NotFoundError{Kind: "team", Key: "nope"}, http.StatusNotFound},
		{"broken catalog entry", &domain.ConfigError{Team: "ghosts", Missing: "upstream identifier"}, http.StatusBadRequest},
		{"upstream failure", &upstream.FetchError{ID: "133604", Err: errors.New("timeout")}, http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := &stubAggregator{teamErr: tt.err}
			router := NewRouter(newTestHandler(agg))

			rec := doRequest(router, http.MethodGet, "/fixtures/team/arsenal")
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if body["error"] == "" {
				t.Fatal("expected an error message")
			}
		})
	}
}

func TestFixturesRejectsBadKeys(t *testing.T) {
	router := NewRouter(newTestHandler(&stubAggregator{}))

	for _, target := range []string{"/fixtures/team/", "/fixtures/team/a/b", "/fixtures/sport/%20"} {
		rec := doRequest(router, http.MethodGet, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	router := NewRouter(newTestHandler(&stubAggregator{}))

	for _, target := range []string{"/health", "/ready", "/catalog", "/fixtures/today", "/fixtures/team/arsenal"} {
		rec := doRequest(router, http.MethodPost, target)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: expected 405, got %d", target, rec.Code)
		}
	}
}
