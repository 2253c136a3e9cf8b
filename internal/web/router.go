package web

import "net/http"

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/catalog", handler.Catalog)
	mux.HandleFunc("/fixtures/today", handler.FixturesToday)
	mux.HandleFunc("/fixtures/sport/", handler.FixturesSport)
	mux.HandleFunc("/fixtures/team/", handler.FixturesTeam)
	return mux
}
