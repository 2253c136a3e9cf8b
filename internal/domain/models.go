package domain

import "time"

// SportRef identifies a followed sport or league. Entries are built from the
// catalog file at startup and never mutated afterwards.
type SportRef struct {
	Key        string
	Name       string
	LeagueID   string
	Season     string
	Motorsport bool
}

// TeamRef identifies a followed team. A team routes to exactly one upstream:
// TheSportsDB when SportsDBID is set, the schedule proxy when Slug+League are.
type TeamRef struct {
	Key        string
	Name       string
	SportsDBID string
	Slug       string
	League     string
	Sport      string
}

// Catalog is the immutable set of followed sports and teams, keyed by
// lowercased catalog key.
type Catalog struct {
	Sports map[string]SportRef
	Teams  map[string]TeamRef
}

// Fixture is the canonical normalized representation of one scheduled
// match or session. Date and Time are always rendered from Kickoff in the
// configured display zone, so the three can never disagree. Time is empty
// when the upstream record carried only a calendar date.
type Fixture struct {
	Name      string    `json:"name,omitempty"`
	Home      string    `json:"home,omitempty"`
	Away      string    `json:"away,omitempty"`
	Date      string    `json:"date"`
	Time      string    `json:"time,omitempty"`
	Venue     string    `json:"venue"`
	Thumb     string    `json:"thumb,omitempty"`
	HomeBadge string    `json:"homeBadge,omitempty"`
	AwayBadge string    `json:"awayBadge,omitempty"`
	Broadcast string    `json:"broadcast,omitempty"`
	Kickoff   time.Time `json:"kickoff"`
}

// RaceWeekend groups the sessions of one multi-session motorsport event.
// Sessions are ordered by start instant.
type RaceWeekend struct {
	Name     string    `json:"name"`
	Sessions []Fixture `json:"sessions"`
}

// TeamFailure records a per-team fetch failure during the today digest.
type TeamFailure struct {
	Team  string `json:"team"`
	Error string `json:"error"`
}

// DigestResponse is the payload for the cross-team today view. Failures
// lists teams whose upstream fetch failed; their fixtures are simply absent.
type DigestResponse struct {
	Date     string        `json:"date"`
	Fixtures []Fixture     `json:"fixtures"`
	Failures []TeamFailure `json:"failures,omitempty"`
}

// FixturesResponse is the payload for the per-sport and per-team views.
// Weekends is populated only for motorsport sports.
type FixturesResponse struct {
	Sport    string        `json:"sport"`
	Fixtures []Fixture     `json:"fixtures"`
	Weekends []RaceWeekend `json:"raceWeekends,omitempty"`
}
