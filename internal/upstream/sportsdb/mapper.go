package sportsdb

import (
	"strings"

	"fixtures-service/internal/upstream"
)

func mapEvent(e eventRecord) upstream.RawEvent {
	return upstream.RawEvent{
		Shape:     upstream.ShapeSportsDB,
		Name:      strings.TrimSpace(e.StrEvent),
		Home:      strings.TrimSpace(e.StrHomeTeam),
		Away:      strings.TrimSpace(e.StrAwayTeam),
		Date:      strings.TrimSpace(e.DateEvent),
		Clock:     strings.TrimSpace(e.StrTime),
		Stamp:     strings.TrimSpace(e.StrTimestamp),
		Venue:     strings.TrimSpace(e.StrVenue),
		Thumb:     strings.TrimSpace(e.StrThumb),
		HomeBadge: strings.TrimSpace(e.StrHomeTeamBadge),
		AwayBadge: strings.TrimSpace(e.StrAwayTeamBadge),
		Broadcast: strings.TrimSpace(e.StrTVStation),
	}
}

func mapEvents(records []eventRecord) []upstream.RawEvent {
	events := make([]upstream.RawEvent, 0, len(records))
	for _, record := range records {
		events = append(events, mapEvent(record))
	}
	return events
}

func badgeFromTeam(t teamRecord) string {
	// The API renamed strTeamBadge to strBadge across versions; accept both.
	if badge := strings.TrimSpace(t.StrBadge); badge != "" {
		return badge
	}
	return strings.TrimSpace(t.StrTeamBadge)
}

func logoFromLeague(l leagueRecord) string {
	if logo := strings.TrimSpace(l.StrLogo); logo != "" {
		return logo
	}
	return strings.TrimSpace(l.StrBadge)
}
