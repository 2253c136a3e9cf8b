package proxy

import (
	"strings"

	"fixtures-service/internal/upstream"
)

// mapEvent flattens one nested schedule event into a RawEvent. The first
// competition carries the venue, competitors, and broadcast sub-records.
func mapEvent(e scheduleEvent) upstream.RawEvent {
	raw := upstream.RawEvent{
		Shape: upstream.ShapeProxy,
		Name:  strings.TrimSpace(e.Name),
		Stamp: strings.TrimSpace(e.Date),
	}

	if len(e.Competitions) == 0 {
		return raw
	}
	comp := e.Competitions[0]

	if raw.Stamp == "" {
		raw.Stamp = strings.TrimSpace(comp.Date)
	}
	raw.Venue = strings.TrimSpace(comp.Venue.FullName)

	for _, competitor := range comp.Competitors {
		name := strings.TrimSpace(competitor.Team.DisplayName)
		badge := firstLogo(competitor.Team.Logos)
		switch strings.ToLower(competitor.HomeAway) {
		case "home":
			raw.Home = name
			raw.HomeBadge = badge
		case "away":
			raw.Away = name
			raw.AwayBadge = badge
		}
	}

	if len(comp.Broadcasts) > 0 {
		raw.Broadcast = strings.TrimSpace(comp.Broadcasts[0].Media.ShortName)
	}
	return raw
}

func mapEvents(records []scheduleEvent) []upstream.RawEvent {
	events := make([]upstream.RawEvent, 0, len(records))
	for _, record := range records {
		events = append(events, mapEvent(record))
	}
	return events
}

func firstLogo(logos []logo) string {
	if len(logos) == 0 {
		return ""
	}
	return strings.TrimSpace(logos[0].Href)
}
