package upstream

import "context"

// EventSource fetches raw scheduled events from the ID-keyed upstream.
type EventSource interface {
	NextTeamEvents(ctx context.Context, teamID string) ([]RawEvent, error)
	NextLeagueEvents(ctx context.Context, leagueID string) ([]RawEvent, error)
	SeasonEvents(ctx context.Context, leagueID, season string) ([]RawEvent, error)
}

// ReferenceSource fetches slow-changing reference data used to fill in
// fields missing from event records.
type ReferenceSource interface {
	TeamBadge(ctx context.Context, teamID string) (string, error)
	LeagueLogo(ctx context.Context, leagueID string) (string, error)
}

// ScheduleSource fetches a team's schedule from the slug-keyed proxy.
type ScheduleSource interface {
	TeamSchedule(ctx context.Context, slug, league string) ([]RawEvent, error)
}
