package aggregate

import (
	"context"
	"time"

	"fixtures-service/internal/cache"
	"fixtures-service/internal/domain"
	"fixtures-service/internal/logging"
	"fixtures-service/internal/upstream"
)

// fetchTeamEvents fetches one team's schedule payload through the lookup
// cache, routing to whichever upstream the team's catalog entry names.
func (s *Service) fetchTeamEvents(ctx context.Context, team domain.TeamRef) ([]upstream.RawEvent, error) {
	if err := s.routable(team); err != nil {
		return nil, err
	}

	return cache.Fetch(ctx, s.cache, "events:team:"+team.Key, func(ctx context.Context) ([]upstream.RawEvent, error) {
		callCtx, cancel := s.callCtx(ctx)
		defer cancel()

		start := time.Now()
		var (
			raws []upstream.RawEvent
			err  error
			name string
		)
		if team.SportsDBID != "" {
			name = upstreamSportsDB
			raws, err = s.events.NextTeamEvents(callCtx, team.SportsDBID)
		} else {
			name = upstreamProxy
			raws, err = s.schedule.TeamSchedule(callCtx, team.Slug, team.League)
		}
		if s.metrics != nil {
			s.metrics.RecordUpstreamCall(name, time.Since(start), err)
		}
		return raws, err
	})
}

// fetchSeasonEvents fetches a league's season schedule through the cache.
// Some API tiers return an empty season payload; the next-league endpoint is
// the observed fallback for those.
func (s *Service) fetchSeasonEvents(ctx context.Context, sport domain.SportRef) ([]upstream.RawEvent, error) {
	key := "events:season:" + sport.LeagueID + ":" + sport.Season
	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) ([]upstream.RawEvent, error) {
		callCtx, cancel := s.callCtx(ctx)
		defer cancel()

		start := time.Now()
		raws, err := s.events.SeasonEvents(callCtx, sport.LeagueID, sport.Season)
		if s.metrics != nil {
			s.metrics.RecordUpstreamCall(upstreamSportsDB, time.Since(start), err)
		}
		if err != nil {
			return nil, err
		}
		if len(raws) > 0 {
			return raws, nil
		}

		start = time.Now()
		raws, err = s.events.NextLeagueEvents(callCtx, sport.LeagueID)
		if s.metrics != nil {
			s.metrics.RecordUpstreamCall(upstreamSportsDB, time.Since(start), err)
		}
		return raws, err
	})
}

// cachedTeamBadge resolves a badge URL for an upstream team name. Only
// catalog teams with a numeric ID can be looked up; anything else resolves
// to an empty URL. Lookup failures also resolve empty so one broken badge
// fetch never drops a fixture.
func (s *Service) cachedTeamBadge(ctx context.Context, name string) string {
	team, ok := s.teamsByName[name]
	if !ok || team.SportsDBID == "" {
		return ""
	}

	badge, err := cache.Fetch(ctx, s.cache, "badge:team:"+team.SportsDBID, func(ctx context.Context) (string, error) {
		callCtx, cancel := s.callCtx(ctx)
		defer cancel()

		start := time.Now()
		badge, err := s.refs.TeamBadge(callCtx, team.SportsDBID)
		if s.metrics != nil {
			s.metrics.RecordUpstreamCall(upstreamSportsDB, time.Since(start), err)
		}
		return badge, err
	})
	if err != nil {
		logging.Warn(s.logger, "badge lookup failed", logging.FieldTeam, team.Key, "error", err)
		return ""
	}
	return badge
}

// leagueLogoFn returns a lazy logo lookup for the thumbnail fallback chain.
// The fetch only happens if some fixture actually falls through to it.
func (s *Service) leagueLogoFn(ctx context.Context, leagueID string) func() string {
	return func() string {
		logo, err := cache.Fetch(ctx, s.cache, "logo:league:"+leagueID, func(ctx context.Context) (string, error) {
			callCtx, cancel := s.callCtx(ctx)
			defer cancel()

			start := time.Now()
			logo, err := s.refs.LeagueLogo(callCtx, leagueID)
			if s.metrics != nil {
				s.metrics.RecordUpstreamCall(upstreamSportsDB, time.Since(start), err)
			}
			return logo, err
		})
		if err != nil {
			logging.Warn(s.logger, "league logo lookup failed", "league", leagueID, "error", err)
			return ""
		}
		return logo
	}
}

func (s *Service) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.fetchTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.fetchTimeout)
}
