// Package aggregate orchestrates fetch, normalize, filter, and sort across
// the configured team and sport catalog for the three fixture views.
package aggregate

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"fixtures-service/internal/cache"
	"fixtures-service/internal/config"
	"fixtures-service/internal/domain"
	"fixtures-service/internal/logging"
	"fixtures-service/internal/metrics"
	"fixtures-service/internal/normalize"
	"fixtures-service/internal/timeutil"
	"fixtures-service/internal/upstream"
)

const (
	defaultWorkers      = 4
	defaultFetchTimeout = 10 * time.Second

	upstreamSportsDB = "sportsdb"
	upstreamProxy    = "proxy"
)

// Deps wires a Service. Schedule may be nil when no proxy is configured;
// teams routed by slug then fail with a ConfigError instead of a fetch.
type Deps struct {
	Catalog      config.Catalog
	Events       upstream.EventSource
	Refs         upstream.ReferenceSource
	Schedule     upstream.ScheduleSource
	Cache        *cache.Store
	Logger       *slog.Logger
	Metrics      *metrics.Recorder
	Workers      int
	FetchTimeout time.Duration
}

// Service aggregates fixtures across the catalog. All operations are
// read-only with respect to configuration; the only mutable state is the
// lookup cache, which is safe for concurrent use.
type Service struct {
	catalog      config.Catalog
	events       upstream.EventSource
	refs         upstream.ReferenceSource
	schedule     upstream.ScheduleSource
	cache        *cache.Store
	logger       *slog.Logger
	metrics      *metrics.Recorder
	workers      int
	fetchTimeout time.Duration
	now          func() time.Time

	// teamsByName indexes catalog teams by lowercased display name so badge
	// lookups triggered by upstream team names can route to a numeric ID.
	teamsByName map[string]domain.TeamRef
}

// NewService constructs a Service with sane defaults.
func NewService(deps Deps) *Service {
	workers := deps.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	fetchTimeout := deps.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	store := deps.Cache
	if store == nil {
		store = cache.NewStore(deps.Catalog.TTL)
	}

	byName := make(map[string]domain.TeamRef, len(deps.Catalog.Teams))
	for _, team := range deps.Catalog.Teams {
		byName[strings.ToLower(team.Name)] = team
	}

	return &Service{
		catalog:      deps.Catalog,
		events:       deps.Events,
		refs:         deps.Refs,
		schedule:     deps.Schedule,
		cache:        store,
		logger:       deps.Logger,
		metrics:      deps.Metrics,
		workers:      workers,
		fetchTimeout: fetchTimeout,
		now:          time.Now,
		teamsByName:  byName,
	}
}

// TodayDigest fetches every configured team's events concurrently, keeps
// those happening today in the configured zone, and merges them into one
// list ordered by start instant. A failing team is reported in Failures and
// excluded; it never blocks the other teams.
func (s *Service) TodayDigest(ctx context.Context) (domain.DigestResponse, error) {
	start := s.now()
	today := timeutil.FormatDate(start.In(s.catalog.Zone))

	teams := s.sortedTeams()

	var (
		mu       sync.Mutex
		fixtures []domain.Fixture
		failures []domain.TeamFailure
		wg       sync.WaitGroup
	)

	pool, poolErr := ants.NewPool(s.workers)
	if poolErr == nil {
		defer pool.Release()
	}

	for _, team := range teams {
		team := team
		wg.Add(1)
		run := func() {
			defer wg.Done()

			raws, err := s.fetchTeamEvents(ctx, team)
			if err != nil {
				logging.Warn(s.logger, "digest team fetch failed",
					logging.FieldTeam, team.Key, "error", err)
				mu.Lock()
				failures = append(failures, domain.TeamFailure{Team: team.Key, Error: err.Error()})
				mu.Unlock()
				return
			}

			todays := s.normalizeAll(ctx, raws, nil)
			mu.Lock()
			for _, fixture := range todays {
				if fixture.Date == today {
					fixtures = append(fixtures, fixture)
				}
			}
			mu.Unlock()
		}
		if poolErr != nil || pool.Submit(run) != nil {
			run()
		}
	}
	wg.Wait()

	sortByInstant(fixtures)
	sort.Slice(failures, func(i, j int) bool { return failures[i].Team < failures[j].Team })

	if s.metrics != nil {
		s.metrics.RecordDigestCycle(time.Since(start), len(failures))
	}
	logging.Info(s.logger, "today digest built",
		logging.FieldDate, today,
		logging.FieldCount, len(fixtures),
		"failed_teams", len(failures),
	)

	return domain.DigestResponse{Date: today, Fixtures: fixtures, Failures: failures}, nil
}

// SportFixtures returns the future fixtures of one sport or league. The key
// resolves directly against the sport catalog, or as a raw league ID when no
// sport entry matches.
func (s *Service) SportFixtures(ctx context.Context, key string) (domain.FixturesResponse, error) {
	key = strings.ToLower(strings.TrimSpace(key))

	sport, ok := s.catalog.Sports[key]
	if !ok {
		for _, candidate := range s.catalog.Sports {
			if candidate.LeagueID == key {
				sport, ok = candidate, true
				break
			}
		}
	}
	if !ok {
		return domain.FixturesResponse{}, &domain.NotFoundError{Kind: "sport", Key: key}
	}

	raws, err := s.fetchSeasonEvents(ctx, sport)
	if err != nil {
		return domain.FixturesResponse{}, err
	}

	fixtures := s.normalizeAll(ctx, raws, s.leagueLogoFn(ctx, sport.LeagueID))
	fixtures = s.futureOnly(fixtures)
	sortByDateTime(fixtures)

	resp := domain.FixturesResponse{Sport: sport.Name, Fixtures: fixtures}
	if sport.Motorsport {
		resp.Weekends = normalize.GroupRaceWeekends(fixtures)
	}
	return resp, nil
}

// TeamFixtures returns the upcoming fixtures of one configured team. The
// future filter is applied here regardless of whether the upstream already
// limits to future events; that guarantee is not relied upon.
func (s *Service) TeamFixtures(ctx context.Context, key string) (domain.FixturesResponse, error) {
	team, ok := s.catalog.Teams[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return domain.FixturesResponse{}, &domain.NotFoundError{Kind: "team", Key: key}
	}
	if err := s.routable(team); err != nil {
		return domain.FixturesResponse{}, err
	}

	raws, err := s.fetchTeamEvents(ctx, team)
	if err != nil {
		return domain.FixturesResponse{}, err
	}

	fixtures := s.normalizeAll(ctx, raws, nil)
	fixtures = s.futureOnly(fixtures)
	sortByDateTime(fixtures)

	return domain.FixturesResponse{Sport: team.Name, Fixtures: fixtures}, nil
}

func (s *Service) normalizeAll(ctx context.Context, raws []upstream.RawEvent, leagueLogo func() string) []domain.Fixture {
	deps := normalize.Deps{
		TeamBadge:  func(name string) string { return s.cachedTeamBadge(ctx, name) },
		LeagueLogo: leagueLogo,
		Zone:       s.catalog.Zone,
	}

	fixtures := make([]domain.Fixture, 0, len(raws))
	for _, raw := range raws {
		fixture, err := normalize.Event(raw, deps)
		if err != nil {
			// Malformed records are dropped, never defaulted; the rest of
			// the payload still aggregates.
			logging.Warn(s.logger, "dropping malformed event", "event", raw.Name, "error", err)
			continue
		}
		fixtures = append(fixtures, fixture)
	}
	return fixtures
}

func (s *Service) futureOnly(fixtures []domain.Fixture) []domain.Fixture {
	now := s.now()
	kept := fixtures[:0]
	for _, fixture := range fixtures {
		if !fixture.Kickoff.Before(now) {
			kept = append(kept, fixture)
		}
	}
	return kept
}

func (s *Service) sortedTeams() []domain.TeamRef {
	teams := make([]domain.TeamRef, 0, len(s.catalog.Teams))
	for _, team := range s.catalog.Teams {
		teams = append(teams, team)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Key < teams[j].Key })
	return teams
}

func (s *Service) routable(team domain.TeamRef) error {
	if team.SportsDBID != "" {
		return nil
	}
	if team.Slug != "" && team.League != "" && s.schedule != nil {
		return nil
	}
	return &domain.ConfigError{Team: team.Key, Missing: "upstream identifier"}
}
