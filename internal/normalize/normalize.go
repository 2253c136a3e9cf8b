// Package normalize maps raw upstream event records into canonical Fixtures,
// resolving missing thumbnail and badge fields through fallback lookups.
package normalize

import (
	"strings"
	"time"

	"fixtures-service/internal/domain"
	"fixtures-service/internal/timeutil"
	"fixtures-service/internal/upstream"
)

// venuePlaceholder is the single venue default applied to both upstream
// shapes when the record carries no venue.
const venuePlaceholder = "TBA"

// Deps supplies the lookups a normalization pass may need. TeamBadge is
// keyed by lowercased team display name and returns an empty URL when the
// team is unknown. LeagueLogo is invoked lazily and only when the thumbnail
// chain falls all the way through; it is nil outside sport/league views.
type Deps struct {
	TeamBadge  func(name string) string
	LeagueLogo func() string
	Zone       *time.Location
}

// Event normalizes one raw upstream record into a Fixture. An error means
// the record is malformed (missing or unparseable date/time) and must be
// excluded rather than defaulted to an arbitrary instant.
func Event(raw upstream.RawEvent, deps Deps) (domain.Fixture, error) {
	kickoff, err := timeutil.ParseEventInstant(raw.Date, raw.Clock, raw.Stamp)
	if err != nil {
		return domain.Fixture{}, err
	}

	date, clock := timeutil.ToLocal(kickoff, deps.Zone)
	// A record carrying only a calendar date has no meaningful time of day;
	// leave it empty so it sorts ahead of timed fixtures on the same date.
	if raw.Clock == "" && raw.Stamp == "" {
		clock = ""
	}

	fixture := domain.Fixture{
		Name:      raw.Name,
		Home:      raw.Home,
		Away:      raw.Away,
		Date:      date,
		Time:      clock,
		Venue:     raw.Venue,
		Broadcast: raw.Broadcast,
		Kickoff:   kickoff,
	}
	if fixture.Venue == "" {
		fixture.Venue = venuePlaceholder
	}

	fixture.HomeBadge = firstNonEmpty(raw.HomeBadge, deps.badgeFor(raw.Home))
	fixture.AwayBadge = firstNonEmpty(raw.AwayBadge, deps.badgeFor(raw.Away))
	fixture.Thumb = resolveThumb(raw, deps)

	return fixture, nil
}

// resolveThumb walks the fallback chain: explicit event thumbnail, home team
// badge, away team badge, then league logo. First non-empty wins.
func resolveThumb(raw upstream.RawEvent, deps Deps) string {
	if raw.Thumb != "" {
		return raw.Thumb
	}
	if badge := deps.badgeFor(raw.Home); badge != "" {
		return badge
	}
	if badge := deps.badgeFor(raw.Away); badge != "" {
		return badge
	}
	if deps.LeagueLogo != nil {
		return deps.LeagueLogo()
	}
	return ""
}

func (d Deps) badgeFor(name string) string {
	if d.TeamBadge == nil || name == "" {
		return ""
	}
	return d.TeamBadge(strings.ToLower(name))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
