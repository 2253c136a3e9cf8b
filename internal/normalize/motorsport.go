package normalize

import (
	"sort"
	"strings"
	"time"

	"fixtures-service/internal/domain"
)

// sessionSeparator splits multi-session motorsport event names of the form
// "<race> - <session>". Only the first occurrence splits; race names may
// themselves contain further separators.
const sessionSeparator = " - "

// GroupRaceWeekends groups motorsport fixtures by race. Sessions within a
// weekend are ordered by start instant, and weekends are ordered by their
// earliest session. A fixture without a session suffix stands alone as a
// single-session race named after the whole event.
func GroupRaceWeekends(fixtures []domain.Fixture) []domain.RaceWeekend {
	byRace := make(map[string]*domain.RaceWeekend)
	order := make([]string, 0)

	for _, fixture := range fixtures {
		race, session := splitSessionName(fixture.Name)
		fixture.Name = session

		weekend, ok := byRace[race]
		if !ok {
			weekend = &domain.RaceWeekend{Name: race}
			byRace[race] = weekend
			order = append(order, race)
		}
		weekend.Sessions = append(weekend.Sessions, fixture)
	}

	weekends := make([]domain.RaceWeekend, 0, len(order))
	for _, race := range order {
		weekend := byRace[race]
		sort.SliceStable(weekend.Sessions, func(i, j int) bool {
			return weekend.Sessions[i].Kickoff.Before(weekend.Sessions[j].Kickoff)
		})
		weekends = append(weekends, *weekend)
	}

	sort.SliceStable(weekends, func(i, j int) bool {
		return earliest(weekends[i]).Before(earliest(weekends[j]))
	})
	return weekends
}

func splitSessionName(name string) (race, session string) {
	if idx := strings.Index(name, sessionSeparator); idx >= 0 {
		return name[:idx], name[idx+len(sessionSeparator):]
	}
	return name, name
}

func earliest(weekend domain.RaceWeekend) time.Time {
	return weekend.Sessions[0].Kickoff
}
