package aggregate

import (
	"sort"

	"fixtures-service/internal/domain"
)

// sortByInstant orders fixtures ascending by start instant. Stable: equal
// instants keep their input order.
func sortByInstant(fixtures []domain.Fixture) {
	sort.SliceStable(fixtures, func(i, j int) bool {
		return fixtures[i].Kickoff.Before(fixtures[j].Kickoff)
	})
}

// sortByDateTime orders fixtures by (date, time) ascending, with an empty
// time sorting ahead of any clock on the same date. Stable for equal keys.
func sortByDateTime(fixtures []domain.Fixture) {
	sort.SliceStable(fixtures, func(i, j int) bool {
		a, b := fixtures[i], fixtures[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if (a.Time == "") != (b.Time == "") {
			return a.Time == ""
		}
		return a.Time < b.Time
	})
}
