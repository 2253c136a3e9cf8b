package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ClockLayout defines the canonical display time format (HH:MM).
const ClockLayout = "15:04"

const (
	clockSecondsLayout = "15:04:05"
	combinedLayout     = "2006-01-02 15:04:05"
)

// Combined timestamp encodings observed upstream: RFC3339, the same without
// an offset, and the minute-precision variant the schedule proxy emits.
var stampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z",
	"2006-01-02T15:04",
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseEventInstant resolves the heterogeneous upstream date/time encodings
// into a single UTC instant. Precedence: a combined stamp wins when present;
// otherwise date plus optional clock, where the clock's length decides
// whether seconds are present; a bare date resolves to midnight UTC.
// Malformed input returns an error so the caller can drop the event rather
// than place it at an arbitrary instant.
func ParseEventInstant(date, clock, stamp string) (time.Time, error) {
	if stamp != "" {
		for _, layout := range stampLayouts {
			if t, err := time.ParseInLocation(layout, stamp, time.UTC); err == nil {
				return t.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("timeutil: unparseable timestamp %q", stamp)
	}

	if date == "" {
		return time.Time{}, fmt.Errorf("timeutil: event has no date")
	}
	if clock == "" {
		t, err := time.ParseInLocation(DateLayout, date, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("timeutil: unparseable date %q", date)
		}
		return t, nil
	}

	var layout string
	switch len(clock) {
	case len(clockSecondsLayout):
		layout = combinedLayout
	case len(ClockLayout):
		layout = DateLayout + " " + ClockLayout
	default:
		return time.Time{}, fmt.Errorf("timeutil: unparseable time %q", clock)
	}

	t, err := time.ParseInLocation(layout, date+" "+clock, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: unparseable date/time %q %q", date, clock)
	}
	return t, nil
}

// ToLocal renders an instant as a calendar date and HH:MM clock in the given
// display zone. A nil zone falls back to UTC.
func ToLocal(t time.Time, loc *time.Location) (string, string) {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return local.Format(DateLayout), local.Format(ClockLayout)
}
