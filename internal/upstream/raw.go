package upstream

// Shape discriminates which upstream wire format a RawEvent came from. It is
// resolved once by the client so downstream code never sniffs field names.
type Shape int

const (
	// ShapeSportsDB marks events from the query-string API keyed by numeric
	// IDs: flat records with separate date/time fields and badge URLs.
	ShapeSportsDB Shape = iota
	// ShapeProxy marks events from the path-based schedule proxy keyed by
	// slug+league: a combined timestamp and nested competitor sub-records
	// flattened by the client.
	ShapeProxy
)

// RawEvent is the unmodified upstream representation of one scheduled match
// or session, flattened from whichever wire shape produced it. Fields not
// present upstream are left empty; no semantic validation has happened yet.
type RawEvent struct {
	Shape Shape

	Name string
	Home string
	Away string

	// Date (YYYY-MM-DD) and Clock (HH:MM or HH:MM:SS) are the split
	// encoding; Stamp is the combined ISO encoding. The ID-keyed upstream
	// may carry both; the combined stamp wins when present.
	Date  string
	Clock string
	Stamp string

	Venue     string
	Thumb     string
	HomeBadge string
	AwayBadge string
	Broadcast string
}
