package daterange

import (
	"fmt"
	"time"
)

const isoDate = "2006-01-02"

// Range is a closed interval [Start, End] of whole calendar days. Both
// bounds are midnight UTC; all day arithmetic happens in UTC so ranges
// never drift across daylight-saving transitions.
type Range struct {
	Start time.Time
	End   time.Time
}

// New builds a normalized Range from two dates supplied in any order.
func New(a, b time.Time) Range {
	a, b = truncateDay(a), truncateDay(b)
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseISO parses a strict YYYY-MM-DD date. Anything else (missing parts,
// non-numeric fields, time components) is an error, never a partially
// parsed date.
func ParseISO(s string) (time.Time, error) {
	t, err := time.ParseInLocation(isoDate, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatISO renders a date as YYYY-MM-DD in UTC.
func FormatISO(t time.Time) string {
	return t.UTC().Format(isoDate)
}

// Days returns the inclusive day count: a single-day range counts as 1.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Overlaps reports whether two closed ranges share at least one day.
// Ranges meeting on exactly one boundary day overlap.
func (r Range) Overlaps(o Range) bool {
	return !(r.End.Before(o.Start) || r.Start.After(o.End))
}

// ClampTo intersects r with a window. Only meaningful when the ranges
// overlap; callers check Overlaps first.
func (r Range) ClampTo(window Range) Range {
	out := r
	if out.Start.Before(window.Start) {
		out.Start = window.Start
	}
	if out.End.After(window.End) {
		out.End = window.End
	}
	return out
}

// EachDay calls fn once per day of the range in ascending order.
func (r Range) EachDay(fn func(day time.Time)) {
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}
