package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewNormalizesOrder(t *testing.T) {
	r := New(day(2024, 1, 10), day(2024, 1, 5))
	assert.Equal(t, day(2024, 1, 5), r.Start)
	assert.Equal(t, day(2024, 1, 10), r.End)

	r = New(day(2024, 1, 5), day(2024, 1, 10))
	assert.Equal(t, day(2024, 1, 5), r.Start)
	assert.Equal(t, day(2024, 1, 10), r.End)
}

func TestNewTruncatesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	r := New(
		time.Date(2024, 1, 5, 23, 30, 0, 0, loc),
		time.Date(2024, 1, 6, 1, 0, 0, 0, time.UTC),
	)
	assert.Equal(t, day(2024, 1, 6), r.Start)
	assert.Equal(t, day(2024, 1, 6), r.End)
}

func TestDaysInclusive(t *testing.T) {
	assert.Equal(t, 1, New(day(2024, 1, 1), day(2024, 1, 1)).Days())
	assert.Equal(t, 3, New(day(2024, 1, 1), day(2024, 1, 3)).Days())
	// Leap year: a full year is 366 days.
	assert.Equal(t, 366, New(day(2024, 1, 1), day(2024, 12, 31)).Days())
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Range
		expected bool
	}{
		{"disjoint", New(day(2024, 1, 1), day(2024, 1, 5)), New(day(2024, 1, 10), day(2024, 1, 15)), false},
		{"adjacent not touching", New(day(2024, 1, 1), day(2024, 1, 5)), New(day(2024, 1, 6), day(2024, 1, 10)), false},
		{"shared boundary day", New(day(2024, 1, 1), day(2024, 1, 5)), New(day(2024, 1, 5), day(2024, 1, 10)), true},
		{"partial overlap", New(day(2024, 1, 1), day(2024, 1, 7)), New(day(2024, 1, 5), day(2024, 1, 10)), true},
		{"contained", New(day(2024, 1, 1), day(2024, 1, 31)), New(day(2024, 1, 10), day(2024, 1, 12)), true},
		{"identical", New(day(2024, 1, 1), day(2024, 1, 5)), New(day(2024, 1, 1), day(2024, 1, 5)), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Overlaps(tc.b))
			// Overlap is symmetric.
			assert.Equal(t, tc.expected, tc.b.Overlaps(tc.a))
		})
	}
}

func TestClampTo(t *testing.T) {
	window := New(day(2024, 1, 5), day(2024, 1, 10))

	clamped := New(day(2024, 1, 1), day(2024, 1, 7)).ClampTo(window)
	assert.Equal(t, day(2024, 1, 5), clamped.Start)
	assert.Equal(t, day(2024, 1, 7), clamped.End)

	clamped = New(day(2024, 1, 7), day(2024, 1, 20)).ClampTo(window)
	assert.Equal(t, day(2024, 1, 7), clamped.Start)
	assert.Equal(t, day(2024, 1, 10), clamped.End)

	clamped = New(day(2024, 1, 1), day(2024, 1, 20)).ClampTo(window)
	assert.Equal(t, window, clamped)
}

func TestParseISO(t *testing.T) {
	parsed, err := ParseISO("2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, day(2024, 1, 3), parsed)

	for _, bad := range []string{"", "2024-01", "2024-1-3", "03/01/2024", "2024-01-03T00:00:00Z", "not-a-date", "2024-13-01"} {
		_, err := ParseISO(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestFormatISORoundTrip(t *testing.T) {
	parsed, err := ParseISO("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatISO(parsed))
}

func TestEachDayOrder(t *testing.T) {
	var days []string
	New(day(2024, 1, 1), day(2024, 1, 3)).EachDay(func(d time.Time) {
		days = append(days, FormatISO(d))
	})
	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, days)
}
