package service

import (
	"testing"
	"time"

	"balneario/internal/daterange"
	"balneario/internal/db"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func activeGroup(id int, start, end time.Time) db.ReservationGroup {
	return db.ReservationGroup{
		ID:        id,
		StartDate: start,
		EndDate:   end,
		Status:    db.GroupStatusActive,
	}
}

func TestConflictingGroupIDsOverlap(t *testing.T) {
	existing := []db.ReservationGroup{
		activeGroup(1, day(2024, 1, 1), day(2024, 1, 5)),
		activeGroup(2, day(2024, 1, 10), day(2024, 1, 15)),
	}
	candidate := daterange.New(day(2024, 1, 4), day(2024, 1, 8))

	assert.Equal(t, []int{1}, conflictingGroupIDs(existing, candidate, 0))
}

func TestConflictingGroupIDsSharedBoundaryDayConflicts(t *testing.T) {
	existing := []db.ReservationGroup{activeGroup(1, day(2024, 1, 1), day(2024, 1, 5))}

	candidate := daterange.New(day(2024, 1, 5), day(2024, 1, 10))
	assert.Equal(t, []int{1}, conflictingGroupIDs(existing, candidate, 0))
}

func TestConflictingGroupIDsAdjacentRangesDoNotConflict(t *testing.T) {
	existing := []db.ReservationGroup{activeGroup(1, day(2024, 1, 1), day(2024, 1, 5))}

	candidate := daterange.New(day(2024, 1, 6), day(2024, 1, 10))
	assert.Empty(t, conflictingGroupIDs(existing, candidate, 0))
}

func TestConflictingGroupIDsMutualExclusion(t *testing.T) {
	g1 := activeGroup(1, day(2024, 1, 1), day(2024, 1, 7))
	g2 := activeGroup(2, day(2024, 1, 5), day(2024, 1, 12))

	// Either group blocks the other when inserted in its presence.
	assert.NotEmpty(t, conflictingGroupIDs([]db.ReservationGroup{g1}, daterange.New(g2.StartDate, g2.EndDate), 0))
	assert.NotEmpty(t, conflictingGroupIDs([]db.ReservationGroup{g2}, daterange.New(g1.StartDate, g1.EndDate), 0))
}

func TestConflictingGroupIDsSkipsCancelled(t *testing.T) {
	cancelled := activeGroup(1, day(2024, 1, 1), day(2024, 1, 5))
	cancelled.Status = db.GroupStatusCancelled
	existing := []db.ReservationGroup{cancelled}

	candidate := daterange.New(day(2024, 1, 1), day(2024, 1, 5))
	assert.Empty(t, conflictingGroupIDs(existing, candidate, 0))
}

func TestConflictingGroupIDsExcludesGroupBeingUpdated(t *testing.T) {
	existing := []db.ReservationGroup{
		activeGroup(7, day(2024, 1, 1), day(2024, 1, 5)),
		activeGroup(8, day(2024, 1, 4), day(2024, 1, 6)),
	}
	candidate := daterange.New(day(2024, 1, 2), day(2024, 1, 6))

	assert.Equal(t, []int{8}, conflictingGroupIDs(existing, candidate, 7))
}
