package service

import (
	"balneario/internal/daterange"
	"balneario/internal/db"
)

// conflictingGroupIDs returns the IDs of active groups whose date range
// overlaps the candidate range, skipping the group being edited. The
// caller fetches groups for the same establishment, service and resource;
// this function is a pure decision over those rows.
func conflictingGroupIDs(groups []db.ReservationGroup, candidate daterange.Range, excludeGroupID int) []int {
	var ids []int
	for _, g := range groups {
		if excludeGroupID != 0 && g.ID == excludeGroupID {
			continue
		}
		if g.Status != db.GroupStatusActive {
			continue
		}
		if daterange.New(g.StartDate, g.EndDate).Overlaps(candidate) {
			ids = append(ids, g.ID)
		}
	}
	return ids
}
