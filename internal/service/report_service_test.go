package service

import (
	"testing"
	"time"

	"balneario/internal/daterange"
	"balneario/internal/db"
	apperrors "balneario/internal/errors"
	"balneario/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offered(serviceType string, capacity int) db.EstablishmentService {
	return db.EstablishmentService{ServiceType: serviceType, Offered: true, Capacity: capacity}
}

func poolGroup(id, adults, children int, start, end time.Time) db.ReservationGroup {
	g := activeGroup(id, start, end)
	g.ServiceType = utils.ServicePileta
	g.PoolAdultsCount = adults
	g.PoolChildrenCount = children
	return g
}

func carpaGroup(id, resource int, start, end time.Time) db.ReservationGroup {
	g := activeGroup(id, start, end)
	g.ServiceType = utils.ServiceCarpa
	g.ResourceNumber = resource
	return g
}

func TestParseReportWindow(t *testing.T) {
	window, err := parseReportWindow("2024-01-10", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, day(2024, 1, 1), window.Start)
	assert.Equal(t, day(2024, 1, 10), window.End)

	_, err = parseReportWindow("2024-01-01", "bad")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)

	// A leap year fits exactly; one more day does not.
	_, err = parseReportWindow("2024-01-01", "2024-12-31")
	assert.NoError(t, err)
	_, err = parseReportWindow("2024-01-01", "2025-01-01")
	assert.ErrorIs(t, err, apperrors.ErrRangeTooLarge)
}

func TestIncludedServicesDefaults(t *testing.T) {
	configured := []db.EstablishmentService{
		offered(utils.ServiceCarpa, 10),
		offered(utils.ServicePileta, 0),
		{ServiceType: utils.ServiceParking, Offered: false, Capacity: 20},
	}
	included := includedServices(configured, "")
	require.Len(t, included, 1)
	assert.Equal(t, utils.ServiceCarpa, included[0].ServiceType)
}

func TestIncludedServicesExplicitFilterKeepsZeroCapacity(t *testing.T) {
	included := includedServices(nil, utils.ServicePileta)
	require.Len(t, included, 1)
	assert.Equal(t, utils.ServicePileta, included[0].ServiceType)
	assert.Equal(t, 0, included[0].Capacity)
}

func TestBuildOccupancyReportNoGroups(t *testing.T) {
	window := daterange.New(day(2024, 1, 1), day(2024, 1, 3))
	services := []db.EstablishmentService{offered(utils.ServiceCarpa, 10), offered(utils.ServiceSombrilla, 5)}

	report := buildOccupancyReport(window, services, nil)

	require.Len(t, report.ByDate, 3)
	for _, entry := range report.ByDate {
		require.Len(t, entry.Services, 2)
		for _, svc := range entry.Services {
			assert.Equal(t, 0, svc.OccupiedUnits)
			assert.Equal(t, 0.0, svc.OccupancyPercent)
		}
	}
	assert.Equal(t, 3, report.Summary.Days)
}

func TestBuildOccupancyReportHeadcount(t *testing.T) {
	window := daterange.New(day(2024, 1, 1), day(2024, 1, 3))
	services := []db.EstablishmentService{offered(utils.ServicePileta, 100)}
	groups := []db.ReservationGroup{poolGroup(1, 2, 1, day(2024, 1, 1), day(2024, 1, 3))}

	report := buildOccupancyReport(window, services, groups)

	require.Len(t, report.ByDate, 3)
	for _, entry := range report.ByDate {
		require.Len(t, entry.Services, 1)
		assert.Equal(t, 3, entry.Services[0].OccupiedUnits)
		assert.Equal(t, 100, entry.Services[0].Capacity)
		assert.Equal(t, 0.03, entry.Services[0].OccupancyPercent)
	}

	require.Len(t, report.Summary.Services, 1)
	summary := report.Summary.Services[0]
	// Constant daily occupancy must average to the same constant.
	assert.InDelta(t, 0.03, summary.AvgOccupancyPercent, 1e-12)
	assert.Equal(t, 0.03, summary.MaxOccupancyPercent)
	assert.Equal(t, "2024-01-01", summary.PeakDate)
}

func TestBuildOccupancyReportSkipsEmptyPoolGroups(t *testing.T) {
	window := daterange.New(day(2024, 1, 1), day(2024, 1, 2))
	services := []db.EstablishmentService{offered(utils.ServicePileta, 50)}
	groups := []db.ReservationGroup{poolGroup(1, 0, 0, day(2024, 1, 1), day(2024, 1, 2))}

	report := buildOccupancyReport(window, services, groups)
	for _, entry := range report.ByDate {
		assert.Equal(t, 0, entry.Services[0].OccupiedUnits)
	}
}

func TestBuildOccupancyReportClampsToWindow(t *testing.T) {
	window := daterange.New(day(2024, 1, 5), day(2024, 1, 7))
	services := []db.EstablishmentService{offered(utils.ServiceCarpa, 4)}
	groups := []db.ReservationGroup{
		carpaGroup(1, 1, day(2024, 1, 1), day(2024, 1, 5)),
		carpaGroup(2, 2, day(2024, 1, 7), day(2024, 1, 20)),
		carpaGroup(3, 3, day(2024, 1, 10), day(2024, 1, 12)),
	}

	report := buildOccupancyReport(window, services, groups)

	require.Len(t, report.ByDate, 3)
	assert.Equal(t, 1, report.ByDate[0].Services[0].OccupiedUnits) // Jan 5: group 1 only
	assert.Equal(t, 0, report.ByDate[1].Services[0].OccupiedUnits) // Jan 6: nothing
	assert.Equal(t, 1, report.ByDate[2].Services[0].OccupiedUnits) // Jan 7: group 2 only
}

func TestBuildOccupancyReportCancelledGroupsIgnored(t *testing.T) {
	window := daterange.New(day(2024, 1, 1), day(2024, 1, 2))
	services := []db.EstablishmentService{offered(utils.ServiceCarpa, 4)}
	cancelled := carpaGroup(1, 1, day(2024, 1, 1), day(2024, 1, 2))
	cancelled.Status = db.GroupStatusCancelled

	report := buildOccupancyReport(window, services, []db.ReservationGroup{cancelled})
	assert.Equal(t, 0, report.ByDate[0].Services[0].OccupiedUnits)
}

func TestBuildOccupancyReportPeakKeepsEarliestDate(t *testing.T) {
	window := daterange.New(day(2024, 1, 1), day(2024, 1, 4))
	services := []db.EstablishmentService{offered(utils.ServiceCarpa, 2)}
	groups := []db.ReservationGroup{
		carpaGroup(1, 1, day(2024, 1, 2), day(2024, 1, 3)),
		carpaGroup(2, 2, day(2024, 1, 2), day(2024, 1, 2)),
		// Jan 3 reaches the same count as Jan 2 via a different mix.
		carpaGroup(3, 2, day(2024, 1, 3), day(2024, 1, 3)),
	}

	report := buildOccupancyReport(window, services, groups)

	summary := report.Summary.Services[0]
	assert.Equal(t, 1.0, summary.MaxOccupancyPercent)
	assert.Equal(t, "2024-01-02", summary.PeakDate)
}

func TestBuildOccupancyReportZeroCapacityOmittedPerDay(t *testing.T) {
	window := daterange.New(day(2024, 1, 1), day(2024, 1, 2))
	services := []db.EstablishmentService{{ServiceType: utils.ServicePileta, Capacity: 0}}
	groups := []db.ReservationGroup{poolGroup(1, 4, 0, day(2024, 1, 1), day(2024, 1, 2))}

	report := buildOccupancyReport(window, services, groups)

	for _, entry := range report.ByDate {
		assert.Empty(t, entry.Services)
	}
	require.Len(t, report.Summary.Services, 1)
	assert.Equal(t, 0.0, report.Summary.Services[0].AvgOccupancyPercent)
	assert.Empty(t, report.Summary.Services[0].PeakDate)
}

func TestBuildOccupancyReportOverbookedPoolReportsOverOneHundredPercent(t *testing.T) {
	window := daterange.New(day(2024, 1, 1), day(2024, 1, 1))
	services := []db.EstablishmentService{offered(utils.ServicePileta, 10)}
	groups := []db.ReservationGroup{
		poolGroup(1, 6, 2, day(2024, 1, 1), day(2024, 1, 1)),
		poolGroup(2, 4, 1, day(2024, 1, 1), day(2024, 1, 1)),
	}

	report := buildOccupancyReport(window, services, groups)

	entry := report.ByDate[0].Services[0]
	assert.Equal(t, 13, entry.OccupiedUnits)
	assert.InDelta(t, 1.3, entry.OccupancyPercent, 1e-12)
}
