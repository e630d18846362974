package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"balneario/internal/cache"
	"balneario/internal/daterange"
	"balneario/internal/db"
	"balneario/internal/entities"
	apperrors "balneario/internal/errors"
	"balneario/internal/repository"
	"balneario/internal/utils"
)

// maxReportDays caps occupancy queries at a year. Larger windows are
// rejected before any row is fetched.
const maxReportDays = 366

type ReportService struct {
	Repo       *repository.ReservationRepository
	Capacities *repository.CapacityRepository
	Cache      *cache.ReportCache
}

func NewReportService(repo *repository.ReservationRepository, capacities *repository.CapacityRepository, reportCache *cache.ReportCache) *ReportService {
	return &ReportService{Repo: repo, Capacities: capacities, Cache: reportCache}
}

// ComputeOccupancy aggregates, per calendar day and per service, how many
// units of capacity the establishment's active bookings consume inside
// [from, to]. serviceFilter narrows the report to one service; empty means
// every offered service with capacity.
func (s *ReportService) ComputeOccupancy(ctx context.Context, establishmentID int, from, to, serviceFilter string) (*entities.OccupancyReport, error) {
	window, err := parseReportWindow(from, to)
	if err != nil {
		return nil, err
	}
	if serviceFilter != "" && !utils.IsKnownServiceType(serviceFilter) {
		return nil, apperrors.ErrInvalidService
	}

	cacheKey := cache.OccupancyKey(establishmentID, daterange.FormatISO(window.Start), daterange.FormatISO(window.End), serviceFilter)
	if cached, ok := s.Cache.GetOccupancy(ctx, cacheKey); ok {
		return cached, nil
	}

	configured, err := s.Capacities.GetCapacities(establishmentID)
	if err != nil {
		return nil, fmt.Errorf("internal error loading capacities: %w", err)
	}
	services := includedServices(configured, serviceFilter)
	if len(services) == 0 {
		empty := emptyReport(window)
		return empty, nil
	}

	groups, err := s.Repo.ListActiveGroupsOverlapping(establishmentID, serviceFilter, window.Start, window.End)
	if err != nil {
		log.Printf("Error from ListActiveGroupsOverlapping: %v", err)
		return nil, fmt.Errorf("internal error loading reservation groups: %w", err)
	}

	report := buildOccupancyReport(window, services, groups)
	s.Cache.SetOccupancy(ctx, cacheKey, report)
	return report, nil
}

// parseReportWindow validates both bounds, normalizes their order and
// enforces the span cap.
func parseReportWindow(from, to string) (daterange.Range, error) {
	start, err := daterange.ParseISO(from)
	if err != nil {
		return daterange.Range{}, apperrors.ErrInvalidDate
	}
	end, err := daterange.ParseISO(to)
	if err != nil {
		return daterange.Range{}, apperrors.ErrInvalidDate
	}
	window := daterange.New(start, end)
	if window.Days() > maxReportDays {
		return daterange.Range{}, apperrors.ErrRangeTooLarge
	}
	return window, nil
}

// includedServices picks the services a report covers. Without a filter,
// only offered services with positive capacity qualify. An explicit filter
// is honored even when the service is unconfigured or has no capacity; it
// then reports zero capacity instead of failing.
func includedServices(configured []db.EstablishmentService, serviceFilter string) []db.EstablishmentService {
	byType := make(map[string]db.EstablishmentService, len(configured))
	for _, svc := range configured {
		byType[svc.ServiceType] = svc
	}

	if serviceFilter != "" {
		svc, ok := byType[serviceFilter]
		if !ok || !svc.Offered || svc.Capacity < 0 {
			svc = db.EstablishmentService{ServiceType: serviceFilter, Capacity: 0}
		}
		return []db.EstablishmentService{svc}
	}

	var included []db.EstablishmentService
	for _, serviceType := range utils.AllServiceTypes {
		svc, ok := byType[serviceType]
		if ok && svc.Offered && svc.Capacity > 0 {
			included = append(included, svc)
		}
	}
	return included
}

func emptyReport(window daterange.Range) *entities.OccupancyReport {
	return &entities.OccupancyReport{
		ByDate: []entities.DailyOccupancy{},
		Summary: entities.OccupancySummary{
			From:     daterange.FormatISO(window.Start),
			To:       daterange.FormatISO(window.End),
			Days:     window.Days(),
			Services: []entities.ServiceOccupancySummary{},
		},
	}
}

// buildOccupancyReport is the pure accumulation over already-fetched rows.
// One bucket per day, one counter per service; exclusive-unit groups add 1
// per day, pileta groups add adults+children per day. A group's range is
// clamped to the window before iterating days.
func buildOccupancyReport(window daterange.Range, services []db.EstablishmentService, groups []db.ReservationGroup) *entities.OccupancyReport {
	capacities := make(map[string]int, len(services))
	order := make([]string, 0, len(services))
	for _, svc := range services {
		capacities[svc.ServiceType] = svc.Capacity
		order = append(order, svc.ServiceType)
	}

	days := window.Days()
	counts := make([]map[string]int, days)
	for i := range counts {
		counts[i] = make(map[string]int, len(order))
		for _, serviceType := range order {
			counts[i][serviceType] = 0
		}
	}

	dayIndex := func(d time.Time) int {
		return int(d.Sub(window.Start).Hours() / 24)
	}

	for _, g := range groups {
		if _, ok := capacities[g.ServiceType]; !ok {
			continue
		}
		if g.Status != db.GroupStatusActive {
			continue
		}
		increment := 1
		if utils.IsHeadcountService(g.ServiceType) {
			increment = g.PoolAdultsCount + g.PoolChildrenCount
			if increment <= 0 {
				// A pool group without occupants is a no-op for
				// reporting, not an error.
				continue
			}
		}
		groupRange := daterange.New(g.StartDate, g.EndDate)
		if !groupRange.Overlaps(window) {
			continue
		}
		serviceType := g.ServiceType
		groupRange.ClampTo(window).EachDay(func(day time.Time) {
			counts[dayIndex(day)][serviceType] += increment
		})
	}

	byDate := make([]entities.DailyOccupancy, 0, days)
	percents := make(map[string][]float64, len(order))
	window.EachDay(func(day time.Time) {
		i := dayIndex(day)
		entry := entities.DailyOccupancy{Date: daterange.FormatISO(day)}
		for _, serviceType := range order {
			capacity := capacities[serviceType]
			occupied := counts[i][serviceType]
			percent := 0.0
			// Zero-capacity services are tracked for the summary but
			// never emitted per day.
			if capacity > 0 {
				percent = float64(occupied) / float64(capacity)
				entry.Services = append(entry.Services, entities.ServiceOccupancy{
					ServiceType:      serviceType,
					OccupiedUnits:    occupied,
					Capacity:         capacity,
					OccupancyPercent: percent,
				})
			}
			percents[serviceType] = append(percents[serviceType], percent)
		}
		byDate = append(byDate, entry)
	})

	summaries := make([]entities.ServiceOccupancySummary, 0, len(order))
	dates := make([]string, 0, days)
	window.EachDay(func(day time.Time) { dates = append(dates, daterange.FormatISO(day)) })
	for _, serviceType := range order {
		daily := percents[serviceType]
		summary := entities.ServiceOccupancySummary{
			ServiceType: serviceType,
			Capacity:    capacities[serviceType],
		}
		if len(daily) > 0 {
			sum := 0.0
			max := daily[0]
			peak := dates[0]
			for i, p := range daily {
				sum += p
				if p > max {
					max = p
					peak = dates[i]
				}
			}
			summary.AvgOccupancyPercent = sum / float64(len(daily))
			summary.MaxOccupancyPercent = max
			if capacities[serviceType] > 0 {
				summary.PeakDate = peak
			}
		}
		summaries = append(summaries, summary)
	}

	return &entities.OccupancyReport{
		ByDate: byDate,
		Summary: entities.OccupancySummary{
			From:     daterange.FormatISO(window.Start),
			To:       daterange.FormatISO(window.End),
			Days:     days,
			Services: summaries,
		},
	}
}
