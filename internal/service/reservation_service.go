package service

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"balneario/internal/daterange"
	"balneario/internal/db"
	"balneario/internal/entities"
	apperrors "balneario/internal/errors"
	"balneario/internal/repository"
	"balneario/internal/utils"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

type ReservationService struct {
	Repo          *repository.ReservationRepository
	Capacities    *repository.CapacityRepository
	stripeService *StripeService
	sender        *SenderService
}

func NewReservationService(repo *repository.ReservationRepository, capacities *repository.CapacityRepository, stripeService *StripeService, sender *SenderService) *ReservationService {
	return &ReservationService{
		Repo:          repo,
		Capacities:    capacities,
		stripeService: stripeService,
		sender:        sender,
	}
}

// CheckAvailability decides whether a candidate booking conflicts with the
// active bookings of the same resource. Pileta has no per-unit
// exclusivity, so it is always available; pool capacity shows up in
// occupancy reports instead of blocking bookings.
func (s *ReservationService) CheckAvailability(establishmentID int, req entities.AvailabilityRequest) (*entities.AvailabilityResponse, error) {
	if !utils.IsKnownServiceType(req.ServiceType) {
		return nil, apperrors.ErrInvalidService
	}
	if utils.IsHeadcountService(req.ServiceType) {
		return &entities.AvailabilityResponse{Available: true}, nil
	}
	if req.ResourceNumber <= 0 {
		return nil, apperrors.ErrInvalidResource
	}
	candidate, err := parseGroupRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.Repo.ListActiveGroupsForResource(establishmentID, req.ServiceType, req.ResourceNumber, candidate.Start, candidate.End)
	if err != nil {
		log.Printf("Error from ListActiveGroupsForResource: %v", err)
		return nil, fmt.Errorf("internal error checking availability: %w", err)
	}

	ids := conflictingGroupIDs(existing, candidate, req.ExcludeGroupID)
	return &entities.AvailabilityResponse{
		Available:           len(ids) == 0,
		ConflictingGroupIDs: ids,
	}, nil
}

func (s *ReservationService) CreateReservationGroup(establishmentID int, req *entities.ReservationGroupRequest) (*entities.ReservationGroupResponse, error) {
	if err := validateGroupRequest(req); err != nil {
		return nil, err
	}
	rng, err := parseGroupRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if !utils.IsHeadcountService(req.ServiceType) {
		conflicts, err := s.activeConflicts(establishmentID, req.ServiceType, req.ResourceNumber, rng, 0)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			return nil, apperrors.ErrNoAvailability
		}
	}

	code := fmt.Sprintf("%08X", time.Now().UnixNano()%100000000)

	group := &db.ReservationGroup{
		Code:            code,
		EstablishmentID: establishmentID,
		ServiceType:     req.ServiceType,
		ResourceNumber:  req.ResourceNumber,
		StartDate:       rng.Start,
		EndDate:         rng.End,
		Status:          db.GroupStatusActive,
		ClientID:        req.ClientID,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   db.PaymentStatusPending,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	if group.PaymentMethod == "" {
		group.PaymentMethod = db.PaymentMethodOnsite
	}
	applyPricing(group, req, rng.Days())

	checkoutURL := ""
	if group.PaymentMethod == db.PaymentMethodOnline && group.TotalPrice != nil && *group.TotalPrice > 0 {
		description := fmt.Sprintf("Reserva %s - %s", code, utils.ServiceLabel(group.ServiceType))
		url, sessionID, err := s.stripeService.CreateCheckoutSession(int64(*group.TotalPrice*100), description, group.ClientEmail)
		if err != nil {
			log.Printf("Error creating checkout session for %s: %v", code, err)
			return nil, fmt.Errorf("internal error creating payment session: %w", err)
		}
		group.StripeSessionID = sessionID
		checkoutURL = url
	}

	if err := s.Repo.CreateGroup(group); err != nil {
		log.Printf("Error creating reservation group in repository: %v", err)
		return nil, err
	}

	// Online bookings are confirmed from the payment webhook instead.
	if group.PaymentMethod != db.PaymentMethodOnline {
		s.notify(group, "confirmada")
	}

	resp := toGroupResponse(group)
	resp.CheckoutURL = checkoutURL
	return resp, nil
}

func (s *ReservationService) GetReservationGroup(establishmentID int, code string) (*entities.ReservationGroupResponse, error) {
	group, err := s.Repo.GetGroupByCode(establishmentID, code)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperrors.ErrNotFound
	}
	return toGroupResponse(group), nil
}

func (s *ReservationService) ListReservationGroups(establishmentID int, serviceType, status, dateStr string) ([]entities.ReservationGroupResponse, error) {
	if serviceType != "" && !utils.IsKnownServiceType(serviceType) {
		return nil, apperrors.ErrInvalidService
	}
	var date *time.Time
	if dateStr != "" {
		parsed, err := daterange.ParseISO(dateStr)
		if err != nil {
			return nil, apperrors.ErrInvalidDate
		}
		date = &parsed
	}
	groups, err := s.Repo.ListGroups(establishmentID, serviceType, status, date)
	if err != nil {
		return nil, err
	}
	responses := make([]entities.ReservationGroupResponse, 0, len(groups))
	for i := range groups {
		responses = append(responses, *toGroupResponse(&groups[i]))
	}
	return responses, nil
}

// UpdateReservationGroup replaces the mutable fields of a booking. Date or
// resource changes re-run the availability check against all other active
// groups for that resource.
func (s *ReservationService) UpdateReservationGroup(establishmentID int, code string, req *entities.ReservationGroupRequest) (*entities.ReservationGroupResponse, error) {
	group, err := s.Repo.GetGroupByCode(establishmentID, code)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperrors.ErrNotFound
	}
	if group.Status != db.GroupStatusActive {
		return nil, apperrors.NewHTTPError(http.StatusConflict, "group_cancelled", "cannot update a cancelled reservation group")
	}
	if err := validateGroupRequest(req); err != nil {
		return nil, err
	}
	rng, err := parseGroupRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if !utils.IsHeadcountService(req.ServiceType) {
		conflicts, err := s.activeConflicts(establishmentID, req.ServiceType, req.ResourceNumber, rng, group.ID)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			return nil, apperrors.ErrResourceConflict
		}
	}

	group.ServiceType = req.ServiceType
	group.ResourceNumber = req.ResourceNumber
	group.StartDate = rng.Start
	group.EndDate = rng.End
	group.ClientID = req.ClientID
	group.ClientName = req.ClientName
	group.ClientEmail = req.ClientEmail
	group.ClientPhone = req.ClientPhone

	// Callers are not required to resupply prices on a date change: a kept
	// daily price has its total recomputed against the new day count.
	if req.DailyPrice == nil && !utils.IsHeadcountService(req.ServiceType) {
		req.DailyPrice = group.DailyPrice
	}
	applyPricing(group, req, rng.Days())

	if err := s.Repo.UpdateGroup(group); err != nil {
		log.Printf("Error updating reservation group %s: %v", code, err)
		return nil, err
	}
	return toGroupResponse(group), nil
}

// CancelReservationGroup transitions a booking to cancelled. The row is
// kept so historical occupancy and payment reports stay accurate. Paid
// online bookings are refunded first; a failed refund leaves the booking
// active.
func (s *ReservationService) CancelReservationGroup(establishmentID int, code string) error {
	group, err := s.Repo.GetGroupByCode(establishmentID, code)
	if err != nil {
		return err
	}
	if group == nil {
		return apperrors.ErrNotFound
	}
	if group.Status == db.GroupStatusCancelled {
		return nil
	}

	if group.PaymentMethod == db.PaymentMethodOnline && group.PaymentStatus == db.PaymentStatusPaid && group.StripeSessionID != "" {
		if err := s.stripeService.RefundPaymentBySessionID(group.StripeSessionID); err != nil {
			return fmt.Errorf("could not refund reservation %s: %w", code, err)
		}
	}

	if err := s.Repo.UpdateGroupStatus(group.ID, db.GroupStatusCancelled); err != nil {
		return err
	}
	group.Status = db.GroupStatusCancelled
	s.notify(group, "cancelada")
	return nil
}

// ConfirmPaymentBySessionID marks an online booking paid after the
// checkout session completes and notifies the client.
func (s *ReservationService) ConfirmPaymentBySessionID(sessionID string) error {
	if err := s.Repo.UpdatePaymentStatusBySessionID(sessionID, db.PaymentStatusPaid); err != nil {
		return err
	}
	group, err := s.Repo.GetGroupByStripeSessionID(sessionID)
	if err != nil {
		return err
	}
	if group != nil {
		s.notify(group, "confirmada")
	}
	return nil
}

func (s *ReservationService) MarkRefundedBySessionID(sessionID string) error {
	if err := s.Repo.UpdatePaymentStatusBySessionID(sessionID, db.PaymentStatusRefunded); err != nil {
		return err
	}
	group, err := s.Repo.GetGroupByStripeSessionID(sessionID)
	if err != nil {
		return err
	}
	if group != nil && group.Status != db.GroupStatusCancelled {
		return s.Repo.UpdateGroupStatus(group.ID, db.GroupStatusCancelled)
	}
	return nil
}

// GetSessionIDByPaymentIntentID looks up the checkout session behind a
// PaymentIntent, used when webhook events only carry the intent.
func (s *ReservationService) GetSessionIDByPaymentIntentID(paymentIntentID string) (string, error) {
	params := &stripe.CheckoutSessionListParams{
		PaymentIntent: &paymentIntentID,
	}
	params.Limit = stripe.Int64(1)
	it := session.List(params)
	for it.Next() {
		sess := it.CheckoutSession()
		if sess != nil && sess.ID != "" {
			return sess.ID, nil
		}
	}
	return "", fmt.Errorf("no session found for PaymentIntent %s", paymentIntentID)
}

func (s *ReservationService) activeConflicts(establishmentID int, serviceType string, resourceNumber int, candidate daterange.Range, excludeGroupID int) ([]int, error) {
	existing, err := s.Repo.ListActiveGroupsForResource(establishmentID, serviceType, resourceNumber, candidate.Start, candidate.End)
	if err != nil {
		log.Printf("Error from ListActiveGroupsForResource: %v", err)
		return nil, fmt.Errorf("internal error checking availability: %w", err)
	}
	return conflictingGroupIDs(existing, candidate, excludeGroupID), nil
}

func (s *ReservationService) notify(group *db.ReservationGroup, status string) {
	if s.sender == nil || group.ClientEmail == "" && group.ClientPhone == "" {
		return
	}
	establishmentName := "el balneario"
	if est, err := s.Capacities.GetEstablishment(group.EstablishmentID); err == nil && est != nil {
		establishmentName = est.Name
	}
	s.sender.SendReservationEmail(*group, establishmentName, status)
	s.sender.SendReservationSMS(*group, establishmentName, status)
}

// validateGroupRequest rejects structurally invalid bookings before any
// fetch: unknown services, non-positive resource numbers on exclusive-unit
// services, pileta bookings without a client record.
func validateGroupRequest(req *entities.ReservationGroupRequest) error {
	if !utils.IsKnownServiceType(req.ServiceType) {
		return apperrors.ErrInvalidService
	}
	if utils.IsHeadcountService(req.ServiceType) {
		if req.ClientID == nil {
			return apperrors.ErrClientRequired
		}
		return nil
	}
	if req.ResourceNumber <= 0 {
		return apperrors.ErrInvalidResource
	}
	return nil
}

func parseGroupRange(startDate, endDate string) (daterange.Range, error) {
	start, err := daterange.ParseISO(startDate)
	if err != nil {
		return daterange.Range{}, apperrors.ErrInvalidDate
	}
	end, err := daterange.ParseISO(endDate)
	if err != nil {
		return daterange.Range{}, apperrors.ErrInvalidDate
	}
	// Swapped bounds are normalized, never an error.
	return daterange.New(start, end), nil
}

// applyPricing fills the monetary fields. Pileta prices are always derived
// from headcounts and per-person rates; exclusive-unit prices are taken as
// supplied, with the total kept consistent with the day count when only a
// daily price is present.
func applyPricing(group *db.ReservationGroup, req *entities.ReservationGroupRequest, days int) {
	if utils.IsHeadcountService(group.ServiceType) {
		adults, children := req.PoolAdultsCount, req.PoolChildrenCount
		if adults < 0 {
			adults = 0
		}
		if children < 0 {
			children = 0
		}
		adultRate, childRate := req.PoolAdultPricePerDay, req.PoolChildPricePerDay
		if adultRate < 0 {
			adultRate = 0
		}
		if childRate < 0 {
			childRate = 0
		}
		group.PoolAdultsCount = adults
		group.PoolChildrenCount = children
		group.PoolAdultPricePerDay = adultRate
		group.PoolChildPricePerDay = childRate
		daily, total := DerivePoolPricing(adults, children, adultRate, childRate, days)
		group.DailyPrice = &daily
		group.TotalPrice = &total
		return
	}
	group.PoolAdultsCount = 0
	group.PoolChildrenCount = 0
	group.PoolAdultPricePerDay = 0
	group.PoolChildPricePerDay = 0
	group.DailyPrice, group.TotalPrice = resolveExclusivePricing(req.DailyPrice, req.TotalPrice, days)
}

func toGroupResponse(g *db.ReservationGroup) *entities.ReservationGroupResponse {
	return &entities.ReservationGroupResponse{
		ID:                   g.ID,
		Code:                 g.Code,
		ServiceType:          g.ServiceType,
		ResourceNumber:       g.ResourceNumber,
		StartDate:            daterange.FormatISO(g.StartDate),
		EndDate:              daterange.FormatISO(g.EndDate),
		Status:               g.Status,
		ClientID:             g.ClientID,
		ClientName:           g.ClientName,
		ClientEmail:          g.ClientEmail,
		ClientPhone:          g.ClientPhone,
		PoolAdultsCount:      g.PoolAdultsCount,
		PoolChildrenCount:    g.PoolChildrenCount,
		PoolAdultPricePerDay: g.PoolAdultPricePerDay,
		PoolChildPricePerDay: g.PoolChildPricePerDay,
		DailyPrice:           g.DailyPrice,
		TotalPrice:           g.TotalPrice,
		PaymentMethod:        g.PaymentMethod,
		PaymentStatus:        g.PaymentStatus,
		CreatedAt:            g.CreatedAt,
		UpdatedAt:            g.UpdatedAt,
	}
}
