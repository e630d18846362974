package db

import "time"

const (
	GroupStatusActive    = "active"
	GroupStatusCancelled = "cancelled"
)

const (
	PaymentMethodOnsite = "onsite"
	PaymentMethodOnline = "online"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

type Establishment struct {
	ID   int
	Name string
}

// EstablishmentService is the capacity configuration of one service at one
// establishment: whether the service is offered at all and how many units
// (or, for pileta, simultaneous people) it holds.
type EstablishmentService struct {
	EstablishmentID int
	ServiceType     string
	Offered         bool
	Capacity        int
}

// ReservationGroup is one booking of a resource unit (or one pool
// admission) over a contiguous, inclusive range of calendar days.
// Cancellation is a status transition, never a deletion, so historical
// occupancy and payment reporting stays accurate.
type ReservationGroup struct {
	ID              int
	Code            string
	EstablishmentID int
	ServiceType     string
	ResourceNumber  int
	StartDate       time.Time
	EndDate         time.Time
	Status          string

	ClientID    *int
	ClientName  string
	ClientEmail string
	ClientPhone string

	// Pool fields; zero for exclusive-unit services.
	PoolAdultsCount      int
	PoolChildrenCount    int
	PoolAdultPricePerDay float64
	PoolChildPricePerDay float64

	DailyPrice *float64
	TotalPrice *float64

	PaymentMethod   string
	PaymentStatus   string
	StripeSessionID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserAccount struct {
	ID              int
	Email           string
	PasswordHash    string
	EstablishmentID int
}
