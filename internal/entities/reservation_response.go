package entities

import "time"

type ReservationGroupResponse struct {
	ID             int    `json:"id"`
	Code           string `json:"code"`
	ServiceType    string `json:"service_type"`
	ResourceNumber int    `json:"resource_number"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Status         string `json:"status"`

	ClientID    *int   `json:"client_id,omitempty"`
	ClientName  string `json:"client_name,omitempty"`
	ClientEmail string `json:"client_email,omitempty"`
	ClientPhone string `json:"client_phone,omitempty"`

	PoolAdultsCount      int     `json:"pool_adults_count,omitempty"`
	PoolChildrenCount    int     `json:"pool_children_count,omitempty"`
	PoolAdultPricePerDay float64 `json:"pool_adult_price_per_day,omitempty"`
	PoolChildPricePerDay float64 `json:"pool_child_price_per_day,omitempty"`

	DailyPrice *float64 `json:"daily_price,omitempty"`
	TotalPrice *float64 `json:"total_price,omitempty"`

	PaymentMethod string `json:"payment_method,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
	CheckoutURL   string `json:"checkout_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
