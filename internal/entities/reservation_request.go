package entities

// ReservationGroupRequest is the payload for creating or updating a
// reservation group. Dates travel as YYYY-MM-DD strings; that format is
// the only wire contract the engine relies on.
type ReservationGroupRequest struct {
	ServiceType    string `json:"service_type"`
	ResourceNumber int    `json:"resource_number"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`

	ClientID    *int   `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`

	PoolAdultsCount      int     `json:"pool_adults_count"`
	PoolChildrenCount    int     `json:"pool_children_count"`
	PoolAdultPricePerDay float64 `json:"pool_adult_price_per_day"`
	PoolChildPricePerDay float64 `json:"pool_child_price_per_day"`

	DailyPrice *float64 `json:"daily_price"`
	TotalPrice *float64 `json:"total_price"`

	PaymentMethod string `json:"payment_method"`
}
