package entities

// ServiceOccupancy is one service's consumption for a single day.
// OccupancyPercent is a fraction: occupied units over configured capacity.
type ServiceOccupancy struct {
	ServiceType      string  `json:"service_type"`
	OccupiedUnits    int     `json:"occupied_units"`
	Capacity         int     `json:"capacity"`
	OccupancyPercent float64 `json:"occupancy_percent"`
}

type DailyOccupancy struct {
	Date     string             `json:"date"`
	Services []ServiceOccupancy `json:"services"`
}

type ServiceOccupancySummary struct {
	ServiceType         string  `json:"service_type"`
	Capacity            int     `json:"capacity"`
	AvgOccupancyPercent float64 `json:"avg_occupancy_percent"`
	MaxOccupancyPercent float64 `json:"max_occupancy_percent"`
	PeakDate            string  `json:"peak_date,omitempty"`
}

type OccupancySummary struct {
	From     string                    `json:"from"`
	To       string                    `json:"to"`
	Days     int                       `json:"days"`
	Services []ServiceOccupancySummary `json:"services"`
}

type OccupancyReport struct {
	ByDate  []DailyOccupancy `json:"by_date"`
	Summary OccupancySummary `json:"summary"`
}
