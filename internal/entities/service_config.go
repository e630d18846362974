package entities

type ServiceConfigResponse struct {
	ServiceType string `json:"service_type"`
	Offered     bool   `json:"offered"`
	Capacity    int    `json:"capacity"`
}
