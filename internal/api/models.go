package api

// Service configuration
type UpdateServiceConfigRequest struct {
	Offered  bool `json:"offered"`
	Capacity int  `json:"capacity"`
}
