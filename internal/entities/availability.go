package entities

type AvailabilityRequest struct {
	ServiceType    string `json:"service_type"`
	ResourceNumber int    `json:"resource_number"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	ExcludeGroupID int    `json:"exclude_group_id,omitempty"`
}

type AvailabilityResponse struct {
	Available           bool  `json:"available"`
	ConflictingGroupIDs []int `json:"conflicting_group_ids,omitempty"`
}
