package requests

type FacilityFilter struct {
	Type string `json:"type" validate:"required,facility_category"`
}
