package responses

import "healthease-client/internal/app/models"

// State is what the local control API reports to a UI shell.
type State struct {
	View             models.ViewState    `json:"view"`
	Authenticated    bool                `json:"authenticated"`
	User             *models.UserRecord  `json:"user,omitempty"`
	Location         *models.Coordinates `json:"location,omitempty"`
	FacilityCategory string              `json:"facility_category"`
	Facilities       []models.Facility   `json:"facilities"`
	UploadProgress   *int                `json:"upload_progress,omitempty"`
	Collections      models.Snapshot     `json:"collections"`
	ProfileDraft     bool                `json:"profile_draft_open"`
}

type UploadProgress struct {
	InProgress bool `json:"in_progress"`
	Percent    int  `json:"percent"`
}

type Facilities struct {
	Category   string            `json:"category"`
	Facilities []models.Facility `json:"facilities"`
}
