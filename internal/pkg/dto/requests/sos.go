package requests

import "healthease-client/internal/app/models"

type TriggerSOS struct {
	EmergencyType string `json:"emergency_type" validate:"required"`
	Notes         string `json:"notes"`
}

type SOSPayload struct {
	PatientID     string             `json:"patient_id"`
	Location      models.Coordinates `json:"location"`
	EmergencyType string             `json:"emergency_type"`
	Notes         string             `json:"notes,omitempty"`
}
