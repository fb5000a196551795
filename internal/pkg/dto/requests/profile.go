package requests

import "healthease-client/internal/app/models"

// UpdateProfile is the full profile body sent on PUT /api/profile.
type UpdateProfile struct {
	Name              string                    `json:"name" validate:"required"`
	Email             string                    `json:"email" validate:"required,email"`
	Age               *int                      `json:"age,omitempty" validate:"omitempty,min=0,max=150"`
	Gender            *string                   `json:"gender,omitempty"`
	BloodGroup        *string                   `json:"blood_group,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Phone             *string                   `json:"phone,omitempty"`
	MedicalHistory    []string                  `json:"medical_history"`
	Allergies         []string                  `json:"allergies"`
	EmergencyContacts []models.EmergencyContact `json:"emergency_contacts" validate:"dive"`
}

// ProfileDraftPatch changes selected fields of an open profile draft. Nil
// fields are left untouched.
type ProfileDraftPatch struct {
	Name              *string                    `json:"name,omitempty"`
	Age               *int                       `json:"age,omitempty"`
	Gender            *string                    `json:"gender,omitempty"`
	BloodGroup        *string                    `json:"blood_group,omitempty"`
	Phone             *string                    `json:"phone,omitempty"`
	MedicalHistory    []string                   `json:"medical_history,omitempty"`
	Allergies         []string                   `json:"allergies,omitempty"`
	EmergencyContacts *[]models.EmergencyContact `json:"emergency_contacts,omitempty"`
}
