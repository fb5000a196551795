package models

type Appointment struct {
	AppointmentID string  `json:"appointment_id"`
	DoctorID      string  `json:"doctor_id"`
	PatientID     string  `json:"patient_id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Type          string  `json:"type"`
	Notes         *string `json:"notes"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at,omitempty"`
}
