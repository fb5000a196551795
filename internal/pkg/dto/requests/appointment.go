package requests

// BookAppointment is what the user picks; the patient comes from the session.
type BookAppointment struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"required,datetime=15:04"`
	Type     string `json:"type" validate:"required,oneof=online offline"`
	Notes    string `json:"notes"`
}

type AppointmentPayload struct {
	DoctorID  string `json:"doctor_id"`
	PatientID string `json:"patient_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Type      string `json:"type"`
	Notes     string `json:"notes"`
}
