package responses

import "healthease-client/internal/app/models"

// Envelopes returned by the remote API.

type ExchangeSession struct {
	SessionToken string            `json:"session_token"`
	User         models.UserRecord `json:"user"`
}

type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type Message struct {
	Message string `json:"message"`
}

type ReportList struct {
	Reports []models.Report `json:"reports"`
}

type UploadReports struct {
	Results []UploadResultEntry `json:"results"`
}

type UploadResultEntry struct {
	ReportID        string            `json:"report_id"`
	Filename        string            `json:"filename"`
	ExtractedText   *string           `json:"extracted_text"`
	MedicalValues   map[string]string `json:"medical_values"`
	ConfidenceScore *float64          `json:"confidence_score"`
	Error           *string           `json:"error"`
	Success         *bool             `json:"success"`
}

type DoctorList struct {
	Doctors []models.Doctor `json:"doctors"`
}

type AppointmentList struct {
	Appointments []models.Appointment `json:"appointments"`
}

type BookAppointment struct {
	AppointmentID string             `json:"appointment_id"`
	Message       string             `json:"message"`
	Appointment   models.Appointment `json:"appointment"`
}

type FacilityList struct {
	Facilities []models.Facility `json:"facilities"`
}

type MedicineList struct {
	Medicines []models.Medicine `json:"medicines"`
}
