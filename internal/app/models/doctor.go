package models

type Doctor struct {
	DoctorID        string   `json:"doctor_id"`
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty"`
	Experience      string   `json:"experience"`
	Rating          float64  `json:"rating"`
	ConsultationFee float64  `json:"consultation_fee"`
	AvailableSlots  []string `json:"available_slots"`
	Image           string   `json:"image,omitempty"`
}
