package models

type Report struct {
	ReportID        string            `json:"report_id"`
	PatientID       string            `json:"patient_id,omitempty"`
	Filename        string            `json:"filename"`
	FileType        string            `json:"file_type,omitempty"`
	UploadDate      string            `json:"upload_date"`
	ConfidenceScore float64           `json:"confidence_score"`
	MedicalValues   map[string]string `json:"medical_values"`
	ExtractedText   *string           `json:"extracted_text,omitempty"`
}

// UploadResult is the outcome for one file of an upload batch. Exactly one of
// ConfidenceScore or Error is set.
type UploadResult struct {
	Filename        string            `json:"filename"`
	ReportID        string            `json:"report_id,omitempty"`
	ConfidenceScore *float64          `json:"confidence_score,omitempty"`
	MedicalValues   map[string]string `json:"medical_values,omitempty"`
	ExtractedText   *string           `json:"extracted_text,omitempty"`
	Error           *string           `json:"error,omitempty"`
}

func (r UploadResult) Failed() bool {
	return r.Error != nil
}
