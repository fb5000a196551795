package requests

// UploadReports lists the files to submit as one batch. Each entry is either
// a local path or an object in the configured bucket.
type UploadReports struct {
	Files []UploadFileRef `json:"files" validate:"required,min=1,dive"`
}

type UploadFileRef struct {
	Path   string `json:"path,omitempty" validate:"required_without=Object"`
	Bucket string `json:"bucket,omitempty"`
	Object string `json:"object,omitempty" validate:"required_without=Path"`
}
