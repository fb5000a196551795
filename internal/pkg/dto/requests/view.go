package requests

type Navigate struct {
	View string `json:"view" validate:"required"`
}
