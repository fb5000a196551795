package requests

type ExchangeSession struct {
	SessionID string `json:"session_id" validate:"required"`
}
