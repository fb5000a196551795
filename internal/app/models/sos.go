package models

type SOSAlert struct {
	SOSID   string `json:"sos_id"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
