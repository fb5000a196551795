package models

import "time"

type ActivityEvent struct {
	EventID    string                 `json:"event_id"`
	Type       string                 `json:"type"`
	UserID     string                 `json:"user_id,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}
