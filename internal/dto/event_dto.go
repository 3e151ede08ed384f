package dto

import "time"

// EventEnvelope is the wire shape for bus messages (watermill and NATS both
// carry this as JSON).
type EventEnvelope struct {
	Type       string                 `json:"type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}
