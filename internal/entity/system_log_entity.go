package entity

import (
	"time"

	"github.com/google/uuid"
)

// SystemLog is an audit record for bus events (disambiguation lifecycle and
// friends), written by the consumer service.
type SystemLog struct {
	Id        uuid.UUID
	EventType string
	Payload   map[string]interface{}
	CreatedAt time.Time
}
