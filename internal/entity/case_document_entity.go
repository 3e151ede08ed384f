package entity

import (
	"time"

	"github.com/google/uuid"
)

// CaseDocument is one retrievable case in the research corpus. The
// disambiguation subsystem treats these as read-only.
type CaseDocument struct {
	Id           uuid.UUID
	Caption      string // e.g. "Apple Inc. v. Samsung Electronics Co."
	DocketNumber string // e.g. "11-1846"
	Court        string
	DecidedYear  int
	Summary      string
	Metadata     map[string]interface{}
	CreatedAt    time.Time
}
