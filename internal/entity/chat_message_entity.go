package entity

import (
	"time"

	"github.com/google/uuid"

	"legal-research-be/pkg/store"
)

type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Role          string
	Chat          string

	// ReturnBranch tags which pipeline branch produced (or should resume
	// after) this message, e.g. "disambiguation".
	ReturnBranch string

	// Candidates is set on messages that opened a disambiguation prompt, so
	// the presentation layer can re-render the option list from history.
	Candidates []store.Candidate

	CreatedAt time.Time
}
