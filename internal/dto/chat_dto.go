package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type GetAllSessionsResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type GetChatHistoryResponse struct {
	Id           uuid.UUID      `json:"id"`
	Role         string         `json:"role"`
	Chat         string         `json:"chat"`
	ReturnBranch string         `json:"return_branch,omitempty"`
	Candidates   []CandidateDTO `json:"candidates,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

type SendChatRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id" validate:"required"`
	Chat          string    `json:"chat" validate:"required,max=4000"`
}

// CandidateDTO is one numbered option in a clarification prompt.
type CandidateDTO struct {
	Index    int    `json:"index"` // 1-based, matches the numbering in the reply text
	Id       string `json:"id"`
	Label    string `json:"label"`
	DocketId string `json:"docket_id,omitempty"`
}

// DisambiguationDTO is attached to the reply whenever the assistant is
// waiting for the user to pick a candidate.
type DisambiguationDTO struct {
	Candidates []CandidateDTO `json:"candidates"`
}

type SendChatResponseChat struct {
	Id        uuid.UUID `json:"id"`
	Chat      string    `json:"chat"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	ChatSessionId    uuid.UUID             `json:"chat_session_id"`
	ChatSessionTitle string                `json:"title"`
	Sent             *SendChatResponseChat `json:"sent"`
	Reply            *SendChatResponseChat `json:"reply"`
	ReturnBranch     string                `json:"return_branch,omitempty"` // "disambiguation" | "case_answer"
	Disambiguation   *DisambiguationDTO    `json:"disambiguation,omitempty"`
	SelectedCase     *CandidateDTO         `json:"selected_case,omitempty"`
}

type DeleteSessionRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id"`
}
