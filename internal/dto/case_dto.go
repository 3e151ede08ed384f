package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCaseRequest struct {
	Caption      string                 `json:"caption" validate:"required,max=500"`
	DocketNumber string                 `json:"docket_number,omitempty" validate:"max=50"`
	Court        string                 `json:"court,omitempty" validate:"max=200"`
	DecidedYear  int                    `json:"decided_year,omitempty" validate:"omitempty,gte=1700,lte=2100"`
	Summary      string                 `json:"summary,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

type CaseResponse struct {
	Id           uuid.UUID              `json:"id"`
	Caption      string                 `json:"caption"`
	DocketNumber string                 `json:"docket_number,omitempty"`
	Court        string                 `json:"court,omitempty"`
	DecidedYear  int                    `json:"decided_year,omitempty"`
	Summary      string                 `json:"summary,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}
