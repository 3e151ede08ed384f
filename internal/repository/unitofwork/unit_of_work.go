package unitofwork

import (
	"context"

	"legal-research-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	CaseRepository() contract.CaseRepository
	SystemLogRepository() contract.SystemLogRepository
}
