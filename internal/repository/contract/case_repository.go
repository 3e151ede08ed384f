package contract

import (
	"context"

	"legal-research-be/internal/entity"
	"legal-research-be/internal/repository/specification"
)

type CaseRepository interface {
	Create(ctx context.Context, caseDoc *entity.CaseDocument) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CaseDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CaseDocument, error)
}
