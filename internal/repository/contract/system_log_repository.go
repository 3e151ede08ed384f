package contract

import (
	"context"

	"legal-research-be/internal/entity"
)

type SystemLogRepository interface {
	Create(ctx context.Context, log *entity.SystemLog) error
}
