package implementation

import (
	"context"
	"encoding/json"

	"legal-research-be/internal/entity"
	"legal-research-be/internal/model"
	"legal-research-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SystemLogRepositoryImpl struct {
	db *gorm.DB
}

func NewSystemLogRepository(db *gorm.DB) contract.SystemLogRepository {
	return &SystemLogRepositoryImpl{db: db}
}

func (r *SystemLogRepositoryImpl) Create(ctx context.Context, log *entity.SystemLog) error {
	var payload []byte
	if len(log.Payload) > 0 {
		payload, _ = json.Marshal(log.Payload)
	}

	m := &model.SystemLog{
		Id:        log.Id,
		EventType: log.EventType,
		Payload:   payload,
		CreatedAt: log.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}
