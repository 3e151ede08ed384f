package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CaseDocument struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Caption      string         `gorm:"type:text;not null;index"`
	DocketNumber string         `gorm:"type:varchar(50);index"`
	Court        string         `gorm:"type:varchar(200)"`
	DecidedYear  int            `gorm:"index"`
	Summary      string         `gorm:"type:text"`
	Metadata     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
}

func (CaseDocument) TableName() string {
	return "case_documents"
}
