package mapper

import (
	"encoding/json"

	"legal-research-be/internal/entity"
	"legal-research-be/internal/model"
)

type CaseMapper struct{}

func NewCaseMapper() *CaseMapper {
	return &CaseMapper{}
}

func (m *CaseMapper) ToEntity(c *model.CaseDocument) *entity.CaseDocument {
	if c == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(c.Metadata) > 0 {
		_ = json.Unmarshal(c.Metadata, &metadata)
	}

	return &entity.CaseDocument{
		Id:           c.Id,
		Caption:      c.Caption,
		DocketNumber: c.DocketNumber,
		Court:        c.Court,
		DecidedYear:  c.DecidedYear,
		Summary:      c.Summary,
		Metadata:     metadata,
		CreatedAt:    c.CreatedAt,
	}
}

func (m *CaseMapper) ToModel(c *entity.CaseDocument) *model.CaseDocument {
	if c == nil {
		return nil
	}

	var metadata []byte
	if len(c.Metadata) > 0 {
		metadata, _ = json.Marshal(c.Metadata)
	}

	return &model.CaseDocument{
		Id:           c.Id,
		Caption:      c.Caption,
		DocketNumber: c.DocketNumber,
		Court:        c.Court,
		DecidedYear:  c.DecidedYear,
		Summary:      c.Summary,
		Metadata:     metadata,
		CreatedAt:    c.CreatedAt,
	}
}

func (m *CaseMapper) ToEntities(models []*model.CaseDocument) []*entity.CaseDocument {
	entities := make([]*entity.CaseDocument, len(models))
	for i, c := range models {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
