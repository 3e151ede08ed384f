package service

import (
	"context"
	"time"

	"legal-research-be/internal/dto"
	"legal-research-be/internal/entity"
	"legal-research-be/internal/repository/specification"
	"legal-research-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ICaseService manages the case document corpus the research chat searches.
type ICaseService interface {
	Create(ctx context.Context, request *dto.CreateCaseRequest) (*dto.CaseResponse, error)
	Search(ctx context.Context, query string, limit int) ([]*dto.CaseResponse, error)
}

type caseService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCaseService(uowFactory unitofwork.RepositoryFactory) ICaseService {
	return &caseService{uowFactory: uowFactory}
}

func (cs *caseService) Create(ctx context.Context, request *dto.CreateCaseRequest) (*dto.CaseResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	caseDoc := entity.CaseDocument{
		Id:           uuid.New(),
		Caption:      request.Caption,
		DocketNumber: request.DocketNumber,
		Court:        request.Court,
		DecidedYear:  request.DecidedYear,
		Summary:      request.Summary,
		Metadata:     request.Metadata,
		CreatedAt:    time.Now(),
	}

	if err := uow.CaseRepository().Create(ctx, &caseDoc); err != nil {
		return nil, err
	}

	return caseToDTO(&caseDoc), nil
}

func (cs *caseService) Search(ctx context.Context, query string, limit int) ([]*dto.CaseResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 50 {
		limit = 20
	}

	docs, err := uow.CaseRepository().FindAll(ctx,
		specification.CaseSearchQuery{Query: query},
		specification.OrderBy{Field: "decided_year", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.CaseResponse, 0, len(docs))
	for _, doc := range docs {
		response = append(response, caseToDTO(doc))
	}
	return response, nil
}

func caseToDTO(doc *entity.CaseDocument) *dto.CaseResponse {
	return &dto.CaseResponse{
		Id:           doc.Id,
		Caption:      doc.Caption,
		DocketNumber: doc.DocketNumber,
		Court:        doc.Court,
		DecidedYear:  doc.DecidedYear,
		Summary:      doc.Summary,
		Metadata:     doc.Metadata,
		CreatedAt:    doc.CreatedAt,
	}
}
