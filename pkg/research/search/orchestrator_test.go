package search

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legal-research-be/internal/entity"
	"legal-research-be/internal/pkg/logger"
	"legal-research-be/internal/repository/specification"
)

// fakeCaseRepository records the specifications it was queried with and
// returns canned documents.
type fakeCaseRepository struct {
	byDocket map[string]*entity.CaseDocument
	all      []*entity.CaseDocument
	lastAll  []specification.Specification
}

func (f *fakeCaseRepository) Create(_ context.Context, _ *entity.CaseDocument) error {
	return nil
}

func (f *fakeCaseRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.CaseDocument, error) {
	for _, s := range specs {
		if byDocket, ok := s.(specification.ByDocketNumber); ok {
			return f.byDocket[byDocket.DocketNumber], nil
		}
	}
	return nil, nil
}

func (f *fakeCaseRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.CaseDocument, error) {
	f.lastAll = specs
	return f.all, nil
}

func caseDoc(caption, docket string, year int) *entity.CaseDocument {
	return &entity.CaseDocument{
		Id:           uuid.New(),
		Caption:      caption,
		DocketNumber: docket,
		Court:        "Supreme Court",
		DecidedYear:  year,
	}
}

func TestSearch_DocketFastPath(t *testing.T) {
	repo := &fakeCaseRepository{
		byDocket: map[string]*entity.CaseDocument{
			"18-956": caseDoc("Google LLC v. Oracle America, Inc.", "18-956", 2021),
		},
	}
	s := NewLexicalSearcher(logger.NewNop(), repo)

	candidates, err := s.Search(context.Background(), "the opinion in 18-956")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "18-956", candidates[0].DocketID)
	assert.Equal(t, "Google LLC v. Oracle America, Inc. (2021)", candidates[0].Label)
}

func TestSearch_PartyTokensDriveTheQuery(t *testing.T) {
	repo := &fakeCaseRepository{
		all: []*entity.CaseDocument{
			caseDoc("Apple Inc. v. Samsung Electronics Co.", "11-1846", 2012),
			caseDoc("Apple Inc. v. Motorola, Inc.", "12-1548", 2014),
		},
	}
	s := NewLexicalSearcher(logger.NewNop(), repo)

	candidates, err := s.Search(context.Background(), "apple smartphone patent dispute")
	require.NoError(t, err)
	assert.Len(t, candidates, 2)

	var tokenQuery *specification.CaseTokenQuery
	for _, spec := range repo.lastAll {
		if tq, ok := spec.(specification.CaseTokenQuery); ok {
			tokenQuery = &tq
		}
	}
	require.NotNil(t, tokenQuery, "expected a token query specification")
	assert.Contains(t, tokenQuery.Tokens, "apple")
	assert.Contains(t, tokenQuery.Tokens, "smartphone")
	assert.NotContains(t, tokenQuery.Tokens, "the")
}

func TestSearch_FallsBackToRawQuery(t *testing.T) {
	repo := &fakeCaseRepository{}
	s := NewLexicalSearcher(logger.NewNop(), repo)

	_, err := s.Search(context.Background(), "what is a case")
	require.NoError(t, err)

	var rawQuery *specification.CaseSearchQuery
	for _, spec := range repo.lastAll {
		if q, ok := spec.(specification.CaseSearchQuery); ok {
			rawQuery = &q
		}
	}
	require.NotNil(t, rawQuery, "expected a raw search specification")
	assert.Equal(t, "what is a case", rawQuery.Query)
}

func TestSearch_CandidateMetadata(t *testing.T) {
	repo := &fakeCaseRepository{
		all: []*entity.CaseDocument{
			caseDoc("Impression Products, Inc. v. Lexmark International, Inc.", "15-1189", 2017),
		},
	}
	s := NewLexicalSearcher(logger.NewNop(), repo)

	candidates, err := s.Search(context.Background(), "lexmark exhaustion")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, 2017, candidates[0].Metadata["year"])
	assert.Equal(t, "Supreme Court", candidates[0].Metadata["court"])
}
