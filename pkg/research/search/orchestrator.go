package search

import (
	"context"
	"fmt"
	"strconv"

	"legal-research-be/internal/entity"
	"legal-research-be/internal/pkg/logger"
	"legal-research-be/internal/repository/contract"
	"legal-research-be/internal/repository/specification"
	"legal-research-be/pkg/research/reference"
	"legal-research-be/pkg/store"
)

// defaultLimit caps how many candidates one query can surface. Anything past
// a handful is useless as a numbered clarification prompt anyway.
const defaultLimit = 5

// Searcher finds case candidates for a research query. The pipeline depends
// on this interface so tests can stub retrieval entirely.
type Searcher interface {
	Search(ctx context.Context, query string) ([]store.Candidate, error)
}

// LexicalSearcher is the gorm-backed implementation: ILIKE over caption and
// docket number, with a docket fast-path and a party-token OR query derived
// from the message hints. Ranking beyond declaration order is out of scope.
type LexicalSearcher struct {
	Log   logger.ILogger
	Cases contract.CaseRepository
	Limit int
}

func NewLexicalSearcher(log logger.ILogger, cases contract.CaseRepository) *LexicalSearcher {
	return &LexicalSearcher{Log: log, Cases: cases, Limit: defaultLimit}
}

func (s *LexicalSearcher) Search(ctx context.Context, query string) ([]store.Candidate, error) {
	hints := reference.ExtractHints(query)

	// Exact docket wins outright; no need to rank anything.
	if hints.DocketID != "" {
		doc, err := s.Cases.FindOne(ctx, specification.ByDocketNumber{DocketNumber: hints.DocketID})
		if err == nil && doc != nil {
			return []store.Candidate{toCandidate(doc)}, nil
		}
	}

	limit := s.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	specs := []specification.Specification{
		specification.OrderBy{Field: "decided_year", Desc: true},
		specification.Pagination{Limit: limit},
	}
	if len(hints.PartyTokens) > 0 {
		tokens := make([]string, 0, len(hints.PartyTokens))
		for tok := range hints.PartyTokens {
			tokens = append(tokens, tok)
		}
		specs = append(specs, specification.CaseTokenQuery{Tokens: tokens})
	} else {
		specs = append(specs, specification.CaseSearchQuery{Query: query})
	}

	docs, err := s.Cases.FindAll(ctx, specs...)
	if err != nil {
		s.Log.Error("search", "case lookup failed", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("search cases: %w", err)
	}

	candidates := make([]store.Candidate, 0, len(docs))
	for _, doc := range docs {
		candidates = append(candidates, toCandidate(doc))
	}
	return candidates, nil
}

func toCandidate(doc *entity.CaseDocument) store.Candidate {
	label := doc.Caption
	if doc.DecidedYear > 0 {
		label += " (" + strconv.Itoa(doc.DecidedYear) + ")"
	}
	return store.Candidate{
		ID:       doc.Id.String(),
		Label:    label,
		DocketID: doc.DocketNumber,
		Metadata: map[string]interface{}{
			"court": doc.Court,
			"year":  doc.DecidedYear,
		},
	}
}
