package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legal-research-be/internal/pkg/logger"
	"legal-research-be/internal/repository/memory"
	"legal-research-be/pkg/research/session"
	"legal-research-be/pkg/store"
)

// stubSearcher returns a canned candidate list regardless of query.
type stubSearcher struct {
	results []store.Candidate
	queries []string
}

func (s *stubSearcher) Search(_ context.Context, query string) ([]store.Candidate, error) {
	s.queries = append(s.queries, query)
	return s.results, nil
}

func newPipeline(results []store.Candidate) (*Pipeline, *session.Manager, *stubSearcher) {
	log := logger.NewNop()
	mgr := session.NewManager(memory.NewSessionRepository(), log, nil)
	searcher := &stubSearcher{results: results}
	return NewPipeline(log, mgr, searcher, nil), mgr, searcher
}

func appleCandidates() []store.Candidate {
	return []store.Candidate{
		{ID: "c1", Label: "Apple Inc. v. Samsung Electronics Co. (2012)", DocketID: "11-1846"},
		{ID: "c2", Label: "Apple Inc. v. Motorola, Inc. (2014)", DocketID: "12-1548"},
	}
}

func TestHandleTurn_NotFound(t *testing.T) {
	p, _, _ := newPipeline(nil)

	result, err := p.HandleTurn(context.Background(), "u1", "conv1", "frobnicate v. widget")
	require.NoError(t, err)
	assert.Equal(t, TurnNotFound, result.Kind)
	assert.Contains(t, result.Reply, "couldn't find")
}

func TestHandleTurn_SingleHitAnswersDirectly(t *testing.T) {
	p, mgr, _ := newPipeline(appleCandidates()[:1])

	result, err := p.HandleTurn(context.Background(), "u1", "conv1", "apple samsung patent")
	require.NoError(t, err)
	assert.Equal(t, TurnAnswer, result.Kind)
	require.NotNil(t, result.Selected)
	assert.Equal(t, "c1", result.Selected.ID)
	assert.Equal(t, store.BranchCaseAnswer, result.ReturnBranch)
	assert.False(t, mgr.HasPending("conv1"))
}

func TestHandleTurn_MultipleHitsOpenDisambiguation(t *testing.T) {
	p, mgr, _ := newPipeline(appleCandidates())

	result, err := p.HandleTurn(context.Background(), "u1", "conv1", "apple patent case")
	require.NoError(t, err)
	assert.Equal(t, TurnDisambiguation, result.Kind)
	assert.Equal(t, store.BranchDisambiguation, result.ReturnBranch)
	assert.Len(t, result.Candidates, 2)
	assert.Contains(t, result.Reply, "1. Apple Inc. v. Samsung Electronics Co. (2012)")
	assert.Contains(t, result.Reply, "2. Apple Inc. v. Motorola, Inc. (2014)")
	assert.True(t, mgr.HasPending("conv1"))
}

func TestHandleTurn_FollowupResolvesPending(t *testing.T) {
	p, mgr, searcher := newPipeline(appleCandidates())

	_, err := p.HandleTurn(context.Background(), "u1", "conv1", "apple patent case")
	require.NoError(t, err)

	result, err := p.HandleTurn(context.Background(), "u1", "conv1", "the second one")
	require.NoError(t, err)
	assert.Equal(t, TurnAnswer, result.Kind)
	require.NotNil(t, result.Selected)
	assert.Equal(t, "c2", result.Selected.ID)
	assert.Equal(t, store.BranchCaseAnswer, result.ReturnBranch)
	assert.False(t, mgr.HasPending("conv1"))

	// The follow-up must never reach retrieval.
	assert.Equal(t, []string{"apple patent case"}, searcher.queries)
}

func TestHandleTurn_AmbiguousFollowupRetries(t *testing.T) {
	p, mgr, _ := newPipeline(appleCandidates())

	_, err := p.HandleTurn(context.Background(), "u1", "conv1", "apple patent case")
	require.NoError(t, err)

	result, err := p.HandleTurn(context.Background(), "u1", "conv1", "the apple one")
	require.NoError(t, err)
	assert.Equal(t, TurnDisambiguation, result.Kind)
	assert.Contains(t, result.Reply, "choose a number between 1 and 2")
	assert.True(t, mgr.HasPending("conv1"))
}

func TestHandleTurn_RetryBudgetExhaustedFallsBackToSearch(t *testing.T) {
	p, mgr, searcher := newPipeline(appleCandidates())

	_, err := p.HandleTurn(context.Background(), "u1", "conv1", "apple patent case")
	require.NoError(t, err)

	_, err = p.HandleTurn(context.Background(), "u1", "conv1", "the apple one")
	require.NoError(t, err)

	// Second unresolvable reference abandons the session. The message is
	// then handled as a fresh query, which here finds nothing useful.
	searcher.results = nil
	result, err := p.HandleTurn(context.Background(), "u1", "conv1", "the apple one")
	require.NoError(t, err)
	assert.Equal(t, TurnNotFound, result.Kind)
	assert.Contains(t, result.Reply, "lost track")
	assert.False(t, mgr.HasPending("conv1"))
}

func TestHandleTurn_UnrelatedMessageBecomesFreshQuery(t *testing.T) {
	p, mgr, _ := newPipeline(appleCandidates())

	_, err := p.HandleTurn(context.Background(), "u1", "conv1", "apple patent case")
	require.NoError(t, err)

	result, err := p.HandleTurn(context.Background(), "u1", "conv1", "what is the statute of limitations for patent infringement claims?")
	require.NoError(t, err)
	// The old prompt is gone and the new query itself hit two candidates.
	assert.Equal(t, TurnDisambiguation, result.Kind)
	assert.True(t, mgr.HasPending("conv1"))
}
