package session

import (
	"context"
	"sync"
	"testing"

	"legal-research-be/internal/pkg/logger"
	"legal-research-be/internal/repository/memory"
	"legal-research-be/pkg/events"
	"legal-research-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *capturingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *capturingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}

func newTestManager(t *testing.T) (*Manager, *capturingPublisher) {
	t.Helper()
	pub := &capturingPublisher{}
	return NewManager(memory.NewSessionRepository(), logger.NewNop(), pub), pub
}

func appleCandidates() []store.Candidate {
	return []store.Candidate{
		{ID: "c1", Label: "Apple Inc. v. Samsung Electronics"},
		{ID: "c2", Label: "Apple Inc. v. Motorola"},
		{ID: "c3", Label: "Oracle America v. Google"},
	}
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	m, pub := newTestManager(t)

	m.SetPending(ctx, "user-1", "conv-1", appleCandidates(), store.BranchDisambiguation, "apple cases")
	require.True(t, m.HasPending("conv-1"))

	decision := m.TryResolvePending(ctx, "conv-1", "the second one")
	require.Equal(t, DecisionResolved, decision.Kind)
	require.NotNil(t, decision.Candidate)
	assert.Equal(t, 2, decision.Index)
	assert.Equal(t, "Apple Inc. v. Motorola", decision.Candidate.Label)
	assert.Equal(t, store.BranchDisambiguation, decision.ReturnBranch)

	// Consumed: a subsequent attempt reports no pending session.
	assert.False(t, m.HasPending("conv-1"))
	followup := m.TryResolvePending(ctx, "conv-1", "the second one")
	assert.Equal(t, DecisionNoPending, followup.Kind)

	assert.Equal(t, []string{
		events.TypeDisambiguationOpened,
		events.TypeDisambiguationResolved,
	}, pub.types())
}

func TestBareDigitResolves(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	m.SetPending(ctx, "user-1", "conv-1", appleCandidates(), store.BranchDisambiguation, "apple")

	decision := m.TryResolvePending(ctx, "conv-1", "2")
	require.Equal(t, DecisionResolved, decision.Kind)
	assert.Equal(t, "Apple Inc. v. Motorola", decision.Candidate.Label)
}

func TestNewPendingSupersedesOld(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	m.SetPending(ctx, "user-1", "conv-1", appleCandidates(), store.BranchDisambiguation, "apple")
	m.SetPending(ctx, "user-1", "conv-1", []store.Candidate{
		{ID: "x1", Label: "Markman v. Westview Instruments"},
		{ID: "x2", Label: "Phillips v. AWH Corp"},
	}, store.BranchDisambiguation, "claim construction")

	decision := m.TryResolvePending(ctx, "conv-1", "1")
	require.Equal(t, DecisionResolved, decision.Kind)
	assert.Equal(t, "Markman v. Westview Instruments", decision.Candidate.Label)
}

func TestUnrelatedFollowupAbandons(t *testing.T) {
	ctx := context.Background()
	m, pub := newTestManager(t)

	m.SetPending(ctx, "user-1", "conv-1", appleCandidates(), store.BranchDisambiguation, "apple")

	decision := m.TryResolvePending(ctx, "conv-1", "What is consideration in contract law?")
	assert.Equal(t, DecisionAbandoned, decision.Kind)
	assert.False(t, m.HasPending("conv-1"))

	assert.Contains(t, pub.types(), events.TypeDisambiguationAbandoned)
}

func TestAmbiguousFollowupRetriesThenAbandons(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	m.SetPending(ctx, "user-1", "conv-1", appleCandidates(), store.BranchDisambiguation, "apple")

	// "apple" ties the first two candidates: ambiguous but still a reference.
	first := m.TryResolvePending(ctx, "conv-1", "the apple one")
	assert.Equal(t, DecisionRetry, first.Kind)
	assert.Len(t, first.Candidates, 3)
	assert.True(t, m.HasPending("conv-1"))

	// Budget of one retry: the second failure drops the session.
	second := m.TryResolvePending(ctx, "conv-1", "the apple one")
	assert.Equal(t, DecisionAbandoned, second.Kind)
	assert.False(t, m.HasPending("conv-1"))
}

func TestOutOfRangeExplicitIsNotConsumed(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	m.SetPending(ctx, "user-1", "conv-1", appleCandidates(), store.BranchDisambiguation, "apple")

	decision := m.TryResolvePending(ctx, "conv-1", "option 12")
	assert.Equal(t, DecisionRetry, decision.Kind, "out-of-range index must not select a candidate")
	assert.True(t, m.HasPending("conv-1"))

	// A valid follow-up still works afterwards.
	resolved := m.TryResolvePending(ctx, "conv-1", "option 3")
	require.Equal(t, DecisionResolved, resolved.Kind)
	assert.Equal(t, "Oracle America v. Google", resolved.Candidate.Label)
}

func TestClearPendingDropsSession(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	m.SetPending(ctx, "user-1", "conv-1", appleCandidates(), store.BranchDisambiguation, "apple")
	m.ClearPending(ctx, "conv-1")

	assert.False(t, m.HasPending("conv-1"))
	assert.Equal(t, DecisionNoPending, m.TryResolvePending(ctx, "conv-1", "2").Kind)
}

func TestConcurrentResolutionConsumesAtMostOnce(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	m.SetPending(ctx, "user-1", "conv-1", appleCandidates(), store.BranchDisambiguation, "apple")

	const attempts = 64
	var wg sync.WaitGroup
	results := make(chan DecisionKind, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- m.TryResolvePending(ctx, "conv-1", "2").Kind
		}()
	}
	wg.Wait()
	close(results)

	resolved := 0
	for kind := range results {
		switch kind {
		case DecisionResolved:
			resolved++
		case DecisionNoPending:
			// Losers observe the consumed session as a miss.
		default:
			t.Fatalf("unexpected decision kind %s", kind)
		}
	}
	assert.Equal(t, 1, resolved, "exactly one attempt may consume the session")
}

func TestIndependentConversationsDoNotInterfere(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	m.SetPending(ctx, "user-1", "conv-1", appleCandidates(), store.BranchDisambiguation, "apple")
	m.SetPending(ctx, "user-2", "conv-2", appleCandidates(), store.BranchDisambiguation, "apple")

	first := m.TryResolvePending(ctx, "conv-1", "1")
	require.Equal(t, DecisionResolved, first.Kind)

	assert.True(t, m.HasPending("conv-2"), "resolving conv-1 must not touch conv-2")
}
