package pipeline

import (
	"context"
	"fmt"

	"legal-research-be/internal/pkg/logger"
	"legal-research-be/pkg/research/response"
	"legal-research-be/pkg/research/search"
	"legal-research-be/pkg/research/session"
	"legal-research-be/pkg/store"
)

// TurnKind classifies what one user turn produced.
type TurnKind string

const (
	// TurnAnswer means one case is selected and the reply answers about it.
	TurnAnswer TurnKind = "ANSWER"
	// TurnDisambiguation means the reply asks the user to pick a candidate.
	TurnDisambiguation TurnKind = "DISAMBIGUATION"
	// TurnNotFound means retrieval surfaced nothing.
	TurnNotFound TurnKind = "NOT_FOUND"
)

// TurnResult is what the service layer persists and sends back.
type TurnResult struct {
	Kind         TurnKind
	Reply        string
	ReturnBranch string
	Candidates   []store.Candidate // numbered options, only for TurnDisambiguation
	Selected     *store.Candidate  // only for TurnAnswer
}

// ResponseComposer produces the answer text once a single case is selected.
// Generation is external to this subsystem; the default composer just
// acknowledges the selection.
type ResponseComposer interface {
	Compose(ctx context.Context, query string, selected store.Candidate) (string, error)
}

// StaticComposer is the deterministic default composer.
type StaticComposer struct{}

func (StaticComposer) Compose(_ context.Context, _ string, selected store.Candidate) (string, error) {
	return response.Selected(selected), nil
}

// Pipeline orchestrates one chat turn: settle any pending candidate choice
// first, then treat the message as a fresh research query when nothing is
// pending (or the pending session was abandoned).
type Pipeline struct {
	log      logger.ILogger
	sessions *session.Manager
	searcher search.Searcher
	composer ResponseComposer
}

func NewPipeline(log logger.ILogger, sessions *session.Manager, searcher search.Searcher, composer ResponseComposer) *Pipeline {
	if composer == nil {
		composer = StaticComposer{}
	}
	return &Pipeline{log: log, sessions: sessions, searcher: searcher, composer: composer}
}

// HandleTurn runs one user message through the disambiguation flow and
// returns the reply to persist. The conversation id keys the pending session.
func (p *Pipeline) HandleTurn(ctx context.Context, userID, conversationID, message string) (*TurnResult, error) {
	decision := p.sessions.TryResolvePending(ctx, conversationID, message)

	switch decision.Kind {
	case session.DecisionResolved:
		return p.answer(ctx, decision.ReturnBranch, message, *decision.Candidate)

	case session.DecisionRetry:
		return &TurnResult{
			Kind:         TurnDisambiguation,
			Reply:        response.RetryPrompt(decision.Candidates),
			ReturnBranch: store.BranchDisambiguation,
			Candidates:   decision.Candidates,
		}, nil
	}

	// DecisionNoPending, or DecisionAbandoned falling through: the message
	// is a fresh query.
	candidates, err := p.searcher.Search(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("handle turn: %w", err)
	}

	switch len(candidates) {
	case 0:
		reply := response.NotFound(message)
		if decision.Kind == session.DecisionAbandoned {
			reply = response.LostContext()
		}
		return &TurnResult{Kind: TurnNotFound, Reply: reply}, nil

	case 1:
		return p.answer(ctx, store.BranchCaseAnswer, message, candidates[0])

	default:
		p.sessions.SetPending(ctx, userID, conversationID, candidates, store.BranchCaseAnswer, message)
		return &TurnResult{
			Kind:         TurnDisambiguation,
			Reply:        response.AmbiguityPrompt(candidates),
			ReturnBranch: store.BranchDisambiguation,
			Candidates:   candidates,
		}, nil
	}
}

func (p *Pipeline) answer(ctx context.Context, branch, query string, selected store.Candidate) (*TurnResult, error) {
	reply, err := p.composer.Compose(ctx, query, selected)
	if err != nil {
		p.log.Error("PIPELINE", "compose failed", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("compose answer: %w", err)
	}
	if branch == "" {
		branch = store.BranchCaseAnswer
	}
	return &TurnResult{
		Kind:         TurnAnswer,
		Reply:        reply,
		ReturnBranch: branch,
		Selected:     &selected,
	}, nil
}
