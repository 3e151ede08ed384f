package session

import (
	"context"
	"sync"
	"time"

	"legal-research-be/internal/pkg/logger"
	"legal-research-be/internal/repository/contract"
	"legal-research-be/pkg/events"
	"legal-research-be/pkg/research/reference"
	"legal-research-be/pkg/store"
)

// DecisionKind tags the outcome of a follow-up turn against a pending
// disambiguation session.
type DecisionKind string

const (
	// DecisionNoPending means no session existed (or it expired); the
	// message is a fresh query.
	DecisionNoPending DecisionKind = "NO_PENDING"
	// DecisionResolved means exactly one candidate was selected and the
	// session was consumed.
	DecisionResolved DecisionKind = "RESOLVED"
	// DecisionRetry means the message looked like a reference but did not
	// resolve; the same candidate set should be re-prompted.
	DecisionRetry DecisionKind = "RETRY"
	// DecisionAbandoned means the session was dropped (unrelated follow-up
	// or retry budget exhausted); the message is handled as a fresh query.
	DecisionAbandoned DecisionKind = "ABANDONED"
)

// Decision is the result of TryResolvePending.
type Decision struct {
	Kind         DecisionKind
	Resolution   reference.Resolution
	Candidate    *store.Candidate // set when Kind == DecisionResolved
	Index        int              // 1-based, set when Kind == DecisionResolved
	Candidates   []store.Candidate
	ReturnBranch string
}

// DefaultMaxAttempts is the conservative retry budget: one failed follow-up
// is re-prompted, the second failure abandons the session.
const DefaultMaxAttempts = 1

// Manager owns the disambiguation session state machine. It is
// dependency-injected rather than process-global so tests can run it against
// a plain in-memory repository. All read-modify-write cycles on a
// conversation's session run under that conversation's lock, so two
// near-simultaneous messages can never both consume the same pending session.
type Manager struct {
	repo        contract.SessionRepository
	log         logger.ILogger
	publisher   events.Publisher // may be nil
	maxAttempts int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewManager(repo contract.SessionRepository, log logger.ILogger, publisher events.Publisher) *Manager {
	return &Manager{
		repo:        repo,
		log:         log,
		publisher:   publisher,
		maxAttempts: DefaultMaxAttempts,
		locks:       make(map[string]*sync.Mutex),
	}
}

// WithMaxAttempts overrides the retry budget (0 means "never retry").
func (m *Manager) WithMaxAttempts(n int) *Manager {
	m.maxAttempts = n
	return m
}

// lockFor returns the mutex guarding one conversation's session. Locks live
// for the process lifetime; there is one per conversation seen.
func (m *Manager) lockFor(conversationID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[conversationID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[conversationID] = l
	}
	return l
}

// SetPending registers a pending candidate choice for a conversation,
// superseding any prior pending session for the same conversation id.
func (m *Manager) SetPending(ctx context.Context, userID, conversationID string, candidates []store.Candidate, returnBranch, lastQuery string) {
	l := m.lockFor(conversationID)
	l.Lock()
	defer l.Unlock()

	m.repo.Save(&store.Session{
		ID:           conversationID,
		UserID:       userID,
		State:        store.StatePendingChoice,
		Candidates:   candidates,
		ReturnBranch: returnBranch,
		LastQuery:    lastQuery,
		CreatedAt:    time.Now(),
	})

	m.log.Info("DISAMBIG", "pending choice opened", map[string]interface{}{
		"conversation_id": conversationID,
		"candidates":      len(candidates),
		"return_branch":   returnBranch,
	})
	m.publish(ctx, events.NewDisambiguationOpened(conversationID, len(candidates), returnBranch))
}

// TryResolvePending runs one follow-up turn against the conversation's
// pending session, if any. The session is consumed on success, retained when
// a retry is worthwhile, and dropped when the message is unrelated or the
// retry budget is exhausted. Reading, resolving, and clearing happen under
// the conversation lock, so consumption is at-most-once.
func (m *Manager) TryResolvePending(ctx context.Context, conversationID, message string) Decision {
	l := m.lockFor(conversationID)
	l.Lock()
	defer l.Unlock()

	sess, found := m.repo.Get(conversationID)
	if !found || !sess.AwaitingChoice() {
		return Decision{Kind: DecisionNoPending}
	}

	// An explicit numeric reference ("2", "option 3") counts as a reference
	// signal even though the hint-based classifier alone would not flag it.
	_, explicit := reference.DetectExplicitReference(message)
	if !explicit && !reference.IsProbableFollowup(message) {
		m.abandon(ctx, sess, "unrelated_followup")
		return Decision{Kind: DecisionAbandoned}
	}

	res := reference.ResolveCandidateReference(message, sess.Candidates)
	if res.Resolved() && res.Index >= 1 && res.Index <= len(sess.Candidates) {
		candidate := sess.Candidates[res.Index-1]
		m.repo.Delete(conversationID)

		m.log.Info("DISAMBIG", "pending choice resolved", map[string]interface{}{
			"conversation_id": conversationID,
			"selected_index":  res.Index,
			"label":           candidate.Label,
		})
		m.publish(ctx, events.NewDisambiguationResolved(conversationID, res.Index, sess.Attempts))

		return Decision{
			Kind:         DecisionResolved,
			Resolution:   res,
			Candidate:    &candidate,
			Index:        res.Index,
			Candidates:   sess.Candidates,
			ReturnBranch: sess.ReturnBranch,
		}
	}

	// Ambiguous, no match, or an out-of-range explicit index. The resolver
	// leaves bounds checking to us; out of range is treated as no match.
	sess.Attempts++
	if sess.Attempts > m.maxAttempts {
		m.abandon(ctx, sess, "retry_budget_exhausted")
		return Decision{Kind: DecisionAbandoned, Resolution: res}
	}

	m.repo.Save(sess)
	m.log.Info("DISAMBIG", "pending choice retried", map[string]interface{}{
		"conversation_id": conversationID,
		"attempts":        sess.Attempts,
		"outcome":         string(res.Outcome),
	})
	return Decision{
		Kind:         DecisionRetry,
		Resolution:   res,
		Candidates:   sess.Candidates,
		ReturnBranch: sess.ReturnBranch,
	}
}

// HasPending reports whether the conversation currently awaits a choice.
func (m *Manager) HasPending(conversationID string) bool {
	sess, found := m.repo.Get(conversationID)
	return found && sess.AwaitingChoice()
}

// ClearPending drops any pending session without resolving it, e.g. when the
// conversation is deleted.
func (m *Manager) ClearPending(ctx context.Context, conversationID string) {
	l := m.lockFor(conversationID)
	l.Lock()
	defer l.Unlock()

	if sess, found := m.repo.Get(conversationID); found {
		m.abandon(ctx, sess, "cleared")
	}
}

func (m *Manager) abandon(ctx context.Context, sess *store.Session, reason string) {
	m.repo.Delete(sess.ID)
	m.log.Info("DISAMBIG", "pending choice abandoned", map[string]interface{}{
		"conversation_id": sess.ID,
		"reason":          reason,
		"attempts":        sess.Attempts,
	})
	m.publish(ctx, events.NewDisambiguationAbandoned(sess.ID, reason))
}

func (m *Manager) publish(ctx context.Context, event events.Event) {
	if m.publisher == nil {
		return
	}
	if err := m.publisher.Publish(ctx, event); err != nil {
		m.log.Warn("DISAMBIG", "event publish failed", map[string]interface{}{
			"event": event.EventType(), "error": err.Error(),
		})
	}
}
