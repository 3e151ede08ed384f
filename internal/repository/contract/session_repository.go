package contract

import "legal-research-be/pkg/store"

// SessionRepository stores the per-conversation in-memory session state,
// keyed by chat session id. A missing or expired entry is a cache miss, not
// an error; callers fall back to fresh-query handling.
type SessionRepository interface {
	Get(sessionID string) (*store.Session, bool)
	Save(session *store.Session)
	Delete(sessionID string)
}
