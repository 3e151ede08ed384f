package memory

import (
	"time"

	"legal-research-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// Pending disambiguation state is short-lived: a stale candidate list must
// never answer an unrelated later query, so entries expire after ten minutes
// and the sweep reclaims them every minute.
const (
	defaultTTL    = 10 * time.Minute
	sweepInterval = 1 * time.Minute
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(defaultTTL, sweepInterval),
	}
}

// NewSessionRepositoryWithTTL is used by tests and by deployments that tune
// the pending-session lifetime via config.
func NewSessionRepositoryWithTTL(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, sweepInterval),
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
