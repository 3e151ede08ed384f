package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"legal-research-be/internal/pkg/logger"
	"legal-research-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "disambig:session:"

// SessionRepository is the redis-backed variant of the in-memory session
// store, for deployments running more than one API instance. Redis handles
// expiry via key TTL. Errors degrade to cache misses: the pipeline treats an
// unreadable session exactly like an expired one.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.ILogger
}

func NewSessionRepository(client *redis.Client, ttl time.Duration, log logger.ILogger) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	data, err := json.Marshal(session)
	if err != nil {
		r.log.Error("REDIS_SESSION", "failed to marshal session", map[string]interface{}{
			"session_id": session.ID, "error": err.Error(),
		})
		return
	}
	if err := r.client.Set(context.Background(), keyPrefix+session.ID, data, r.ttl).Err(); err != nil {
		r.log.Error("REDIS_SESSION", "failed to save session", map[string]interface{}{
			"session_id": session.ID, "error": err.Error(),
		})
	}
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	data, err := r.client.Get(context.Background(), keyPrefix+sessionID).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.log.Warn("REDIS_SESSION", "session read failed, treating as miss", map[string]interface{}{
				"session_id": sessionID, "error": err.Error(),
			})
		}
		return nil, false
	}

	var session store.Session
	if err := json.Unmarshal(data, &session); err != nil {
		r.log.Warn("REDIS_SESSION", "corrupt session payload, treating as miss", map[string]interface{}{
			"session_id": sessionID, "error": err.Error(),
		})
		return nil, false
	}
	return &session, true
}

func (r *SessionRepository) Delete(sessionID string) {
	if err := r.client.Del(context.Background(), keyPrefix+sessionID).Err(); err != nil {
		r.log.Warn("REDIS_SESSION", "failed to delete session", map[string]interface{}{
			"session_id": sessionID, "error": err.Error(),
		})
	}
}
