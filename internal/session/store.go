// internal/session/store.go

// Package session persists conversation state in Redis, keyed by session id
// with a sliding TTL.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	stderrors "loksarthi/internal/common/errors"
	"loksarthi/internal/common/logger"
	"loksarthi/internal/common/metrics"
	"loksarthi/internal/models"
)

const keyPrefix = "session:"

// Store reads and writes sessions. Every Save refreshes the TTL, so active
// conversations never expire mid-flow.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewStore(client *redis.Client, ttlDays int, log logger.Logger) *Store {
	return &Store{
		client: client,
		ttl:    time.Duration(ttlDays) * 24 * time.Hour,
		logger: log.WithFields(map[string]interface{}{"component": "session-store"}),
	}
}

func sessionKey(id string) string {
	return keyPrefix + id
}

// Get loads a session by id. A missing session returns (nil, nil).
func (s *Store) Get(ctx context.Context, id string) (*models.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.SessionOperations.WithLabelValues("get", "miss").Inc()
		return nil, nil
	}
	if err != nil {
		metrics.SessionOperations.WithLabelValues("get", "error").Inc()
		return nil, stderrors.NewSessionLoadFailedError(err)
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		// A corrupt record is unrecoverable; treat it as a miss so the
		// citizen gets a fresh session instead of a hard failure.
		metrics.SessionOperations.WithLabelValues("get", "corrupt").Inc()
		s.logger.Error("discarding corrupt session record", map[string]interface{}{
			"session_id": id,
			"error":      err.Error(),
		})
		return nil, nil
	}

	metrics.SessionOperations.WithLabelValues("get", "success").Inc()
	return &session, nil
}

// GetOrCreate loads a session, creating a fresh one when none exists.
func (s *Store) GetOrCreate(ctx context.Context, id string) (*models.Session, error) {
	if id != "" {
		session, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if session != nil {
			return session, nil
		}
	}
	return models.NewSession(id), nil
}

// Save writes the session and resets its TTL.
func (s *Store) Save(ctx context.Context, session *models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		metrics.SessionOperations.WithLabelValues("save", "error").Inc()
		return stderrors.NewSessionSaveFailedError(err)
	}

	if err := s.client.Set(ctx, sessionKey(session.SessionID), raw, s.ttl).Err(); err != nil {
		metrics.SessionOperations.WithLabelValues("save", "error").Inc()
		return stderrors.NewSessionSaveFailedError(err)
	}

	metrics.SessionOperations.WithLabelValues("save", "success").Inc()
	return nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		metrics.SessionOperations.WithLabelValues("delete", "error").Inc()
		return stderrors.NewSessionSaveFailedError(err)
	}
	metrics.SessionOperations.WithLabelValues("delete", "success").Inc()
	return nil
}
