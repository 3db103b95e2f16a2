package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"legal-drafting-be/internal/entity"
	"legal-drafting-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "drafting:session:"

// SessionRepository keeps sessions in Redis so several server instances can
// share them. Every save refreshes the TTL.
type SessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.SessionRepository = &SessionRepository{}

func NewSessionRepository(rdb *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{rdb: rdb, ttl: ttl}
}

// NewClient parses a redis:// URL, falling back to treating it as host:port.
func NewClient(redisURL string) *redis.Client {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}
	return redis.NewClient(opt)
}

func sessionKey(id string) string {
	return keyPrefix + id
}

func (r *SessionRepository) Save(ctx context.Context, session *entity.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.rdb.Set(ctx, sessionKey(session.Id), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, sessionId string) (*entity.Session, error) {
	payload, err := r.rdb.Get(ctx, sessionKey(sessionId)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, contract.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var s entity.Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionId string) error {
	if err := r.rdb.Del(ctx, sessionKey(sessionId)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
