package memory

import (
	"context"
	"time"

	"legal-drafting-be/internal/entity"
	"legal-drafting-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

var _ contract.SessionRepository = &SessionRepository{}

// NewSessionRepository keeps sessions for ttl after their last save and
// purges expired ones every ttl/6.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	c := cache.New(ttl, ttl/6)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(_ context.Context, session *entity.Session) error {
	r.cache.Set(session.Id, session.Clone(), cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Get(_ context.Context, sessionId string) (*entity.Session, error) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*entity.Session).Clone(), nil
	}
	return nil, contract.ErrSessionNotFound
}

func (r *SessionRepository) Delete(_ context.Context, sessionId string) error {
	r.cache.Delete(sessionId)
	return nil
}
