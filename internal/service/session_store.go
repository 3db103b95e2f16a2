package service

import (
	"context"

	"legal-drafting-be/internal/entity"
	"legal-drafting-be/internal/repository/contract"
)

// sessionStore runs one user action against a private copy of the session
// and saves the copy only when the action succeeds.
type sessionStore struct {
	repo contract.SessionRepository
}

func (s sessionStore) load(ctx context.Context, sessionId string) (*entity.Session, error) {
	return s.repo.Get(ctx, sessionId)
}

func (s sessionStore) update(ctx context.Context, sessionId string, apply func(*entity.Session) error) (*entity.Session, error) {
	session, err := s.repo.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if err := apply(session); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
