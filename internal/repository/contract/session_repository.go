package contract

import (
	"context"
	"errors"

	"legal-drafting-be/internal/entity"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores one Session per signed-in user. Get returns a copy;
// changes are only visible after Save.
type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, sessionId string) (*entity.Session, error)
	Delete(ctx context.Context, sessionId string) error
}
