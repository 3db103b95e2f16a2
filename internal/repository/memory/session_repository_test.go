package memory

import (
	"context"
	"testing"
	"time"

	"legal-drafting-be/internal/entity"
	"legal-drafting-be/internal/repository/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Hour)
	s := entity.NewSession("s-1", "advocate", entity.UserRoleUser, time.Now())

	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "advocate", got.Username)
}

func TestSessionRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Hour)
	s := entity.NewSession("s-1", "advocate", entity.UserRoleUser, time.Now())
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	got.CurrentDraft = "unsaved"
	s.CurrentDraft = "also unsaved"

	again, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Empty(t, again.CurrentDraft)
}

func TestSessionRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Hour)
	require.NoError(t, repo.Save(ctx, entity.NewSession("s-1", "u", entity.UserRoleUser, time.Now())))

	require.NoError(t, repo.Delete(ctx, "s-1"))

	_, err := repo.Get(ctx, "s-1")
	assert.ErrorIs(t, err, contract.ErrSessionNotFound)
}
