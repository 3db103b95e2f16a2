package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"legal-drafting-be/internal/entity"
	"legal-drafting-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "drafting:session:abc", sessionKey("abc"))
}

// Needs a live server: REDIS_TEST_URL=redis://localhost:6379/15 go test ./...
func TestSessionRepositoryIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_TEST_URL")
	if redisURL == "" {
		t.Skip("REDIS_TEST_URL not set")
	}

	ctx := context.Background()
	rdb := NewClient(redisURL)
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewSessionRepository(rdb, time.Minute)
	s := entity.NewSession(uuid.NewString(), "advocate", entity.UserRoleAdmin, time.Now().UTC())
	s.AcceptDraft("Bail App (10:30)", "draft text", time.Now().UTC())
	s.Judgments = []entity.VerifiedJudgment{{Title: "A v B", Citation: "2021 KHC 55"}}

	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, s.Id)
	require.NoError(t, err)
	assert.Equal(t, s.CurrentDraft, got.CurrentDraft)
	assert.Equal(t, s.Judgments, got.Judgments)
	assert.Equal(t, entity.UserRoleAdmin, got.Role)

	require.NoError(t, repo.Delete(ctx, s.Id))
	_, err = repo.Get(ctx, s.Id)
	assert.ErrorIs(t, err, contract.ErrSessionNotFound)
}
