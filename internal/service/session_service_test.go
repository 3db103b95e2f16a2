package service

import (
	"context"
	"fmt"
	"testing"

	"legal-drafting-be/internal/dto"
	"legal-drafting-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetKeepsOnlyAuthentication(t *testing.T) {
	env := newTestEnv(t, cred("Tank-1", &stubProvider{text: "draft"}))
	id := env.login(t, entity.UserRoleAdmin)
	ctx := context.Background()

	_, err := env.draft.GenerateStandard(ctx, id, highCourtRequest("facts"))
	require.NoError(t, err)
	_, err = env.session.AddJudgment(ctx, id, &dto.AddJudgmentRequest{Title: "T", Citation: "2020 KHC 1"})
	require.NoError(t, err)
	_, err = env.session.SetModel(ctx, id, &dto.SetModelRequest{Model: "pinned-model"})
	require.NoError(t, err)

	state, err := env.session.Reset(ctx, id)

	require.NoError(t, err)
	assert.False(t, state.HasDraft)
	assert.Empty(t, state.History)
	assert.Empty(t, state.Judgments)
	assert.Equal(t, entity.ModelAuto, state.SelectedModel)

	s := env.stored(t, id)
	assert.True(t, s.Authenticated)
	assert.Equal(t, entity.UserRoleAdmin, s.Role)
	assert.Equal(t, "advocate-admin", s.Username)
	assert.Empty(t, s.FactsText)
	assert.Empty(t, s.LastPetitionType)
}

func TestSetModelRejectsUnknown(t *testing.T) {
	env := newTestEnv(t)
	id := env.login(t, entity.UserRoleAdmin)

	_, err := env.session.SetModel(context.Background(), id, &dto.SetModelRequest{Model: "gpt-x"})

	assert.ErrorIs(t, err, ErrUnknownModel)
	assert.Equal(t, entity.ModelAuto, env.stored(t, id).SelectedModel)
}

func TestHistoryShowsTenAndRestores(t *testing.T) {
	provider := &stubProvider{}
	env := newTestEnv(t, cred("Tank-1", provider))
	id := env.login(t, entity.UserRoleUser)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		provider.text = fmt.Sprintf("draft %d", i)
		_, err := env.draft.GenerateStandard(ctx, id, highCourtRequest("facts"))
		require.NoError(t, err)
	}

	history, err := env.session.History(ctx, id)
	require.NoError(t, err)
	require.Len(t, history, 10)
	assert.Equal(t, "draft 11", history[0].Content)
	assert.Equal(t, 9, history[9].Index)

	res, err := env.session.RestoreHistory(ctx, id, 3)
	require.NoError(t, err)
	assert.Equal(t, "draft 8", res.Draft)

	s := env.stored(t, id)
	assert.Equal(t, "draft 8", s.CurrentDraft)
	assert.Len(t, s.DraftHistory, 12)
}

func TestRestoreHistoryOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	id := env.login(t, entity.UserRoleUser)

	for _, index := range []int{-1, 0, 10} {
		_, err := env.session.RestoreHistory(context.Background(), id, index)
		assert.ErrorIs(t, err, ErrHistoryIndex, index)
	}
}

func TestJudgmentsAddListClear(t *testing.T) {
	env := newTestEnv(t)
	id := env.login(t, entity.UserRoleUser)
	ctx := context.Background()

	_, err := env.session.AddJudgment(ctx, id, &dto.AddJudgmentRequest{Title: "A v B", Citation: "2019 KHC 5"})
	require.NoError(t, err)
	list, err := env.session.AddJudgment(ctx, id, &dto.AddJudgmentRequest{Title: "C v D", Citation: "AIR 1980 SC 1", Extract: "held"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = env.session.ListJudgments(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "C v D", list[1].Title)

	require.NoError(t, env.session.ClearJudgments(ctx, id))
	list, err = env.session.ListJudgments(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, list)
}
