package service

import (
	"context"
	"testing"
	"time"

	"legal-drafting-be/internal/entity"
	"legal-drafting-be/internal/pkg/logger"
	"legal-drafting-be/internal/repository/memory"
	"legal-drafting-be/internal/repository/vault"
	"legal-drafting-be/pkg/dispatch"
	"legal-drafting-be/pkg/llm"

	"github.com/stretchr/testify/require"
)

var (
	testModels    = dispatch.Models{Small: "small-model", Large: "large-model"}
	allowedModels = []string{"small-model", "large-model", "pinned-model"}
	fixedNow      = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
)

// stubProvider answers every prompt the same way and remembers what it saw.
type stubProvider struct {
	text    string
	err     error
	prompts []string
	models  []string
}

func (p *stubProvider) Generate(_ context.Context, prompt string, opts ...llm.Option) (string, error) {
	p.prompts = append(p.prompts, prompt)
	p.models = append(p.models, llm.ApplyOptions(llm.Options{}, opts...).Model)
	if p.err != nil {
		return "", p.err
	}
	return p.text, nil
}

func (p *stubProvider) lastPrompt() string {
	if len(p.prompts) == 0 {
		return ""
	}
	return p.prompts[len(p.prompts)-1]
}

func failing(kind llm.FailureKind, status int) *stubProvider {
	return &stubProvider{err: &llm.ProviderError{Kind: kind, StatusCode: status, Err: context.DeadlineExceeded}}
}

type testEnv struct {
	sessions *memory.SessionRepository
	session  ISessionService
	vault    IVaultService
	draft    IDraftService
	editor   IEditorService
	export   IExportService
	research IResearchService
}

func newTestEnv(t *testing.T, credentials ...dispatch.Credential) *testEnv {
	t.Helper()

	sessions := memory.NewSessionRepository(time.Hour)
	vaultRepo, err := vault.NewDirRepository(t.TempDir())
	require.NoError(t, err)

	log := logger.NewNopLogger()
	d := dispatch.NewDispatcher(credentials, testModels)
	vaultSvc := NewVaultService(vaultRepo, log)

	draftSvc := NewDraftService(sessions, d, vaultSvc, allowedModels, log).(*draftService)
	draftSvc.now = func() time.Time { return fixedNow }
	sessionSvc := NewSessionService(sessions, allowedModels, log).(*sessionService)
	sessionSvc.now = func() time.Time { return fixedNow }
	editorSvc := NewEditorService(sessions, log).(*editorService)
	editorSvc.now = func() time.Time { return fixedNow }

	return &testEnv{
		sessions: sessions,
		session:  sessionSvc,
		vault:    vaultSvc,
		draft:    draftSvc,
		editor:   editorSvc,
		export:   NewExportService(sessions, log),
		research: NewResearchService(sessions, d, log),
	}
}

// login stores a fresh session and returns its id.
func (e *testEnv) login(t *testing.T, role entity.UserRole) string {
	t.Helper()
	s := entity.NewSession("session-"+string(role), "advocate-"+string(role), role, fixedNow)
	require.NoError(t, e.sessions.Save(context.Background(), s))
	return s.Id
}

func (e *testEnv) stored(t *testing.T, id string) *entity.Session {
	t.Helper()
	s, err := e.sessions.Get(context.Background(), id)
	require.NoError(t, err)
	return s
}

func cred(label string, p llm.LLMProvider) dispatch.Credential {
	return dispatch.Credential{Label: label, Provider: p}
}
