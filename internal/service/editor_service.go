package service

import (
	"context"
	"time"

	"legal-drafting-be/internal/constant"
	"legal-drafting-be/internal/dto"
	"legal-drafting-be/internal/entity"
	"legal-drafting-be/internal/pkg/logger"
	"legal-drafting-be/internal/repository/contract"
)

type IEditorService interface {
	FindReplace(ctx context.Context, sessionId string, req *dto.FindReplaceRequest) (*dto.EditorResponse, error)
	MapParty(ctx context.Context, sessionId string, req *dto.MapPartyRequest) (*dto.EditorResponse, error)
	SaveDraft(ctx context.Context, sessionId string, req *dto.SaveDraftRequest) (*dto.EditorResponse, error)
}

type editorService struct {
	store  sessionStore
	logger logger.ILogger
	now    func() time.Time
}

func NewEditorService(sessions contract.SessionRepository, logger logger.ILogger) IEditorService {
	return &editorService{
		store:  sessionStore{repo: sessions},
		logger: logger,
		now:    time.Now,
	}
}

// FindReplace is literal and global. Empty input or a missing draft leaves
// the session untouched and reports Changed=false.
func (s *editorService) FindReplace(ctx context.Context, sessionId string, req *dto.FindReplaceRequest) (*dto.EditorResponse, error) {
	return s.replace(ctx, sessionId, req.Find, req.Replace)
}

// MapParty swaps a placeholder party for a real name in the current draft.
func (s *editorService) MapParty(ctx context.Context, sessionId string, req *dto.MapPartyRequest) (*dto.EditorResponse, error) {
	placeholder := constant.PartyPlaceholderA
	if req.Party == "B" {
		placeholder = constant.PartyPlaceholderB
	}
	return s.replace(ctx, sessionId, placeholder, req.Name)
}

// SaveDraft stores manual edits. History is not touched.
func (s *editorService) SaveDraft(ctx context.Context, sessionId string, req *dto.SaveDraftRequest) (*dto.EditorResponse, error) {
	session, err := s.store.update(ctx, sessionId, func(session *entity.Session) error {
		session.CurrentDraft = req.Content
		session.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.EditorResponse{Draft: session.CurrentDraft, Changed: true}, nil
}

func (s *editorService) replace(ctx context.Context, sessionId, old, new string) (*dto.EditorResponse, error) {
	var changed bool
	session, err := s.store.update(ctx, sessionId, func(session *entity.Session) error {
		changed = session.ReplaceAll(old, new, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	if changed {
		s.logger.Info("EDITOR", "Draft replaced", map[string]interface{}{"username": session.Username, "find": old})
	}
	return &dto.EditorResponse{Draft: session.CurrentDraft, Changed: changed}, nil
}
