package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"legal-drafting-be/internal/dto"
	"legal-drafting-be/internal/entity"
	"legal-drafting-be/internal/pkg/logger"
	"legal-drafting-be/internal/repository/contract"
)

type ISessionService interface {
	State(ctx context.Context, sessionId string) (*dto.SessionStateResponse, error)
	SetModel(ctx context.Context, sessionId string, req *dto.SetModelRequest) (*dto.SessionStateResponse, error)
	Reset(ctx context.Context, sessionId string) (*dto.SessionStateResponse, error)
	History(ctx context.Context, sessionId string) ([]dto.HistoryItemResponse, error)
	RestoreHistory(ctx context.Context, sessionId string, index int) (*dto.EditorResponse, error)
	AddJudgment(ctx context.Context, sessionId string, req *dto.AddJudgmentRequest) ([]dto.JudgmentResponse, error)
	ListJudgments(ctx context.Context, sessionId string) ([]dto.JudgmentResponse, error)
	ClearJudgments(ctx context.Context, sessionId string) error
}

type sessionService struct {
	store         sessionStore
	allowedModels []string
	logger        logger.ILogger
	now           func() time.Time
}

func NewSessionService(sessions contract.SessionRepository, allowedModels []string, logger logger.ILogger) ISessionService {
	return &sessionService{
		store:         sessionStore{repo: sessions},
		allowedModels: allowedModels,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *sessionService) State(ctx context.Context, sessionId string) (*dto.SessionStateResponse, error) {
	session, err := s.store.load(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	return toStateResponse(session), nil
}

// SetModel stores the selection for every role. The dispatcher ignores it for
// non-admin sessions.
func (s *sessionService) SetModel(ctx context.Context, sessionId string, req *dto.SetModelRequest) (*dto.SessionStateResponse, error) {
	if err := checkModel(req.Model, s.allowedModels); err != nil {
		return nil, err
	}
	session, err := s.store.update(ctx, sessionId, func(session *entity.Session) error {
		session.SelectedModel = req.Model
		session.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toStateResponse(session), nil
}

func (s *sessionService) Reset(ctx context.Context, sessionId string) (*dto.SessionStateResponse, error) {
	session, err := s.store.update(ctx, sessionId, func(session *entity.Session) error {
		session.Reset(s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("DRAFT", "Session reset", map[string]interface{}{"username": session.Username})
	return toStateResponse(session), nil
}

func (s *sessionService) History(ctx context.Context, sessionId string) ([]dto.HistoryItemResponse, error) {
	session, err := s.store.load(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	return toHistoryResponse(session.RecentHistory()), nil
}

// RestoreHistory makes a listed history entry the current draft. The history
// itself is left as it is.
func (s *sessionService) RestoreHistory(ctx context.Context, sessionId string, index int) (*dto.EditorResponse, error) {
	session, err := s.store.update(ctx, sessionId, func(session *entity.Session) error {
		recent := session.RecentHistory()
		if index < 0 || index >= len(recent) {
			return fmt.Errorf("%w: %d", ErrHistoryIndex, index)
		}
		session.CurrentDraft = recent[index].Content
		session.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.EditorResponse{Draft: session.CurrentDraft, Changed: true}, nil
}

func (s *sessionService) AddJudgment(ctx context.Context, sessionId string, req *dto.AddJudgmentRequest) ([]dto.JudgmentResponse, error) {
	session, err := s.store.update(ctx, sessionId, func(session *entity.Session) error {
		session.Judgments = append(session.Judgments, entity.VerifiedJudgment{
			Title:    req.Title,
			Citation: req.Citation,
			Extract:  req.Extract,
		})
		session.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toJudgmentResponse(session.Judgments), nil
}

func (s *sessionService) ListJudgments(ctx context.Context, sessionId string) ([]dto.JudgmentResponse, error) {
	session, err := s.store.load(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	return toJudgmentResponse(session.Judgments), nil
}

func (s *sessionService) ClearJudgments(ctx context.Context, sessionId string) error {
	_, err := s.store.update(ctx, sessionId, func(session *entity.Session) error {
		session.Judgments = nil
		session.UpdatedAt = s.now()
		return nil
	})
	return err
}

// checkModel accepts "auto", an allowed model id, or nothing.
func checkModel(model string, allowed []string) error {
	if model == "" || model == entity.ModelAuto || slices.Contains(allowed, model) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownModel, model)
}

func toStateResponse(session *entity.Session) *dto.SessionStateResponse {
	return &dto.SessionStateResponse{
		Username:         session.Username,
		Role:             string(session.Role),
		CurrentDraft:     session.CurrentDraft,
		HasDraft:         session.HasDraft(),
		FactsText:        session.FactsText,
		SelectedModel:    session.SelectedModel,
		LastPetitionType: session.LastPetitionType,
		History:          toHistoryResponse(session.RecentHistory()),
		Judgments:        toJudgmentResponse(session.Judgments),
	}
}

func toHistoryResponse(entries []entity.DraftHistoryEntry) []dto.HistoryItemResponse {
	res := make([]dto.HistoryItemResponse, len(entries))
	for i, e := range entries {
		res[i] = dto.HistoryItemResponse{
			Index:     i,
			Label:     e.Label,
			Content:   e.Content,
			CreatedAt: e.CreatedAt,
		}
	}
	return res
}

func toJudgmentResponse(judgments []entity.VerifiedJudgment) []dto.JudgmentResponse {
	res := make([]dto.JudgmentResponse, len(judgments))
	for i, j := range judgments {
		res[i] = dto.JudgmentResponse{Title: j.Title, Citation: j.Citation, Extract: j.Extract}
	}
	return res
}
