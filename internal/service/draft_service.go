package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"legal-drafting-be/internal/constant"
	"legal-drafting-be/internal/dto"
	"legal-drafting-be/internal/entity"
	"legal-drafting-be/internal/pkg/logger"
	"legal-drafting-be/internal/repository/contract"
	"legal-drafting-be/pkg/citation"
	"legal-drafting-be/pkg/dispatch"
	"legal-drafting-be/pkg/prompt"
)

type IDraftService interface {
	GenerateStandard(ctx context.Context, sessionId string, req *dto.GenerateDraftRequest) (*dto.DraftResponse, error)
	MirrorStyle(ctx context.Context, sessionId string, req *dto.MirrorStyleRequest) (*dto.DraftResponse, error)
}

type draftService struct {
	store         sessionStore
	dispatcher    *dispatch.Dispatcher
	vault         IVaultService
	allowedModels []string
	logger        logger.ILogger
	now           func() time.Time
}

func NewDraftService(
	sessions contract.SessionRepository,
	dispatcher *dispatch.Dispatcher,
	vault IVaultService,
	allowedModels []string,
	logger logger.ILogger,
) IDraftService {
	return &draftService{
		store:         sessionStore{repo: sessions},
		dispatcher:    dispatcher,
		vault:         vault,
		allowedModels: allowedModels,
		logger:        logger,
		now:           time.Now,
	}
}

// draftRun is one generation request after validation.
type draftRun struct {
	prompt       string
	facts        string
	petitionType string
	model        string
	mirror       bool
}

func (s *draftService) GenerateStandard(ctx context.Context, sessionId string, req *dto.GenerateDraftRequest) (*dto.DraftResponse, error) {
	district, err := resolveSelection(req.Court, req.Category, req.PetitionType, req.District)
	if err != nil {
		return nil, err
	}
	if err := checkModel(req.Model, s.allowedModels); err != nil {
		return nil, err
	}

	session, err := s.store.load(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	p := prompt.NewDraftBuilder(prompt.DraftInput{
		PetitionType: req.PetitionType,
		Court:        req.Court,
		District:     district,
		Facts:        req.Facts,
		Judgments:    session.Judgments,
	}).Build()

	return s.run(ctx, session, draftRun{
		prompt:       p,
		facts:        req.Facts,
		petitionType: req.PetitionType,
		model:        req.Model,
	})
}

// MirrorStyle regenerates using the opening paragraphs of a vault document as
// a style sample. A court, when given, is checked like a standard draft, and
// the result goes through the same guard and history.
func (s *draftService) MirrorStyle(ctx context.Context, sessionId string, req *dto.MirrorStyleRequest) (*dto.DraftResponse, error) {
	var district string
	if req.Court != "" {
		resolved, err := resolveSelection(req.Court, req.Category, req.PetitionType, req.District)
		if err != nil {
			return nil, err
		}
		district = resolved
	}
	if err := checkModel(req.Model, s.allowedModels); err != nil {
		return nil, err
	}

	session, err := s.store.load(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	style, err := s.vault.StyleReference(ctx, req.Reference)
	if err != nil {
		return nil, err
	}

	facts := req.Facts
	if facts == "" {
		facts = session.FactsText
	}

	p := prompt.NewDraftBuilder(prompt.DraftInput{
		PetitionType:   req.PetitionType,
		Court:          req.Court,
		District:       district,
		Facts:          facts,
		Judgments:      session.Judgments,
		StyleReference: style,
	}).Build()

	return s.run(ctx, session, draftRun{
		prompt:       p,
		facts:        facts,
		petitionType: req.PetitionType,
		model:        req.Model,
		mirror:       true,
	})
}

// run dispatches, gates and records. Facts are kept whatever the outcome; the
// draft and history change only when the text is non-empty and accepted.
func (s *draftService) run(ctx context.Context, session *entity.Session, r draftRun) (*dto.DraftResponse, error) {
	requested := r.model
	if requested == "" {
		requested = session.SelectedModel
	}

	result := s.dispatcher.Dispatch(ctx, r.prompt, r.facts, requested, session.Role)
	s.logAttempts(session.Username, result)

	empty := result.OK() && strings.TrimSpace(result.Text) == ""
	var verdict citation.Verdict
	if result.OK() {
		verdict = citation.Gate(result.Text, len(session.Judgments))
	}
	accepted := result.OK() && !empty && !verdict.Blocked

	now := s.now()
	label := historyLabel(r.petitionType, r.mirror, now)
	_, err := s.store.update(ctx, session.Id, func(current *entity.Session) error {
		current.FactsText = r.facts
		current.UpdatedAt = now
		if accepted {
			current.AcceptDraft(label, result.Text, now)
			current.LastPetitionType = r.petitionType
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	failures := toAttemptResponse(result.Attempts)
	switch {
	case !result.OK():
		s.logger.Error("DRAFT", "Generation offline", map[string]interface{}{
			"username": session.Username,
			"model":    result.Model,
			"error":    result.Err,
		})
		return nil, &OfflineError{Failures: failures}
	case empty:
		s.logger.Warn("DRAFT", "Empty draft discarded", map[string]interface{}{
			"username": session.Username,
			"source":   result.Source(),
		})
		return nil, fmt.Errorf("%w from %s", ErrEmptyDraft, result.Source())
	case verdict.Blocked:
		s.logger.Warn("DRAFT", "Draft blocked by citation guard", map[string]interface{}{
			"username":  session.Username,
			"citations": verdict.Matches,
		})
		return nil, &BlockedError{Citations: verdict.Matches, Source: result.Source()}
	}

	s.logger.Info("DRAFT", "Draft accepted", map[string]interface{}{
		"username": session.Username,
		"label":    label,
		"source":   result.Source(),
		"elapsed":  result.ElapsedSeconds(),
	})

	return &dto.DraftResponse{
		Draft:          result.Text,
		Label:          label,
		Source:         result.Source(),
		Model:          result.Model,
		ElapsedSeconds: result.ElapsedSeconds(),
		Failures:       failures,
	}, nil
}

func (s *draftService) logAttempts(username string, result dispatch.Result) {
	for _, a := range result.Attempts {
		s.logger.Warn("DISPATCH", "Credential failed", map[string]interface{}{
			"username": username,
			"label":    a.Label,
			"cause":    string(a.Kind),
			"model":    result.Model,
		})
	}
}

// resolveSelection checks the court, category and petition type against the
// court tables and returns the district the draft is addressed to.
func resolveSelection(court, category, petitionType, district string) (string, error) {
	types, ok := constant.PetitionTypesFor(court, category)
	if !ok {
		if court == constant.CourtDistAndSessions {
			return "", fmt.Errorf("%w: category must be %s or %s", ErrInvalidSelection, constant.DistSessionsCivil, constant.DistSessionsCriminal)
		}
		return "", fmt.Errorf("%w: unknown court %q", ErrInvalidSelection, court)
	}
	if !slices.Contains(types, petitionType) {
		return "", fmt.Errorf("%w: %q is not offered by %s", ErrInvalidSelection, petitionType, court)
	}
	resolved, ok := constant.ResolveDistrict(court, district)
	if !ok {
		return "", fmt.Errorf("%w: unknown district %q", ErrInvalidSelection, district)
	}
	return resolved, nil
}

func historyLabel(petitionType string, mirror bool, now time.Time) string {
	if mirror {
		return fmt.Sprintf("%s mirror (%s)", petitionType, now.Format("15:04"))
	}
	return fmt.Sprintf("%s (%s)", petitionType, now.Format("15:04"))
}

func toAttemptResponse(attempts []dispatch.Attempt) []dto.AttemptResponse {
	if len(attempts) == 0 {
		return nil
	}
	res := make([]dto.AttemptResponse, len(attempts))
	for i, a := range attempts {
		res[i] = dto.AttemptResponse{Label: a.Label, Cause: string(a.Kind)}
	}
	return res
}
