package service

import (
	"context"

	"legal-drafting-be/internal/constant"
	"legal-drafting-be/internal/dto"
	"legal-drafting-be/internal/pkg/logger"
	"legal-drafting-be/internal/repository/contract"
	"legal-drafting-be/pkg/dispatch"
	"legal-drafting-be/pkg/prompt"
	"legal-drafting-be/pkg/research"
)

// SuggestedPhraseLimit caps the search phrases taken from one reply.
const SuggestedPhraseLimit = 5

type IResearchService interface {
	QuickLink(petitionType, facts string) *dto.QuickLinkResponse
	Suggest(ctx context.Context, sessionId string, req *dto.SuggestResearchRequest) (*dto.SuggestResearchResponse, error)
}

type researchService struct {
	store      sessionStore
	dispatcher *dispatch.Dispatcher
	logger     logger.ILogger
}

func NewResearchService(sessions contract.SessionRepository, dispatcher *dispatch.Dispatcher, logger logger.ILogger) IResearchService {
	return &researchService{
		store:      sessionStore{repo: sessions},
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (s *researchService) QuickLink(petitionType, facts string) *dto.QuickLinkResponse {
	return &dto.QuickLinkResponse{URL: research.QuickLink(petitionType, facts)}
}

// Suggest never fails on generation: an offline reply still carries the
// quick link, with no phrases.
func (s *researchService) Suggest(ctx context.Context, sessionId string, req *dto.SuggestResearchRequest) (*dto.SuggestResearchResponse, error) {
	if req.YearFrom > 0 && req.YearTo > 0 && req.YearFrom > req.YearTo {
		return nil, ErrInvalidYearRange
	}

	session, err := s.store.load(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	facts := req.Facts
	if facts == "" {
		facts = session.FactsText
	}
	domain := req.Domain
	if domain == "" {
		domain = constant.DefaultResearchDomain
	}
	yearFilter := research.YearRangeFilter(req.YearFrom, req.YearTo)

	res := &dto.SuggestResearchResponse{
		QuickLink:  research.QuickLink(req.PetitionType, facts),
		Phrases:    []string{},
		Links:      []dto.ResearchLink{},
		YearFilter: yearFilter,
	}

	p := prompt.ResearchKeywords(req.PetitionType, facts, SuggestedPhraseLimit)
	result := s.dispatcher.Dispatch(ctx, p, facts, session.SelectedModel, session.Role)
	res.Source = result.Source()
	if !result.OK() {
		s.logger.Warn("RESEARCH", "Keyword suggestion offline", map[string]interface{}{
			"username": session.Username,
			"attempts": len(result.Attempts),
		})
		return res, nil
	}

	res.Phrases = research.ParsePhrases(result.Text, SuggestedPhraseLimit)
	for _, l := range research.BuildLinks(res.Phrases, domain, yearFilter) {
		res.Links = append(res.Links, dto.ResearchLink{Phrase: l.Phrase, URL: l.URL})
	}

	s.logger.Info("RESEARCH", "Keywords suggested", map[string]interface{}{
		"username": session.Username,
		"phrases":  len(res.Phrases),
		"source":   res.Source,
	})
	return res, nil
}
