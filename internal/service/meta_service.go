package service

import (
	"legal-drafting-be/internal/constant"
	"legal-drafting-be/internal/dto"
	"legal-drafting-be/internal/entity"
)

type IMetaService interface {
	Courts() *dto.MetaResponse
}

type metaService struct {
	models []string
}

// NewMetaService takes the selectable model ids; "auto" is always offered first.
func NewMetaService(allowedModels []string) IMetaService {
	return &metaService{models: append([]string{entity.ModelAuto}, allowedModels...)}
}

func (s *metaService) Courts() *dto.MetaResponse {
	names := constant.CourtNames()
	courts := make([]dto.CourtOptionResponse, 0, len(names))
	for _, name := range names {
		// the district and sessions court lists its types by category instead
		types, ok := constant.PetitionTypesFor(name, "")
		if !ok {
			types = []string{}
		}
		courts = append(courts, dto.CourtOptionResponse{Name: name, PetitionTypes: types})
	}
	return &dto.MetaResponse{
		Courts:                courts,
		DistSessionsCaseTypes: constant.DistSessionsCaseTypes,
		Districts:             constant.Districts,
		Models:                s.models,
		HighCourtSeat:         constant.HighCourtSeat,
	}
}
