package dto

type CourtOptionResponse struct {
	Name          string   `json:"name"`
	PetitionTypes []string `json:"petition_types"`
}

type MetaResponse struct {
	Courts                []CourtOptionResponse `json:"courts"`
	DistSessionsCaseTypes map[string][]string   `json:"dist_sessions_case_types"`
	Districts             []string              `json:"districts"`
	Models                []string              `json:"models"`
	HighCourtSeat         string                `json:"high_court_seat"`
}
