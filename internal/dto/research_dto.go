package dto

type ResearchLink struct {
	Phrase string `json:"phrase"`
	URL    string `json:"url"`
}

type QuickLinkResponse struct {
	URL string `json:"url"`
}

type SuggestResearchRequest struct {
	PetitionType string `json:"petition_type" validate:"required"`
	Facts        string `json:"facts"`
	Domain       string `json:"domain"`
	YearFrom     int    `json:"year_from" validate:"omitempty,min=1900,max=2100"`
	YearTo       int    `json:"year_to" validate:"omitempty,min=1900,max=2100"`
}

type SuggestResearchResponse struct {
	QuickLink  string         `json:"quick_link"`
	Phrases    []string       `json:"phrases"`
	Links      []ResearchLink `json:"links"`
	YearFilter string         `json:"year_filter,omitempty"`
	Source     string         `json:"source"`
}
