package dto

type GenerateDraftRequest struct {
	Court        string `json:"court" validate:"required"`
	Category     string `json:"category"` // Civil / Criminal, district and sessions court only
	PetitionType string `json:"petition_type" validate:"required"`
	District     string `json:"district"`
	Facts        string `json:"facts"`
	Model        string `json:"model"` // empty means the session's selection
}

type MirrorStyleRequest struct {
	Reference    string `json:"reference" validate:"required"`
	PetitionType string `json:"petition_type" validate:"required"`
	Court        string `json:"court"`
	Category     string `json:"category"` // Civil / Criminal, district and sessions court only
	District     string `json:"district"`
	Facts        string `json:"facts"` // empty means the session's facts
	Model        string `json:"model"`
}

type AttemptResponse struct {
	Label string `json:"label"`
	Cause string `json:"cause"`
}

type DraftResponse struct {
	Draft          string            `json:"draft"`
	Label          string            `json:"label"`
	Source         string            `json:"source"`
	Model          string            `json:"model"`
	ElapsedSeconds float64           `json:"elapsed_seconds"`
	Failures       []AttemptResponse `json:"failures,omitempty"`
}

// BlockedDraftResponse carries the citation-shaped strings that stopped a
// draft. The draft text itself is not returned.
type BlockedDraftResponse struct {
	Citations []string `json:"citations"`
	Source    string   `json:"source"`
}

type OfflineDraftResponse struct {
	Source   string            `json:"source"`
	Failures []AttemptResponse `json:"failures"`
}
