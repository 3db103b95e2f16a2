package dto

type FindReplaceRequest struct {
	Find    string `json:"find"`
	Replace string `json:"replace"`
}

type MapPartyRequest struct {
	Party string `json:"party" validate:"required,oneof=A B"`
	Name  string `json:"name"`
}

type SaveDraftRequest struct {
	Content string `json:"content" validate:"required"`
}

type EditorResponse struct {
	Draft   string `json:"draft"`
	Changed bool   `json:"changed"`
}
