package dto

import "time"

type SetModelRequest struct {
	Model string `json:"model" validate:"required"`
}

type HistoryItemResponse struct {
	Index     int       `json:"index"`
	Label     string    `json:"label"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type JudgmentResponse struct {
	Title    string `json:"title"`
	Citation string `json:"citation"`
	Extract  string `json:"extract"`
}

type SessionStateResponse struct {
	Username         string                `json:"username"`
	Role             string                `json:"role"`
	CurrentDraft     string                `json:"current_draft"`
	HasDraft         bool                  `json:"has_draft"`
	FactsText        string                `json:"facts_text"`
	SelectedModel    string                `json:"selected_model"`
	LastPetitionType string                `json:"last_petition_type"`
	History          []HistoryItemResponse `json:"history"`
	Judgments        []JudgmentResponse    `json:"judgments"`
}

type AddJudgmentRequest struct {
	Title    string `json:"title" validate:"required,max=500"`
	Citation string `json:"citation" validate:"required,max=200"`
	Extract  string `json:"extract" validate:"max=20000"`
}
