package entity

import (
	"strings"
	"time"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	// ModelAuto lets the dispatcher pick the model from the facts length.
	ModelAuto = "auto"

	// HistoryDisplayLimit is how many history entries are listed to the user.
	HistoryDisplayLimit = 10
)

func (r UserRole) IsPrivileged() bool {
	return r == UserRoleAdmin
}

type DraftHistoryEntry struct {
	Label     string    `json:"label"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// VerifiedJudgment is a user-entered judgment the drafter is allowed to cite.
type VerifiedJudgment struct {
	Title    string `json:"title"`
	Citation string `json:"citation"`
	Extract  string `json:"extract"`
}

// Session is the whole state of one signed-in user. Services load a copy,
// apply one action and save it back.
type Session struct {
	Id               string              `json:"id"`
	Username         string              `json:"username"`
	Authenticated    bool                `json:"authenticated"`
	Role             UserRole            `json:"role"`
	CurrentDraft     string              `json:"current_draft"`
	DraftHistory     []DraftHistoryEntry `json:"draft_history"`
	FactsText        string              `json:"facts_text"`
	SelectedModel    string              `json:"selected_model"`
	Judgments        []VerifiedJudgment  `json:"judgments"`
	LastPetitionType string              `json:"last_petition_type"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func NewSession(id, username string, role UserRole, now time.Time) *Session {
	return &Session{
		Id:            id,
		Username:      username,
		Authenticated: true,
		Role:          role,
		SelectedModel: ModelAuto,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (s *Session) HasDraft() bool {
	return s.CurrentDraft != ""
}

// Clone returns a deep copy so repositories never hand out shared slices.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.DraftHistory = append([]DraftHistoryEntry(nil), s.DraftHistory...)
	c.Judgments = append([]VerifiedJudgment(nil), s.Judgments...)
	return &c
}

// AcceptDraft makes content the current draft and records it at the head of
// the history.
func (s *Session) AcceptDraft(label, content string, now time.Time) {
	s.CurrentDraft = content
	s.DraftHistory = append([]DraftHistoryEntry{{
		Label:     label,
		Content:   content,
		CreatedAt: now,
	}}, s.DraftHistory...)
	s.UpdatedAt = now
}

// RecentHistory returns at most HistoryDisplayLimit entries, newest first.
func (s *Session) RecentHistory() []DraftHistoryEntry {
	if len(s.DraftHistory) <= HistoryDisplayLimit {
		return s.DraftHistory
	}
	return s.DraftHistory[:HistoryDisplayLimit]
}

// ReplaceAll swaps every literal occurrence of old for new in the current
// draft. It reports false and changes nothing when either argument is empty
// or no draft exists.
func (s *Session) ReplaceAll(old, new string, now time.Time) bool {
	if old == "" || new == "" || !s.HasDraft() {
		return false
	}
	s.CurrentDraft = strings.ReplaceAll(s.CurrentDraft, old, new)
	s.UpdatedAt = now
	return true
}

// Reset drops everything except the authentication fields.
func (s *Session) Reset(now time.Time) {
	*s = Session{
		Id:            s.Id,
		Username:      s.Username,
		Authenticated: s.Authenticated,
		Role:          s.Role,
		SelectedModel: ModelAuto,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     now,
	}
}
