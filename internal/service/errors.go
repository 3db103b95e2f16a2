package service

import (
	"errors"
	"fmt"
	"strings"

	"legal-drafting-be/internal/dto"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoDraft            = errors.New("no draft yet")
	ErrInvalidSelection   = errors.New("invalid court selection")
	ErrUnknownModel       = errors.New("unknown model")
	ErrHistoryIndex       = errors.New("history entry not found")
	ErrInvalidYearRange   = errors.New("year_from must not be after year_to")
	ErrUnsupportedFile    = errors.New("only .docx reference files are accepted")
	ErrUnreadableFile     = errors.New("reference file could not be read as .docx")
	ErrGenerationOffline  = errors.New("generation offline")
	ErrEmptyDraft         = errors.New("model returned an empty draft")
	ErrCitationBlocked    = errors.New("draft cites case law but no verified judgment was supplied")
)

// OfflineError reports that every credential failed.
type OfflineError struct {
	Failures []dto.AttemptResponse
}

func (e *OfflineError) Error() string {
	labels := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		labels[i] = fmt.Sprintf("%s=%s", f.Label, f.Cause)
	}
	return fmt.Sprintf("%v [%s]", ErrGenerationOffline, strings.Join(labels, ", "))
}

func (e *OfflineError) Unwrap() error {
	return ErrGenerationOffline
}

// BlockedError reports a draft rejected by the citation guard.
type BlockedError struct {
	Citations []string
	Source    string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("%v: %s", ErrCitationBlocked, strings.Join(e.Citations, "; "))
}

func (e *BlockedError) Unwrap() error {
	return ErrCitationBlocked
}
