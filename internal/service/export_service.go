package service

import (
	"context"
	"strings"

	"legal-drafting-be/internal/pkg/logger"
	"legal-drafting-be/internal/repository/contract"
	"legal-drafting-be/pkg/document"
)

const (
	ContentTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypePDF  = "application/pdf"
)

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type IExportService interface {
	Docx(ctx context.Context, sessionId string) (*ExportFile, error)
	PDF(ctx context.Context, sessionId string) (*ExportFile, error)
}

type exportService struct {
	store  sessionStore
	logger logger.ILogger
}

func NewExportService(sessions contract.SessionRepository, logger logger.ILogger) IExportService {
	return &exportService{store: sessionStore{repo: sessions}, logger: logger}
}

func (s *exportService) Docx(ctx context.Context, sessionId string) (*ExportFile, error) {
	return s.export(ctx, sessionId, ".docx", ContentTypeDocx, document.WriteDocx)
}

func (s *exportService) PDF(ctx context.Context, sessionId string) (*ExportFile, error) {
	return s.export(ctx, sessionId, ".pdf", ContentTypePDF, document.WritePDF)
}

func (s *exportService) export(ctx context.Context, sessionId, ext, contentType string, render func(string) ([]byte, error)) (*ExportFile, error) {
	session, err := s.store.load(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if !session.HasDraft() {
		return nil, ErrNoDraft
	}

	data, err := render(session.CurrentDraft)
	if err != nil {
		s.logger.Error("EXPORT", "Render failed", map[string]interface{}{"format": ext, "error": err})
		return nil, err
	}

	filename := exportName(session.LastPetitionType) + ext
	s.logger.Info("EXPORT", "Draft exported", map[string]interface{}{"username": session.Username, "file": filename})
	return &ExportFile{Filename: filename, ContentType: contentType, Data: data}, nil
}

// exportName turns a petition type into a file name stem.
func exportName(petitionType string) string {
	name := strings.TrimSpace(strings.NewReplacer("/", "-", "\\", "-").Replace(petitionType))
	if name == "" {
		return "draft"
	}
	return name
}
