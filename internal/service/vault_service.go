package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"legal-drafting-be/internal/constant"
	"legal-drafting-be/internal/dto"
	"legal-drafting-be/internal/pkg/logger"
	"legal-drafting-be/internal/repository/contract"
	"legal-drafting-be/pkg/document"
)

type IVaultService interface {
	List(ctx context.Context) (*dto.VaultListResponse, error)
	Upload(ctx context.Context, name string, content io.Reader, size int64) (*dto.VaultUploadResponse, error)
	StyleReference(ctx context.Context, name string) (string, error)
}

type vaultService struct {
	repo   contract.VaultRepository
	logger logger.ILogger
}

func NewVaultService(repo contract.VaultRepository, logger logger.ILogger) IVaultService {
	return &vaultService{repo: repo, logger: logger}
}

func (s *vaultService) List(ctx context.Context) (*dto.VaultListResponse, error) {
	names, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.VaultListResponse{Files: names}, nil
}

// Upload keeps only the base name of what the client sent. An existing file
// with the same name is replaced.
func (s *vaultService) Upload(ctx context.Context, name string, content io.Reader, size int64) (*dto.VaultUploadResponse, error) {
	name = filepath.Base(name)
	if !strings.EqualFold(filepath.Ext(name), ".docx") {
		return nil, ErrUnsupportedFile
	}
	if err := s.repo.Save(ctx, name, content); err != nil {
		return nil, err
	}

	s.logger.Info("VAULT", "Reference stored", map[string]interface{}{"name": name, "size": size})
	return &dto.VaultUploadResponse{Name: name, Size: size}, nil
}

// StyleReference returns the opening paragraphs of a stored reference.
func (s *vaultService) StyleReference(ctx context.Context, name string) (string, error) {
	f, err := s.repo.Open(ctx, name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	text, err := document.ReadParagraphs(f, f.Size(), constant.StyleReferenceParagraphs)
	if err != nil {
		s.logger.Warn("VAULT", "Reference unreadable", map[string]interface{}{"name": name, "error": err.Error()})
		return "", fmt.Errorf("%w: %s", ErrUnreadableFile, name)
	}
	return text, nil
}
