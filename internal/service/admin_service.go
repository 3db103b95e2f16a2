package service

import (
	"context"
	"math"
	"strings"

	"legal-drafting-be/internal/dto"
	"legal-drafting-be/internal/pkg/logger"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = 500
)

type IAdminService interface {
	GetSystemLogs(ctx context.Context, page, limit int, level string) ([]*dto.SystemLogResponse, error)
}

type adminService struct {
	logger logger.ILogger
}

func NewAdminService(logger logger.ILogger) IAdminService {
	return &adminService{logger: logger}
}

// GetSystemLogs pages through the structured log file, newest first.
func (s *adminService) GetSystemLogs(ctx context.Context, page, limit int, level string) ([]*dto.SystemLogResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLogLimit
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}

	// a page this far out is past any file we could hold
	if page-1 > math.MaxInt/limit {
		return []*dto.SystemLogResponse{}, nil
	}

	logs, err := s.logger.GetLogs(strings.ToUpper(level), limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SystemLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, &dto.SystemLogResponse{
			Id:        l.Id,
			Timestamp: l.Timestamp,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			Details:   l.Details,
		})
	}
	return res, nil
}
