// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"crypto/subtle"
	"slices"
	"strings"
	"time"

	"legal-drafting-be/internal/config"
	"legal-drafting-be/internal/dto"
	"legal-drafting-be/internal/entity"
	"legal-drafting-be/internal/pkg/logger"
	"legal-drafting-be/internal/pkg/serverutils"
	"legal-drafting-be/internal/repository/contract"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionId string) error
}

type authService struct {
	cfg      config.AuthConfig
	sessions contract.SessionRepository
	logger   logger.ILogger
	now      func() time.Time
}

func NewAuthService(cfg config.AuthConfig, sessions contract.SessionRepository, logger logger.ILogger) IAuthService {
	return &authService{
		cfg:      cfg,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	stored, ok := s.cfg.Users[req.Username]
	if !ok || !passwordMatches(stored, req.Password) {
		s.logger.Warn("AUTH", "Login rejected", map[string]interface{}{"username": req.Username})
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	role := s.roleFor(req.Username)
	session := entity.NewSession(uuid.New().String(), req.Username, role, now)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	token, err := serverutils.IssueToken(s.cfg.JWTSecret, serverutils.SessionClaims{
		SessionId: session.Id,
		Username:  session.Username,
		Role:      string(role),
	}, s.cfg.TokenExpiry, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info("AUTH", "Login successful", map[string]interface{}{
		"username": req.Username,
		"role":     role,
	})

	return &dto.LoginResponse{
		Token:     token,
		Username:  session.Username,
		Role:      string(role),
		ExpiresIn: int64(s.cfg.TokenExpiry.Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionId string) error {
	if err := s.sessions.Delete(ctx, sessionId); err != nil {
		return err
	}
	s.logger.Info("AUTH", "Logout", map[string]interface{}{"session_id": sessionId})
	return nil
}

func (s *authService) roleFor(username string) entity.UserRole {
	if strings.EqualFold(username, "admin") || slices.Contains(s.cfg.AdminUsers, username) {
		return entity.UserRoleAdmin
	}
	return entity.UserRoleUser
}

// passwordMatches accepts a bcrypt hash or a plain value from configuration.
func passwordMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
