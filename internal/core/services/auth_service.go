package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	portssvc "github.com/SscSPs/fiscal_balance/internal/core/ports/services"
	"github.com/SscSPs/fiscal_balance/internal/platform/config"
	"github.com/SscSPs/fiscal_balance/internal/utils"
)

// tokenService issues and verifies the HS256 access tokens used by the API.
type tokenService struct {
	BaseService
	cfg *config.Config
	now func() time.Time
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg: cfg,
		now: time.Now,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	now := s.now()
	expiryTime := now.Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, user.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token",
			slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// ValidateAccessToken verifies signature, issuer and time claims. jwt sentinel
// errors such as jwt.ErrTokenExpired are preserved in the chain.
func (s *tokenService) ValidateAccessToken(ctx context.Context, token string) (*utils.Claims, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret, s.cfg.JWTIssuer)
	if err != nil {
		s.LogDebug(ctx, "Access token rejected", slog.String("error", err.Error()))
		return nil, err
	}
	return claims, nil
}
