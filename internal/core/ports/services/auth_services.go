package services

import (
	"context"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/SscSPs/fiscal_balance/internal/utils"
)

// TokenSvcFacade defines the interface for access token management.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed JWT for the user and returns its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAccessToken verifies a token string and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*utils.Claims, error)
}
