package services

import (
	"context"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance generates a trial balance report as of a specific date.
	// A zero asOf means today.
	TrialBalance(ctx context.Context, workplaceID string, asOf time.Time, userID string) (*domain.TrialBalanceReport, error)
}
