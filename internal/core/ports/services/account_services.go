package services

import (
	"context"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/SscSPs/fiscal_balance/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account of a workplace.
	GetAccountByID(ctx context.Context, workplaceID string, accountID string, userID string) (*domain.Account, error)

	// GetAccountWithBalance retrieves an account together with its current raw balance.
	GetAccountWithBalance(ctx context.Context, workplaceID string, accountID string, userID string) (*dto.AccountWithBalance, error)

	// ListAccounts retrieves a paginated list of accounts with their balances.
	ListAccounts(ctx context.Context, workplaceID string, userID string, params dto.ListAccountsParams) ([]dto.AccountWithBalance, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, workplaceID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's name, description or active flag.
	UpdateAccount(ctx context.Context, workplaceID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
}

// AccountCalculatorSvc defines calculation operations for account data
type AccountCalculatorSvc interface {
	// CalculateAccountBalance returns the balance of an account as of a date.
	// A zero asOf means all committed journals.
	CalculateAccountBalance(ctx context.Context, workplaceID string, accountID string, userID string, asOf time.Time) (*dto.AccountBalanceResponse, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountCalculatorSvc
}
