package services

import (
	"context"

	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/SscSPs/fiscal_balance/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)
}

// StaticDataService loads reference data at start-up.
type StaticDataService interface {
	// SeedCurrencies inserts the currencies listed in a YAML file that do not
	// exist yet and returns how many were added.
	SeedCurrencies(ctx context.Context, path string) (int, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
	StaticDataService
}
