package dto

import (
	"time"

	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/SscSPs/fiscal_balance/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name         string             `json:"name" binding:"required,max=255"`
	AccountType  domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	CurrencyCode string             `json:"currencyCode" binding:"required,currency_code"`
	Description  string             `json:"description" binding:"max=1024"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// AccountType and CurrencyCode are only present so that attempts to change
// them can be rejected; both are fixed at creation.
type UpdateAccountRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description  *string `json:"description" binding:"omitempty,max=1024"`
	IsActive     *bool   `json:"isActive"`
	AccountType  *string `json:"accountType,omitempty" swaggerignore:"true"`
	CurrencyCode *string `json:"currencyCode,omitempty" swaggerignore:"true"`
}

// AccountResponse defines the data returned for an account.
// Balance is sign-adjusted for the account type; RawBalance is debits minus credits.
type AccountResponse struct {
	AccountID     string                  `json:"accountID"`
	WorkplaceID   string                  `json:"workplaceID"`
	Name          string                  `json:"name"`
	AccountType   domain.AccountType      `json:"accountType"`
	CurrencyCode  string                  `json:"currencyCode"`
	Description   string                  `json:"description"`
	IsActive      bool                    `json:"isActive"`
	Balance       decimal.Decimal         `json:"balance"`
	RawBalance    decimal.Decimal         `json:"rawBalance"`
	BalanceSign   int                     `json:"balanceSign"`
	BalanceClass  accounting.BalanceClass `json:"balanceClass"`
	CreatedAt     time.Time               `json:"createdAt"`
	CreatedBy     string                  `json:"createdBy"`
	LastUpdatedAt time.Time               `json:"lastUpdatedAt"`
	LastUpdatedBy string                  `json:"lastUpdatedBy"`
}

// AccountWithBalance pairs an account with its raw ledger balance.
type AccountWithBalance struct {
	Account    domain.Account
	RawBalance decimal.Decimal
}

// ToAccountResponse converts an account and its raw balance to the response DTO.
func ToAccountResponse(acc AccountWithBalance) AccountResponse {
	res := AccountResponse{
		AccountID:     acc.Account.AccountID,
		WorkplaceID:   acc.Account.WorkplaceID,
		Name:          acc.Account.Name,
		AccountType:   acc.Account.AccountType,
		CurrencyCode:  acc.Account.CurrencyCode,
		Description:   acc.Account.Description,
		IsActive:      acc.Account.IsActive,
		RawBalance:    acc.RawBalance,
		CreatedAt:     acc.Account.CreatedAt,
		CreatedBy:     acc.Account.CreatedBy,
		LastUpdatedAt: acc.Account.LastUpdatedAt,
		LastUpdatedBy: acc.Account.LastUpdatedBy,
	}
	if display, err := accounting.DisplayBalance(acc.Account.AccountType, acc.RawBalance); err == nil {
		res.Balance = display.Amount
		res.BalanceSign = display.Sign
		res.BalanceClass = display.Class
	}
	return res
}

// ToListAccountResponse converts accounts with balances to response DTOs.
func ToListAccountResponse(accounts []AccountWithBalance) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(acc)
	}
	return res
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID    string                  `json:"accountID"`
	AccountType  domain.AccountType      `json:"accountType"`
	CurrencyCode string                  `json:"currencyCode"`
	AsOf         *string                 `json:"asOf,omitempty"`
	RawBalance   decimal.Decimal         `json:"rawBalance"`
	Balance      decimal.Decimal         `json:"balance"`
	Formatted    string                  `json:"formatted"`
	Sign         int                     `json:"sign"`
	Class        accounting.BalanceClass `json:"class"`
}

// AccountBalanceParams are the query parameters of the balance endpoint.
type AccountBalanceParams struct {
	AsOf string `form:"asOf"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=50" binding:"min=0,max=500"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
