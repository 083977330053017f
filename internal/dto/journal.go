package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/SscSPs/fiscal_balance/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is one leg of a journal request. Amount accepts a
// JSON number or a decimal string.
type CreateTransactionRequest struct {
	AccountID       string                 `json:"accountID"`
	Amount          decimal.Decimal        `json:"amount" swaggertype:"string" example:"100.00"`
	TransactionType domain.TransactionType `json:"transactionType" enums:"DEBIT,CREDIT"`
	CurrencyCode    string                 `json:"currencyCode,omitempty"`
	Notes           string                 `json:"notes,omitempty" binding:"max=1024"`
}

// CreateJournalRequest defines the data needed to create a journal with its legs.
// Structural rules are enforced by the journal validator rather than binding
// tags, so failures carry the rule and leg index.
type CreateJournalRequest struct {
	Date         string                     `json:"date" example:"2024-03-01"`
	Description  string                     `json:"description" binding:"max=1024"`
	CurrencyCode string                     `json:"currencyCode" example:"USD"`
	Status       domain.JournalStatus       `json:"status,omitempty" enums:"DRAFT,POSTED"`
	Transactions []CreateTransactionRequest `json:"transactions"`
}

// UpdateJournalRequest replaces the header and legs of a draft journal.
type UpdateJournalRequest struct {
	Date         string                     `json:"date" example:"2024-03-01"`
	Description  string                     `json:"description" binding:"max=1024"`
	CurrencyCode string                     `json:"currencyCode" example:"USD"`
	Transactions []CreateTransactionRequest `json:"transactions"`
}

// ReverseJournalRequest optionally overrides the reversal date and description.
type ReverseJournalRequest struct {
	Date        *string `json:"date,omitempty" example:"2024-04-01"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1024"`
}

// ToJournalCandidate converts the request into the validator's input.
func (r CreateJournalRequest) ToJournalCandidate() accounting.JournalCandidate {
	return toCandidate(r.Date, r.CurrencyCode, r.Description, r.Transactions)
}

// ToJournalCandidate converts the request into the validator's input.
func (r UpdateJournalRequest) ToJournalCandidate() accounting.JournalCandidate {
	return toCandidate(r.Date, r.CurrencyCode, r.Description, r.Transactions)
}

func toCandidate(date, currencyCode, description string, legs []CreateTransactionRequest) accounting.JournalCandidate {
	c := accounting.JournalCandidate{
		Date:         date,
		CurrencyCode: strings.ToUpper(strings.TrimSpace(currencyCode)),
		Description:  strings.TrimSpace(description),
		Legs:         make([]accounting.LegCandidate, len(legs)),
	}
	for i, l := range legs {
		c.Legs[i] = accounting.LegCandidate{
			AccountID:       strings.TrimSpace(l.AccountID),
			Amount:          l.Amount,
			TransactionType: domain.TransactionType(strings.ToUpper(string(l.TransactionType))),
			CurrencyCode:    strings.ToUpper(strings.TrimSpace(l.CurrencyCode)),
			Notes:           l.Notes,
		}
	}
	return c
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID      string                 `json:"transactionID"`
	JournalID          string                 `json:"journalID"`
	AccountID          string                 `json:"accountID"`
	Amount             decimal.Decimal        `json:"amount"`
	TransactionType    domain.TransactionType `json:"transactionType"`
	CurrencyCode       string                 `json:"currencyCode"`
	Notes              string                 `json:"notes,omitempty"`
	JournalDate        string                 `json:"journalDate,omitempty"`
	JournalDescription string                 `json:"journalDescription,omitempty"`
	JournalStatus      domain.JournalStatus   `json:"journalStatus,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`
	CreatedBy          string                 `json:"createdBy"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID          string                `json:"journalID"`
	WorkplaceID        string                `json:"workplaceID"`
	Date               string                `json:"date"`
	Description        string                `json:"description"`
	CurrencyCode       string                `json:"currencyCode"`
	Status             domain.JournalStatus  `json:"status"`
	Amount             decimal.Decimal       `json:"amount"`
	OriginalJournalID  *string               `json:"originalJournalID,omitempty"`
	ReversingJournalID *string               `json:"reversingJournalID,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	CreatedBy          string                `json:"createdBy"`
	LastUpdatedAt      time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy      string                `json:"lastUpdatedBy"`
	Transactions       []TransactionResponse `json:"transactions,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	res := TransactionResponse{
		TransactionID:      txn.TransactionID,
		JournalID:          txn.JournalID,
		AccountID:          txn.AccountID,
		Amount:             txn.Amount,
		TransactionType:    txn.TransactionType,
		CurrencyCode:       txn.CurrencyCode,
		Notes:              txn.Notes,
		JournalDescription: txn.JournalDescription,
		JournalStatus:      txn.JournalStatus,
		CreatedAt:          txn.CreatedAt,
		CreatedBy:          txn.CreatedBy,
	}
	if !txn.JournalDate.IsZero() {
		res.JournalDate = txn.JournalDate.Format(accounting.DateLayout)
	}
	return res
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(txn)
	}
	return responses
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j domain.Journal) JournalResponse {
	res := JournalResponse{
		JournalID:          j.JournalID,
		WorkplaceID:        j.WorkplaceID,
		Date:               j.JournalDate.Format(accounting.DateLayout),
		Description:        j.Description,
		CurrencyCode:       j.CurrencyCode,
		Status:             j.Status,
		Amount:             j.Amount,
		OriginalJournalID:  j.OriginalJournalID,
		ReversingJournalID: j.ReversingJournalID,
		CreatedAt:          j.CreatedAt,
		CreatedBy:          j.CreatedBy,
		LastUpdatedAt:      j.LastUpdatedAt,
		LastUpdatedBy:      j.LastUpdatedBy,
	}
	if len(j.Transactions) > 0 {
		res.Transactions = ToTransactionResponses(j.Transactions)
	}
	return res
}

// ListJournalsParams defines query parameters for listing journals.
type ListJournalsParams struct {
	Limit               int     `form:"limit" binding:"min=0,max=100"`
	NextToken           *string `form:"nextToken"`
	IncludeReversals    bool    `form:"includeReversals"`
	IncludeTransactions bool    `form:"includeTransactions"`
}

// ListJournalsResponse wraps a page of journals.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ListTransactionsParams defines query parameters for listing an account's transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit" binding:"min=0,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
