package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction line is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// IsValid reports whether t is DEBIT or CREDIT.
func (t TransactionType) IsValid() bool {
	return t == Debit || t == Credit
}

// Opposite returns the other side of the entry.
func (t TransactionType) Opposite() TransactionType {
	if t == Debit {
		return Credit
	}
	return Debit
}

// Transaction represents a single leg within a Journal, affecting one account.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	JournalID       string          `json:"journalID"`
	AccountID       string          `json:"accountID"`
	Amount          decimal.Decimal `json:"amount"` // strictly positive
	TransactionType TransactionType `json:"transactionType"`
	CurrencyCode    string          `json:"currencyCode"` // must match Journal currency
	Notes           string          `json:"notes"`
	AuditFields

	// Populated on reads that join the parent journal.
	JournalDate        time.Time     `json:"journalDate,omitempty"`
	JournalDescription string        `json:"journalDescription,omitempty"`
	JournalStatus      JournalStatus `json:"journalStatus,omitempty"`
}
