package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction line is a Debit or a Credit.
type TransactionType string

// Transaction is the row shape of the transactions table.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	JournalID       string          `db:"journal_id"`
	AccountID       string          `db:"account_id"`
	Amount          decimal.Decimal `db:"amount"` // Positive value
	TransactionType TransactionType `db:"transaction_type"`
	CurrencyCode    string          `db:"currency_code"`
	Notes           string          `db:"notes"` // Nullable
	AuditFields

	// Joined from journals.
	JournalDate        time.Time     `db:"journal_date"`
	JournalDescription string        `db:"journal_description"`
	JournalStatus      JournalStatus `db:"journal_status"`
}
