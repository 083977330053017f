package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report.
// Exactly one of Debit and Credit is non-zero unless the account nets to zero.
type TrialBalanceRow struct {
	AccountID    string          `json:"accountID"`
	AccountName  string          `json:"accountName"`
	AccountType  AccountType     `json:"accountType"`
	CurrencyCode string          `json:"currencyCode"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
}

// TrialBalanceReport groups the rows with per-currency column totals.
type TrialBalanceReport struct {
	WorkplaceID  string                     `json:"workplaceID"`
	AsOf         time.Time                  `json:"asOf"`
	Rows         []TrialBalanceRow          `json:"rows"`
	TotalDebits  map[string]decimal.Decimal `json:"totalDebits"`
	TotalCredits map[string]decimal.Decimal `json:"totalCredits"`
}

// LedgerEntry is a leg together with the journal attributes the balance fold needs.
type LedgerEntry struct {
	AccountID       string
	Amount          decimal.Decimal
	TransactionType TransactionType
	JournalDate     time.Time
	JournalStatus   JournalStatus
}

// EntryFromTransaction builds a LedgerEntry from a leg and its parent journal.
func EntryFromTransaction(txn Transaction, journal Journal) LedgerEntry {
	return LedgerEntry{
		AccountID:       txn.AccountID,
		Amount:          txn.Amount,
		TransactionType: txn.TransactionType,
		JournalDate:     journal.JournalDate,
		JournalStatus:   journal.Status,
	}
}
