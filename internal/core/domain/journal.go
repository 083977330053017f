package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft    JournalStatus = "DRAFT"
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// IsCommitted reports whether journals in this status count towards balances.
// A reversed journal stays committed; its reversal cancels it.
func (s JournalStatus) IsCommitted() bool {
	return s == Posted || s == Reversed
}

// Journal represents a single, balanced financial event composed of multiple transactions.
type Journal struct {
	JournalID          string          `json:"journalID"`
	WorkplaceID        string          `json:"workplaceID"`
	JournalDate        time.Time       `json:"journalDate"`
	Description        string          `json:"description"`
	CurrencyCode       string          `json:"currencyCode"`
	Status             JournalStatus   `json:"status"`
	OriginalJournalID  *string         `json:"originalJournalID,omitempty"`  // set when this journal is a reversal
	ReversingJournalID *string         `json:"reversingJournalID,omitempty"` // set when this journal has been reversed
	Amount             decimal.Decimal `json:"amount"`                       // total of the debit side
	AuditFields
	Transactions []Transaction `json:"transactions,omitempty"`
}

// IsReversal reports whether the journal was generated by reversing another journal.
func (j Journal) IsReversal() bool {
	return j.OriginalJournalID != nil
}

// IsReversed reports whether another journal already reverses this one.
func (j Journal) IsReversed() bool {
	return j.ReversingJournalID != nil
}
