package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/SscSPs/fiscal_balance/internal/utils/pagination"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalByID retrieves a journal of the given workplace, without legs.
	FindJournalByID(ctx context.Context, workplaceID, journalID string) (*domain.Journal, error)

	// ListJournalsByWorkplace retrieves up to limit journals ordered newest first,
	// starting after the cursor when one is given. Reversal journals are
	// skipped unless includeReversals is set.
	ListJournalsByWorkplace(ctx context.Context, workplaceID string, limit int, after *pagination.Cursor, includeReversals bool) ([]domain.Journal, error)
}

// JournalWriter defines write operations for journal data. Each method is
// atomic: either every row it touches is written or none is.
type JournalWriter interface {
	// SaveJournal persists a journal and its transactions.
	SaveJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error

	// ReplaceDraftJournal overwrites the header and legs of a DRAFT journal.
	// It returns apperrors.ErrConflict when the stored journal is no longer a draft.
	ReplaceDraftJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error

	// PostJournal moves a DRAFT journal to POSTED.
	// It returns apperrors.ErrConflict when the stored journal is no longer a draft.
	PostJournal(ctx context.Context, workplaceID, journalID, userID string, now time.Time) error

	// SaveReversal inserts the reversal journal and its legs and marks the
	// original REVERSED with its reversing link, in one transaction. A
	// concurrent reversal of the same original yields
	// apperrors.ErrConcurrencyConflict.
	SaveReversal(ctx context.Context, originalJournalID string, reversal domain.Journal, transactions []domain.Transaction) error
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionsByJournalID retrieves all transactions associated with a single journal ID.
	FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error)

	// FindTransactionsByJournalIDs retrieves transactions for multiple journal IDs, grouped by journal ID.
	FindTransactionsByJournalIDs(ctx context.Context, journalIDs []string) (map[string][]domain.Transaction, error)

	// ListTransactionsByAccountID retrieves up to limit legs of an account,
	// joined with their journal, ordered newest first after the cursor.
	ListTransactionsByAccountID(ctx context.Context, workplaceID, accountID string, limit int, after *pagination.Cursor) ([]domain.Transaction, error)
}

// LedgerReader feeds the balance aggregator.
type LedgerReader interface {
	// ListLedgerEntries returns the legs of committed journals dated on or
	// before asOf (no cutoff when asOf is zero). An empty accountID returns
	// entries of every account in the workplace.
	ListLedgerEntries(ctx context.Context, workplaceID, accountID string, asOf time.Time) ([]domain.LedgerEntry, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
// This is a facade for clients that need access to all operations
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	TransactionReader
	LedgerReader
}
