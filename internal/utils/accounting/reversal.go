package accounting

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/apperrors"
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/google/uuid"
)

// ReversalDescriptionPrefix prefixes the description of generated reversals.
const ReversalDescriptionPrefix = "Reversal of Journal: "

// ReversalParams controls how a reversal journal is built.
type ReversalParams struct {
	JournalID   string        // id of the new journal; generated when empty
	Date        time.Time     // reversal date; today when zero
	Description string        // defaults to ReversalDescriptionPrefix + original description
	UserID      string        // audit user
	Now         time.Time     // audit time; time.Now when zero
	NewID       func() string // leg id generator; uuid when nil
}

// BuildReversal produces the journal that exactly inverts original: every leg
// keeps its account, amount and currency and flips DEBIT/CREDIT. The new
// journal points back at the original through OriginalJournalID. original is
// not modified; the caller records original.ReversingJournalID in the same
// storage transaction that saves the reversal.
func BuildReversal(original domain.Journal, legs []domain.Transaction, p ReversalParams) (domain.Journal, []domain.Transaction, error) {
	if original.IsReversed() {
		return domain.Journal{}, nil, fmt.Errorf("%w: journal %s is reversed by %s",
			apperrors.ErrAlreadyReversed, original.JournalID, *original.ReversingJournalID)
	}
	if original.IsReversal() {
		return domain.Journal{}, nil, fmt.Errorf("%w: journal %s reverses %s",
			apperrors.ErrCannotReverseReversal, original.JournalID, *original.OriginalJournalID)
	}
	if !original.Status.IsCommitted() {
		return domain.Journal{}, nil, fmt.Errorf("%w: journal status is %s, expected %s",
			apperrors.ErrConflict, original.Status, domain.Posted)
	}

	newID := p.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	journalID := p.JournalID
	if journalID == "" {
		journalID = newID()
	}
	now := p.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	date := p.Date
	if date.IsZero() {
		date = now
	}
	description := strings.TrimSpace(p.Description)
	if description == "" {
		description = ReversalDescriptionPrefix + original.Description
	}

	originalID := original.JournalID
	reversal := domain.Journal{
		JournalID:         journalID,
		WorkplaceID:       original.WorkplaceID,
		JournalDate:       TruncateToDate(date),
		Description:       description,
		CurrencyCode:      original.CurrencyCode,
		Status:            domain.Posted,
		OriginalJournalID: &originalID,
		AuditFields:       domain.NewAuditFields(p.UserID, now),
	}

	reversed := make([]domain.Transaction, len(legs))
	for i, leg := range legs {
		reversed[i] = domain.Transaction{
			TransactionID:   newID(),
			JournalID:       journalID,
			AccountID:       leg.AccountID,
			Amount:          leg.Amount,
			TransactionType: leg.TransactionType.Opposite(),
			CurrencyCode:    leg.CurrencyCode,
			Notes:           leg.Notes,
			AuditFields:     domain.NewAuditFields(p.UserID, now),
		}
	}
	reversal.Amount, _ = JournalTotals(reversed)

	return reversal, reversed, nil
}

// ValidateReversalLinks checks that original and reversal reference each
// other. Both links must be present and point at the other record.
func ValidateReversalLinks(original, reversal domain.Journal) error {
	if reversal.OriginalJournalID == nil || *reversal.OriginalJournalID != original.JournalID {
		return fmt.Errorf("%w: journal %s does not reference original %s",
			apperrors.ErrInternal, reversal.JournalID, original.JournalID)
	}
	if original.ReversingJournalID == nil || *original.ReversingJournalID != reversal.JournalID {
		return fmt.Errorf("%w: journal %s does not reference reversal %s",
			apperrors.ErrInternal, original.JournalID, reversal.JournalID)
	}
	if original.WorkplaceID != reversal.WorkplaceID {
		return fmt.Errorf("%w: reversal %s belongs to a different workplace than %s",
			apperrors.ErrInternal, reversal.JournalID, original.JournalID)
	}
	return nil
}
