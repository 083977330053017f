package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/apperrors"
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/SscSPs/fiscal_balance/internal/utils/accounting"
	"github.com/SscSPs/fiscal_balance/internal/utils/pagination"
)

// checkLegs enforces the foreign keys the transactions table declares.
// Callers hold s.mu.
func (s *Store) checkLegs(transactions []domain.Transaction) error {
	for _, txn := range transactions {
		if _, ok := s.accounts[txn.AccountID]; !ok {
			return fmt.Errorf("%w: transaction references a missing account or currency", apperrors.ErrValidation)
		}
		if _, ok := s.currencies[txn.CurrencyCode]; !ok {
			return fmt.Errorf("%w: transaction references a missing account or currency", apperrors.ErrValidation)
		}
	}
	return nil
}

func (s *Store) checkJournal(journal domain.Journal) error {
	if _, ok := s.journals[journal.JournalID]; ok {
		return fmt.Errorf("%w: journal %s already exists", apperrors.ErrDuplicate, journal.JournalID)
	}
	_, workplaceOK := s.workplaces[journal.WorkplaceID]
	_, currencyOK := s.currencies[journal.CurrencyCode]
	if !workplaceOK || !currencyOK {
		return fmt.Errorf("%w: journal %s references a missing workplace, currency or journal", apperrors.ErrValidation, journal.JournalID)
	}
	return nil
}

func copyLegs(transactions []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(transactions))
	copy(out, transactions)
	return out
}

// withJournal fills the joined journal fields of a stored leg.
func withJournal(txn domain.Transaction, j domain.Journal) domain.Transaction {
	txn.JournalDate = j.JournalDate
	txn.JournalDescription = j.Description
	txn.JournalStatus = j.Status
	return txn
}

func (s *Store) findJournal(workplaceID, journalID string) (domain.Journal, error) {
	j, ok := s.journals[journalID]
	if !ok || j.WorkplaceID != workplaceID {
		return domain.Journal{}, apperrors.NewNotFoundError("journal " + journalID + " not found")
	}
	return j, nil
}

func (s *Store) SaveJournal(_ context.Context, journal domain.Journal, transactions []domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkJournal(journal); err != nil {
		return err
	}
	if err := s.checkLegs(transactions); err != nil {
		return err
	}
	journal.Transactions = nil
	s.journals[journal.JournalID] = journal
	s.legs[journal.JournalID] = copyLegs(transactions)
	return nil
}

func (s *Store) ReplaceDraftJournal(_ context.Context, journal domain.Journal, transactions []domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.findJournal(journal.WorkplaceID, journal.JournalID)
	if err != nil {
		return err
	}
	if current.Status != domain.Draft {
		return fmt.Errorf("%w: journal %s is %s, only drafts can be edited", apperrors.ErrConflict, journal.JournalID, current.Status)
	}
	if err := s.checkLegs(transactions); err != nil {
		return err
	}
	current.JournalDate = journal.JournalDate
	current.Description = journal.Description
	current.CurrencyCode = journal.CurrencyCode
	current.Amount = journal.Amount
	current.LastUpdatedAt = journal.LastUpdatedAt
	current.LastUpdatedBy = journal.LastUpdatedBy
	s.journals[journal.JournalID] = current
	s.legs[journal.JournalID] = copyLegs(transactions)
	return nil
}

func (s *Store) PostJournal(_ context.Context, workplaceID, journalID, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.findJournal(workplaceID, journalID)
	if err != nil {
		return err
	}
	if current.Status != domain.Draft {
		return fmt.Errorf("%w: journal %s is already %s", apperrors.ErrConflict, journalID, current.Status)
	}
	current.Status = domain.Posted
	current.LastUpdatedAt = now
	current.LastUpdatedBy = userID
	s.journals[journalID] = current
	return nil
}

func (s *Store) SaveReversal(_ context.Context, originalJournalID string, reversal domain.Journal, transactions []domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	original, err := s.findJournal(reversal.WorkplaceID, originalJournalID)
	if err != nil {
		return err
	}
	if original.ReversingJournalID != nil {
		return fmt.Errorf("%w: journal %s was reversed by %s", apperrors.ErrConcurrencyConflict, originalJournalID, *original.ReversingJournalID)
	}
	for _, j := range s.journals {
		if j.OriginalJournalID != nil && *j.OriginalJournalID == originalJournalID {
			return fmt.Errorf("%w: journal %s already has a reversal", apperrors.ErrConcurrencyConflict, originalJournalID)
		}
	}
	if err := s.checkJournal(reversal); err != nil {
		return err
	}
	if err := s.checkLegs(transactions); err != nil {
		return err
	}

	reversingID := reversal.JournalID
	original.Status = domain.Reversed
	original.ReversingJournalID = &reversingID
	original.LastUpdatedAt = reversal.CreatedAt
	original.LastUpdatedBy = reversal.CreatedBy
	if err := accounting.ValidateReversalLinks(original, reversal); err != nil {
		return err
	}

	reversal.Transactions = nil
	s.journals[reversal.JournalID] = reversal
	s.legs[reversal.JournalID] = copyLegs(transactions)
	s.journals[originalJournalID] = original
	return nil
}

func (s *Store) FindJournalByID(_ context.Context, workplaceID, journalID string) (*domain.Journal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, err := s.findJournal(workplaceID, journalID)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func journalCursor(j domain.Journal) pagination.Cursor {
	return pagination.Cursor{JournalDate: j.JournalDate, CreatedAt: j.CreatedAt, ID: j.JournalID}
}

func (s *Store) ListJournalsByWorkplace(_ context.Context, workplaceID string, limit int, after *pagination.Cursor, includeReversals bool) ([]domain.Journal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Journal{}
	for _, j := range s.journals {
		if j.WorkplaceID != workplaceID || (!includeReversals && j.IsReversal()) {
			continue
		}
		if after != nil && !journalCursor(j).Before(*after) {
			continue
		}
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return journalCursor(out[k]).Before(journalCursor(out[i])) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) FindTransactionsByJournalID(_ context.Context, journalID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j := s.journals[journalID]
	out := make([]domain.Transaction, len(s.legs[journalID]))
	for i, txn := range s.legs[journalID] {
		out[i] = withJournal(txn, j)
	}
	return out, nil
}

func (s *Store) FindTransactionsByJournalIDs(ctx context.Context, journalIDs []string) (map[string][]domain.Transaction, error) {
	out := make(map[string][]domain.Transaction, len(journalIDs))
	for _, id := range journalIDs {
		legs, err := s.FindTransactionsByJournalID(ctx, id)
		if err != nil {
			return nil, err
		}
		out[id] = legs
	}
	return out, nil
}

func transactionCursor(txn domain.Transaction) pagination.Cursor {
	return pagination.Cursor{JournalDate: txn.JournalDate, CreatedAt: txn.CreatedAt, ID: txn.TransactionID}
}

func (s *Store) ListTransactionsByAccountID(_ context.Context, workplaceID, accountID string, limit int, after *pagination.Cursor) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Transaction{}
	for journalID, legs := range s.legs {
		j := s.journals[journalID]
		if j.WorkplaceID != workplaceID || !j.Status.IsCommitted() {
			continue
		}
		for _, txn := range legs {
			if txn.AccountID != accountID {
				continue
			}
			txn = withJournal(txn, j)
			if after != nil && !transactionCursor(txn).Before(*after) {
				continue
			}
			out = append(out, txn)
		}
	}
	sort.Slice(out, func(i, k int) bool { return transactionCursor(out[k]).Before(transactionCursor(out[i])) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) ListLedgerEntries(_ context.Context, workplaceID, accountID string, asOf time.Time) ([]domain.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var cutoff time.Time
	if !asOf.IsZero() {
		cutoff = accounting.TruncateToDate(asOf)
	}
	out := []domain.LedgerEntry{}
	for journalID, legs := range s.legs {
		j := s.journals[journalID]
		if j.WorkplaceID != workplaceID || !j.Status.IsCommitted() {
			continue
		}
		if !cutoff.IsZero() && j.JournalDate.After(cutoff) {
			continue
		}
		for _, txn := range legs {
			if accountID == "" || txn.AccountID == accountID {
				out = append(out, domain.EntryFromTransaction(txn, j))
			}
		}
	}
	return out, nil
}
