package accounting

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/apperrors"
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postedJournal(id string, legs ...domain.Transaction) (domain.Journal, []domain.Transaction) {
	journal := domain.Journal{
		JournalID:    id,
		WorkplaceID:  "wp-1",
		JournalDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description:  "Office rent",
		CurrencyCode: "USD",
		Status:       domain.Posted,
	}
	for i := range legs {
		legs[i].JournalID = id
		legs[i].TransactionID = fmt.Sprintf("%s-leg-%d", id, i)
		legs[i].CurrencyCode = "USD"
	}
	return journal, legs
}

func txn(account, amount string, txnType domain.TransactionType) domain.Transaction {
	return domain.Transaction{AccountID: account, Amount: decimal.RequireFromString(amount), TransactionType: txnType}
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func TestBuildReversal_InvertsLegs(t *testing.T) {
	original, legs := postedJournal("j-1", txn("A", "100", domain.Debit), txn("B", "100", domain.Credit))
	now := time.Date(2024, 4, 2, 15, 4, 5, 0, time.UTC)

	reversal, reversedLegs, err := BuildReversal(original, legs, ReversalParams{
		JournalID: "j-2",
		UserID:    "user-1",
		Now:       now,
		NewID:     sequentialIDs("t"),
	})
	require.NoError(t, err)

	assert.Equal(t, "j-2", reversal.JournalID)
	require.NotNil(t, reversal.OriginalJournalID)
	assert.Equal(t, "j-1", *reversal.OriginalJournalID)
	assert.Nil(t, reversal.ReversingJournalID)
	assert.Equal(t, domain.Posted, reversal.Status)
	assert.Equal(t, "USD", reversal.CurrencyCode)
	assert.Equal(t, "Reversal of Journal: Office rent", reversal.Description)
	assert.Equal(t, "2024-04-02", reversal.JournalDate.Format(DateLayout))
	assert.True(t, decimal.NewFromInt(100).Equal(reversal.Amount))

	require.Len(t, reversedLegs, 2)
	assert.Equal(t, "A", reversedLegs[0].AccountID)
	assert.Equal(t, domain.Credit, reversedLegs[0].TransactionType)
	assert.Equal(t, "B", reversedLegs[1].AccountID)
	assert.Equal(t, domain.Debit, reversedLegs[1].TransactionType)
	for i, l := range reversedLegs {
		assert.Equal(t, "j-2", l.JournalID)
		assert.True(t, legs[i].Amount.Equal(l.Amount))
		assert.Equal(t, "user-1", l.CreatedBy)
	}

	// The original is left untouched.
	assert.Nil(t, original.ReversingJournalID)
	assert.Equal(t, domain.Debit, legs[0].TransactionType)
}

func TestBuildReversal_PassesValidator(t *testing.T) {
	cases := [][]domain.Transaction{
		{txn("A", "100", domain.Debit), txn("B", "100", domain.Credit)},
		{txn("A", "12.34", domain.Debit), txn("B", "2.34", domain.Credit), txn("C", "10", domain.Credit)},
		{txn("A", "50.00", domain.Debit), txn("B", "49.99", domain.Credit)},
	}
	for i, legs := range cases {
		original, legs := postedJournal(fmt.Sprintf("j-%d", i), legs...)
		require.NoError(t, ValidateJournal(CandidateFromJournal(original, legs), 2))

		reversal, reversedLegs, err := BuildReversal(original, legs, ReversalParams{})
		require.NoError(t, err)
		assert.NoError(t, ValidateJournal(CandidateFromJournal(reversal, reversedLegs), 2))

		// Original plus reversal nets every account to zero.
		var entries []domain.LedgerEntry
		for _, l := range legs {
			entries = append(entries, domain.EntryFromTransaction(l, original))
		}
		for _, l := range reversedLegs {
			entries = append(entries, domain.EntryFromTransaction(l, reversal))
		}
		for account, balance := range Balances(entries, time.Time{}) {
			assert.True(t, balance.IsZero(), "account %s should net to zero", account)
		}
	}
}

func TestBuildReversal_Overrides(t *testing.T) {
	original, legs := postedJournal("j-1", txn("A", "1", domain.Debit), txn("B", "1", domain.Credit))
	date := time.Date(2023, 12, 31, 18, 0, 0, 0, time.UTC)

	reversal, _, err := BuildReversal(original, legs, ReversalParams{Date: date, Description: "  Correcting entry "})
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", reversal.JournalDate.Format(DateLayout))
	assert.Equal(t, "Correcting entry", reversal.Description)
	assert.NotEmpty(t, reversal.JournalID)
}

func TestBuildReversal_AlreadyReversed(t *testing.T) {
	original, legs := postedJournal("j-1", txn("A", "1", domain.Debit), txn("B", "1", domain.Credit))
	reversingID := "j-2"
	original.ReversingJournalID = &reversingID
	original.Status = domain.Reversed

	_, _, err := BuildReversal(original, legs, ReversalParams{})
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyReversed))
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestBuildReversal_ReversalOfReversalDisallowed(t *testing.T) {
	original, legs := postedJournal("j-1", txn("A", "1", domain.Debit), txn("B", "1", domain.Credit))
	reversal, reversedLegs, err := BuildReversal(original, legs, ReversalParams{JournalID: "j-2"})
	require.NoError(t, err)

	_, _, err = BuildReversal(reversal, reversedLegs, ReversalParams{})
	assert.True(t, errors.Is(err, apperrors.ErrCannotReverseReversal))
}

func TestBuildReversal_DraftRejected(t *testing.T) {
	original, legs := postedJournal("j-1", txn("A", "1", domain.Debit), txn("B", "1", domain.Credit))
	original.Status = domain.Draft

	_, _, err := BuildReversal(original, legs, ReversalParams{})
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.False(t, errors.Is(err, apperrors.ErrAlreadyReversed))
}

func TestValidateReversalLinks(t *testing.T) {
	original, legs := postedJournal("j-1", txn("A", "100", domain.Debit), txn("B", "100", domain.Credit))
	reversal, _, err := BuildReversal(original, legs, ReversalParams{JournalID: "j-2"})
	require.NoError(t, err)

	// Only one side linked is a consistency failure.
	assert.Error(t, ValidateReversalLinks(original, reversal))

	original.ReversingJournalID = &reversal.JournalID
	assert.NoError(t, ValidateReversalLinks(original, reversal))

	other := "j-3"
	original.ReversingJournalID = &other
	assert.True(t, errors.Is(ValidateReversalLinks(original, reversal), apperrors.ErrInternal))

	original.ReversingJournalID = &reversal.JournalID
	reversal.WorkplaceID = "wp-2"
	assert.Error(t, ValidateReversalLinks(original, reversal))
}
