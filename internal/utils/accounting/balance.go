package accounting

import (
	"time"

	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountBalance returns the raw debit-minus-credit balance of accountID over
// entries whose journal is committed and dated on or before asOf. A zero asOf
// means no cutoff. The result does not depend on the order of entries.
func AccountBalance(accountID string, entries []domain.LedgerEntry, asOf time.Time) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		if e.AccountID != accountID || !counts(e, asOf) {
			continue
		}
		balance = balance.Add(signedRaw(e))
	}
	return balance
}

// Balances folds entries into raw balances for every account that appears.
func Balances(entries []domain.LedgerEntry, asOf time.Time) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal)
	for _, e := range entries {
		if !counts(e, asOf) {
			continue
		}
		balances[e.AccountID] = balances[e.AccountID].Add(signedRaw(e))
	}
	return balances
}

// JournalTotals sums the debit and credit sides of a journal's legs.
func JournalTotals(legs []domain.Transaction) (decimal.Decimal, decimal.Decimal) {
	debits, credits := decimal.Zero, decimal.Zero
	for _, txn := range legs {
		switch txn.TransactionType {
		case domain.Debit:
			debits = debits.Add(txn.Amount)
		case domain.Credit:
			credits = credits.Add(txn.Amount)
		}
	}
	return debits, credits
}

func counts(e domain.LedgerEntry, asOf time.Time) bool {
	if !e.JournalStatus.IsCommitted() {
		return false
	}
	return asOf.IsZero() || !e.JournalDate.After(asOf)
}

func signedRaw(e domain.LedgerEntry) decimal.Decimal {
	if e.TransactionType == domain.Credit {
		return e.Amount.Neg()
	}
	return e.Amount
}
