package accounting

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/apperrors"
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format journals are exchanged in.
const DateLayout = "2006-01-02"

// LegCandidate is one proposed transaction leg.
type LegCandidate struct {
	AccountID       string
	Amount          decimal.Decimal
	TransactionType domain.TransactionType
	CurrencyCode    string // empty inherits the journal currency
	Notes           string
}

// JournalCandidate is a journal proposed by a client, before acceptance.
type JournalCandidate struct {
	Date         string
	CurrencyCode string
	Description  string
	Legs         []LegCandidate
}

// CandidateFromJournal rebuilds a candidate from a stored journal and its legs,
// so stored data can be re-checked with the same rules.
func CandidateFromJournal(journal domain.Journal, legs []domain.Transaction) JournalCandidate {
	c := JournalCandidate{
		CurrencyCode: journal.CurrencyCode,
		Description:  journal.Description,
		Legs:         make([]LegCandidate, len(legs)),
	}
	if !journal.JournalDate.IsZero() {
		c.Date = journal.JournalDate.Format(DateLayout)
	}
	for i, txn := range legs {
		c.Legs[i] = LegCandidate{
			AccountID:       txn.AccountID,
			Amount:          txn.Amount,
			TransactionType: txn.TransactionType,
			CurrencyCode:    txn.CurrencyCode,
			Notes:           txn.Notes,
		}
	}
	return c
}

// ParseJournalDate accepts a calendar date or an RFC 3339 timestamp and
// returns the date at midnight UTC.
func ParseJournalDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not a valid calendar date", s)
	}
	return TruncateToDate(ts), nil
}

// TruncateToDate drops the clock part of t, keeping its calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MaxLegAmount bounds a leg amount from above (exclusive). Amounts are
// stored as NUMERIC(28, 8), which leaves 20 integer digits.
var MaxLegAmount = decimal.New(1, 20)

// Epsilon is the largest debit/credit difference tolerated for a currency
// with the given number of minor-unit digits: one minor unit.
func Epsilon(precision int32) decimal.Decimal {
	if precision < 0 {
		precision = domain.DefaultCurrencyPrecision
	}
	return decimal.New(1, -precision)
}

// ValidateJournal checks a candidate journal. It returns nil when the journal
// is acceptable, otherwise a *apperrors.ValidationError listing every
// violation in rule order: date, leg count, per-leg fields, balance, currency.
func ValidateJournal(c JournalCandidate, precision int32) error {
	verr := &apperrors.ValidationError{}
	if precision < 0 {
		precision = domain.DefaultCurrencyPrecision
	}

	if _, err := ParseJournalDate(c.Date); err != nil {
		verr.Add(apperrors.RuleDate, apperrors.NoLeg, "date", err.Error())
	}

	if len(c.Legs) < 2 {
		verr.Add(apperrors.RuleMinLegs, apperrors.NoLeg, "transactions",
			fmt.Sprintf("journal must have at least two transaction entries, got %d", len(c.Legs)))
	}

	for i, leg := range c.Legs {
		if strings.TrimSpace(leg.AccountID) == "" {
			verr.Add(apperrors.RuleLegAccount, i, fieldName(i, "accountID"), "account is required")
		}
		switch {
		case !leg.Amount.IsPositive():
			verr.Add(apperrors.RuleLegAmount, i, fieldName(i, "amount"),
				fmt.Sprintf("amount must be greater than zero, got %s", leg.Amount.String()))
		case !leg.Amount.Equal(leg.Amount.Truncate(precision)):
			verr.Add(apperrors.RuleLegAmount, i, fieldName(i, "amount"),
				fmt.Sprintf("amount %s has more than %d decimal places", leg.Amount.String(), precision))
		case leg.Amount.GreaterThanOrEqual(MaxLegAmount):
			verr.Add(apperrors.RuleLegAmount, i, fieldName(i, "amount"),
				fmt.Sprintf("amount %s exceeds the largest storable amount", leg.Amount.String()))
		}
		if !leg.TransactionType.IsValid() {
			verr.Add(apperrors.RuleLegType, i, fieldName(i, "transactionType"),
				fmt.Sprintf("transaction type must be DEBIT or CREDIT, got %q", leg.TransactionType))
		}
	}

	debits, credits := candidateTotals(c.Legs)
	if diff := debits.Sub(credits).Abs(); diff.GreaterThan(Epsilon(precision)) {
		verr.Add(apperrors.RuleBalance, apperrors.NoLeg, "transactions",
			fmt.Sprintf("journal entries do not balance: debits sum is %s and credits sum is %s",
				debits.String(), credits.String()))
	}

	if strings.TrimSpace(c.CurrencyCode) == "" {
		verr.Add(apperrors.RuleCurrency, apperrors.NoLeg, "currencyCode", "journal currency is required")
	} else {
		for i, leg := range c.Legs {
			if leg.CurrencyCode != "" && leg.CurrencyCode != c.CurrencyCode {
				verr.Add(apperrors.RuleCurrency, i, fieldName(i, "currencyCode"),
					fmt.Sprintf("leg currency %s does not match journal currency %s", leg.CurrencyCode, c.CurrencyCode))
			}
		}
	}

	if len(verr.Violations) == 0 {
		return nil
	}
	return verr
}

func candidateTotals(legs []LegCandidate) (decimal.Decimal, decimal.Decimal) {
	debits, credits := decimal.Zero, decimal.Zero
	for _, leg := range legs {
		switch leg.TransactionType {
		case domain.Debit:
			debits = debits.Add(leg.Amount)
		case domain.Credit:
			credits = credits.Add(leg.Amount)
		}
	}
	return debits, credits
}

func fieldName(legIndex int, field string) string {
	return fmt.Sprintf("transactions[%d].%s", legIndex, field)
}
