package accounting

import (
	"errors"
	"testing"

	"github.com/SscSPs/fiscal_balance/internal/apperrors"
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leg(account, amount string, txnType domain.TransactionType) LegCandidate {
	return LegCandidate{AccountID: account, Amount: decimal.RequireFromString(amount), TransactionType: txnType}
}

func candidate(legs ...LegCandidate) JournalCandidate {
	return JournalCandidate{Date: "2024-03-01", CurrencyCode: "USD", Description: "test", Legs: legs}
}

func requireValidationError(t *testing.T, err error) *apperrors.ValidationError {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	return verr
}

func TestValidateJournal_BalancedAccepted(t *testing.T) {
	tests := []struct {
		name string
		legs []LegCandidate
	}{
		{"two legs", []LegCandidate{leg("A", "100.00", domain.Debit), leg("B", "100.00", domain.Credit)}},
		{"split credit", []LegCandidate{leg("A", "75.50", domain.Debit), leg("B", "25.25", domain.Credit), leg("C", "50.25", domain.Credit)}},
		{"many debits", []LegCandidate{leg("A", "0.01", domain.Debit), leg("A", "0.02", domain.Debit), leg("B", "0.03", domain.Credit)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateJournal(candidate(tt.legs...), 2))
		})
	}
}

func TestValidateJournal_UnbalancedRejected(t *testing.T) {
	err := ValidateJournal(candidate(leg("A", "100.00", domain.Debit), leg("B", "99.98", domain.Credit)), 2)
	verr := requireValidationError(t, err)
	assert.Equal(t, apperrors.RuleBalance, verr.First().Rule)
	assert.Equal(t, apperrors.NoLeg, verr.First().LegIndex)
	assert.Contains(t, err.Error(), "BALANCE")
}

func TestValidateJournal_EpsilonBoundaryInclusive(t *testing.T) {
	// A difference of exactly one minor unit is tolerated.
	assert.NoError(t, ValidateJournal(candidate(leg("A", "50.00", domain.Debit), leg("B", "49.99", domain.Credit)), 2))
	// Anything beyond it is not.
	verr := requireValidationError(t, ValidateJournal(candidate(leg("A", "50.00", domain.Debit), leg("B", "49.989", domain.Credit)), 2))
	assert.True(t, verr.HasRule(apperrors.RuleBalance))
}

func TestValidateJournal_EpsilonScalesWithPrecision(t *testing.T) {
	// JPY has no minor unit: one yen is the tolerance.
	assert.NoError(t, ValidateJournal(candidate(leg("A", "1000", domain.Debit), leg("B", "999", domain.Credit)), 0))
	requireValidationError(t, ValidateJournal(candidate(leg("A", "1000", domain.Debit), leg("B", "998", domain.Credit)), 0))

	// Three-digit currencies tolerate 0.001 only.
	requireValidationError(t, ValidateJournal(candidate(leg("A", "10.000", domain.Debit), leg("B", "9.990", domain.Credit)), 3))
	assert.NoError(t, ValidateJournal(candidate(leg("A", "10.000", domain.Debit), leg("B", "9.999", domain.Credit)), 3))
}

func TestValidateJournal_TooFewLegs(t *testing.T) {
	for _, legs := range [][]LegCandidate{nil, {leg("A", "10", domain.Debit)}} {
		verr := requireValidationError(t, ValidateJournal(candidate(legs...), 2))
		assert.True(t, verr.HasRule(apperrors.RuleMinLegs))
	}
}

func TestValidateJournal_FirstFailingRuleAndLeg(t *testing.T) {
	c := candidate(
		leg("A", "10.00", domain.Debit),
		LegCandidate{AccountID: "", Amount: decimal.RequireFromString("10.00"), TransactionType: domain.Credit},
	)
	verr := requireValidationError(t, ValidateJournal(c, 2))
	first := verr.First()
	assert.Equal(t, apperrors.RuleLegAccount, first.Rule)
	assert.Equal(t, 1, first.LegIndex)
	assert.Equal(t, "transactions[1].accountID", first.Field)
	assert.Contains(t, verr.Error(), "(leg 1)")
}

func TestValidateJournal_ZeroAndNegativeAmountsRejected(t *testing.T) {
	for _, amount := range []string{"0", "0.00", "-5.00"} {
		c := candidate(leg("A", amount, domain.Debit), leg("B", amount, domain.Credit))
		verr := requireValidationError(t, ValidateJournal(c, 2))
		assert.Equal(t, apperrors.RuleLegAmount, verr.First().Rule, amount)
		assert.Equal(t, 0, verr.First().LegIndex)
	}
}

func TestValidateJournal_AmountBeyondCurrencyPrecision(t *testing.T) {
	c := candidate(leg("A", "0.000000001", domain.Debit), leg("B", "0.000000001", domain.Credit))
	verr := requireValidationError(t, ValidateJournal(c, 2))
	assert.Equal(t, apperrors.RuleLegAmount, verr.First().Rule)
	assert.Equal(t, 0, verr.First().LegIndex)
	assert.Equal(t, "transactions[0].amount", verr.First().Field)
	assert.Len(t, verr.Violations, 2)

	// Trailing zeros past the precision do not change the value.
	assert.NoError(t, ValidateJournal(candidate(leg("A", "10.500", domain.Debit), leg("B", "10.5", domain.Credit)), 2))
	// Eight decimals fit a precision-8 currency.
	assert.NoError(t, ValidateJournal(candidate(leg("A", "0.00000001", domain.Debit), leg("B", "0.00000001", domain.Credit)), 8))
	requireValidationError(t, ValidateJournal(candidate(leg("A", "1.5", domain.Debit), leg("B", "1.5", domain.Credit)), 0))
}

func TestValidateJournal_AmountTooLarge(t *testing.T) {
	c := candidate(leg("A", "1e24", domain.Debit), leg("B", "1e24", domain.Credit))
	verr := requireValidationError(t, ValidateJournal(c, 2))
	assert.Equal(t, apperrors.RuleLegAmount, verr.First().Rule)
	assert.Equal(t, 0, verr.First().LegIndex)
	assert.True(t, verr.HasRule(apperrors.RuleLegAmount))
	assert.False(t, verr.HasRule(apperrors.RuleBalance))

	largest := "99999999999999999999.99"
	assert.NoError(t, ValidateJournal(candidate(leg("A", largest, domain.Debit), leg("B", largest, domain.Credit)), 2))
	requireValidationError(t, ValidateJournal(candidate(leg("A", "100000000000000000000", domain.Debit), leg("B", "100000000000000000000", domain.Credit)), 2))
}

func TestValidateJournal_InvalidType(t *testing.T) {
	c := candidate(leg("A", "10", domain.Debit), leg("B", "10", domain.TransactionType("SIDEWAYS")))
	verr := requireValidationError(t, ValidateJournal(c, 2))
	assert.Equal(t, apperrors.RuleLegType, verr.First().Rule)
	assert.Equal(t, 1, verr.First().LegIndex)
}

func TestValidateJournal_Date(t *testing.T) {
	c := candidate(leg("A", "10", domain.Debit), leg("B", "10", domain.Credit))

	c.Date = ""
	verr := requireValidationError(t, ValidateJournal(c, 2))
	assert.Equal(t, apperrors.RuleDate, verr.First().Rule)

	c.Date = "2024-02-30"
	verr = requireValidationError(t, ValidateJournal(c, 2))
	assert.Equal(t, apperrors.RuleDate, verr.First().Rule)

	c.Date = "2024-02-29T23:15:00Z"
	assert.NoError(t, ValidateJournal(c, 2))
}

func TestValidateJournal_Currency(t *testing.T) {
	c := candidate(leg("A", "10", domain.Debit), leg("B", "10", domain.Credit))
	c.Legs[0].CurrencyCode = "USD"
	assert.NoError(t, ValidateJournal(c, 2))

	c.Legs[1].CurrencyCode = "EUR"
	verr := requireValidationError(t, ValidateJournal(c, 2))
	assert.Equal(t, apperrors.RuleCurrency, verr.First().Rule)
	assert.Equal(t, 1, verr.First().LegIndex)

	c.CurrencyCode = ""
	verr = requireValidationError(t, ValidateJournal(c, 2))
	assert.Equal(t, apperrors.RuleCurrency, verr.First().Rule)
	assert.Equal(t, apperrors.NoLeg, verr.First().LegIndex)
}

func TestValidateJournal_CollectsAllViolationsInOrder(t *testing.T) {
	c := JournalCandidate{Date: "nope", Legs: []LegCandidate{leg("", "-5", domain.Debit)}}
	verr := requireValidationError(t, ValidateJournal(c, 2))

	rules := make([]apperrors.ValidationRule, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		rules = append(rules, v.Rule)
	}
	assert.Equal(t, []apperrors.ValidationRule{
		apperrors.RuleDate,
		apperrors.RuleMinLegs,
		apperrors.RuleLegAccount,
		apperrors.RuleLegAmount,
		apperrors.RuleBalance,
		apperrors.RuleCurrency,
	}, rules)
}

func TestParseJournalDate(t *testing.T) {
	d, err := ParseJournalDate("2024-07-04T22:30:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-07-05", d.Format(DateLayout))

	_, err = ParseJournalDate("07/04/2024")
	assert.Error(t, err)
}

func TestCandidateFromJournal(t *testing.T) {
	journal := domain.Journal{CurrencyCode: "USD", JournalDate: TruncateToDate(mustDate(t, "2024-01-31"))}
	legs := []domain.Transaction{
		{AccountID: "A", Amount: decimal.NewFromInt(5), TransactionType: domain.Debit, CurrencyCode: "USD"},
		{AccountID: "B", Amount: decimal.NewFromInt(5), TransactionType: domain.Credit, CurrencyCode: "USD"},
	}
	c := CandidateFromJournal(journal, legs)
	assert.Equal(t, "2024-01-31", c.Date)
	assert.Len(t, c.Legs, 2)
	assert.NoError(t, ValidateJournal(c, 2))
}
