package accounting

import (
	"fmt"

	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceClass is the presentation class of a displayed balance.
type BalanceClass string

const (
	BalancePositive BalanceClass = "balance-positive"
	BalanceNegative BalanceClass = "balance-negative"
	BalanceZero     BalanceClass = "balance-zero"
)

// normalSide is the side on which each account type increases.
var normalSide = map[domain.AccountType]domain.TransactionType{
	domain.Asset:     domain.Debit,
	domain.Expense:   domain.Debit,
	domain.Liability: domain.Credit,
	domain.Equity:    domain.Credit,
	domain.Revenue:   domain.Credit,
}

// DisplayedBalance is a raw balance adjusted for the account's normal side.
type DisplayedBalance struct {
	Amount decimal.Decimal `json:"amount"`
	Sign   int             `json:"sign"`
	Class  BalanceClass    `json:"class"`
}

// NormalSide returns DEBIT for debit-normal account types and CREDIT otherwise.
func NormalSide(accountType domain.AccountType) (domain.TransactionType, error) {
	side, ok := normalSide[accountType]
	if !ok {
		return "", fmt.Errorf("unknown account type '%s'", accountType)
	}
	return side, nil
}

// DisplayBalance converts a raw debit-minus-credit balance into the amount
// shown for an account of the given type. Credit-normal accounts are negated
// so that growth in their natural direction displays as positive.
func DisplayBalance(accountType domain.AccountType, raw decimal.Decimal) (DisplayedBalance, error) {
	side, err := NormalSide(accountType)
	if err != nil {
		return DisplayedBalance{}, err
	}
	amount := raw
	if side == domain.Credit {
		amount = raw.Neg()
	}
	d := DisplayedBalance{Amount: amount, Sign: amount.Sign()}
	switch d.Sign {
	case 1:
		d.Class = BalancePositive
	case -1:
		d.Class = BalanceNegative
	default:
		d.Class = BalanceZero
	}
	return d, nil
}

// SignedAmount applies the display convention to a single leg: a DEBIT to a
// debit-normal account or a CREDIT to a credit-normal account is positive.
func SignedAmount(txn domain.Transaction, accountType domain.AccountType) (decimal.Decimal, error) {
	side, err := NormalSide(accountType)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w for account ID %s", err, txn.AccountID)
	}
	if txn.TransactionType == side {
		return txn.Amount, nil
	}
	return txn.Amount.Neg(), nil
}
