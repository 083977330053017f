package utils

import (
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision renders amount with exactly the currency's minor-unit digits.
// 12.3 in USD is "12.30", 12.6 in JPY is "13".
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return FormatWithPrecision(amount, currency.Precision)
}

// FormatWithPrecision renders amount rounded to precision fixed digits.
func FormatWithPrecision(amount decimal.Decimal, precision int32) string {
	if precision < 0 {
		precision = domain.DefaultCurrencyPrecision
	}
	return amount.StringFixed(precision)
}
