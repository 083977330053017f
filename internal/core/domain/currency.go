package domain

import "github.com/shopspring/decimal"

// DefaultCurrencyPrecision is used when a currency record carries no precision.
const DefaultCurrencyPrecision int32 = 2

// MaxCurrencyPrecision bounds the minor-unit digits a currency may declare.
const MaxCurrencyPrecision int32 = 8

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	Precision    int32  `json:"precision"`    // minor-unit digits, 2 for USD, 0 for JPY
	AuditFields
}

// MinorUnit returns the value of one minor unit, 10^-precision.
func (c Currency) MinorUnit() decimal.Decimal {
	return decimal.New(1, -c.Precision)
}
