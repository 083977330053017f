package dto

import (
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/SscSPs/fiscal_balance/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// TrialBalanceParams are the query parameters of the trial balance report.
type TrialBalanceParams struct {
	AsOf string `form:"asOf" example:"2024-12-31"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID    string             `json:"accountID"`
	AccountName  string             `json:"accountName"`
	AccountType  domain.AccountType `json:"accountType"`
	CurrencyCode string             `json:"currencyCode"`
	Debit        decimal.Decimal    `json:"debit"`
	Credit       decimal.Decimal    `json:"credit"`
}

// TrialBalanceTotals holds the column totals of one currency.
type TrialBalanceTotals struct {
	CurrencyCode string          `json:"currencyCode"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Balanced     bool            `json:"balanced"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	WorkplaceID string                    `json:"workplaceID"`
	AsOf        string                    `json:"asOf"`
	Rows        []TrialBalanceRowResponse `json:"rows"`
	Totals      []TrialBalanceTotals      `json:"totals"`
}

// ToTrialBalanceResponse converts the domain report. Totals are listed in the
// order their currency first appears in the rows.
func ToTrialBalanceResponse(r domain.TrialBalanceReport) TrialBalanceResponse {
	res := TrialBalanceResponse{
		WorkplaceID: r.WorkplaceID,
		AsOf:        r.AsOf.Format(accounting.DateLayout),
		Rows:        make([]TrialBalanceRowResponse, len(r.Rows)),
		Totals:      []TrialBalanceTotals{},
	}
	seen := make(map[string]bool)
	for i, row := range r.Rows {
		res.Rows[i] = TrialBalanceRowResponse{
			AccountID:    row.AccountID,
			AccountName:  row.AccountName,
			AccountType:  row.AccountType,
			CurrencyCode: row.CurrencyCode,
			Debit:        row.Debit,
			Credit:       row.Credit,
		}
		if seen[row.CurrencyCode] {
			continue
		}
		seen[row.CurrencyCode] = true
		debit, credit := r.TotalDebits[row.CurrencyCode], r.TotalCredits[row.CurrencyCode]
		res.Totals = append(res.Totals, TrialBalanceTotals{
			CurrencyCode: row.CurrencyCode,
			Debit:        debit,
			Credit:       credit,
			Balanced:     debit.Equal(credit),
		})
	}
	return res
}
