package services

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	portsrepo "github.com/SscSPs/fiscal_balance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fiscal_balance/internal/core/ports/services"
	"github.com/SscSPs/fiscal_balance/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var errMissingAccount = errors.New("ledger entry references an account outside the workplace")

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	ledger      portsrepo.LedgerReader
	accountRepo portsrepo.AccountReader
	now         func() time.Time
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(ledger portsrepo.LedgerReader, accountRepo portsrepo.AccountReader, opts ...Option) portssvc.ReportingService {
	svc := &reportingService{
		ledger:      ledger,
		accountRepo: accountRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
	svc.apply(opts)
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance lists every account with committed activity up to asOf. A
// positive raw balance is shown in the debit column, a negative one in the
// credit column. Column totals are kept per currency.
func (s *reportingService) TrialBalance(ctx context.Context, workplaceID string, asOf time.Time, userID string) (*domain.TrialBalanceReport, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	if asOf.IsZero() {
		asOf = s.now()
	}
	asOf = accounting.TruncateToDate(asOf)

	entries, err := s.ledger.ListLedgerEntries(ctx, workplaceID, "", asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for trial balance",
			slog.String("workplace_id", workplaceID))
		return nil, err
	}
	balances := accounting.Balances(entries, asOf)

	report := &domain.TrialBalanceReport{
		WorkplaceID:  workplaceID,
		AsOf:         asOf,
		Rows:         []domain.TrialBalanceRow{},
		TotalDebits:  map[string]decimal.Decimal{},
		TotalCredits: map[string]decimal.Decimal{},
	}
	if len(balances) == 0 {
		return report, nil
	}

	ids := make([]string, 0, len(balances))
	for id := range balances {
		ids = append(ids, id)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, workplaceID, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for trial balance",
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	for id, raw := range balances {
		account, ok := accounts[id]
		if !ok {
			s.LogError(ctx, errMissingAccount, "Ledger references unknown account",
				slog.String("account_id", id))
			continue
		}
		row := domain.TrialBalanceRow{
			AccountID:    id,
			AccountName:  account.Name,
			AccountType:  account.AccountType,
			CurrencyCode: account.CurrencyCode,
			Debit:        decimal.Zero,
			Credit:       decimal.Zero,
		}
		if raw.IsPositive() {
			row.Debit = raw
		} else {
			row.Credit = raw.Neg()
		}
		report.Rows = append(report.Rows, row)
		report.TotalDebits[row.CurrencyCode] = report.TotalDebits[row.CurrencyCode].Add(row.Debit)
		report.TotalCredits[row.CurrencyCode] = report.TotalCredits[row.CurrencyCode].Add(row.Credit)
	}

	slices.SortFunc(report.Rows, func(a, b domain.TrialBalanceRow) int {
		if c := slices.Index(domain.AccountTypes, a.AccountType) - slices.Index(domain.AccountTypes, b.AccountType); c != 0 {
			return c
		}
		if c := strings.Compare(a.AccountName, b.AccountName); c != 0 {
			return c
		}
		return strings.Compare(a.AccountID, b.AccountID)
	})

	s.LogDebug(ctx, "Trial balance generated",
		slog.String("workplace_id", workplaceID),
		slog.Int("rows", len(report.Rows)))
	return report, nil
}
