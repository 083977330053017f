package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/apperrors"
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	portsrepo "github.com/SscSPs/fiscal_balance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fiscal_balance/internal/core/ports/services"
	"github.com/SscSPs/fiscal_balance/internal/dto"
	"github.com/SscSPs/fiscal_balance/internal/utils"
	"github.com/SscSPs/fiscal_balance/internal/utils/accounting"
	"github.com/google/uuid"
)

type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	ledger       portsrepo.LedgerReader
	now          func() time.Time
}

// NewAccountService creates an account service. Balances are derived from
// the ledger on every read.
func NewAccountService(
	accountRepo portsrepo.AccountRepositoryFacade,
	currencyRepo portsrepo.CurrencyReader,
	ledger portsrepo.LedgerReader,
	opts ...Option,
) portssvc.AccountSvcFacade {
	s := &accountService{
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
		ledger:       ledger,
		now:          func() time.Time { return time.Now().UTC() },
	}
	s.apply(opts)
	return s
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, workplaceID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	accountType := domain.AccountType(strings.ToUpper(string(req.AccountType)))
	if !accountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}
	currencyCode := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown currency code %s", apperrors.ErrValidation, currencyCode)
		}
		return nil, err
	}

	account := domain.Account{
		AccountID:    uuid.NewString(),
		WorkplaceID:  workplaceID,
		Name:         strings.TrimSpace(req.Name),
		AccountType:  accountType,
		CurrencyCode: currencyCode,
		Description:  req.Description,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(userID, s.now()),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.logRepoError(ctx, err, "Failed to save account in repository",
			slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("workplace_id", workplaceID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, workplaceID string, accountID string, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.findAccount(ctx, workplaceID, accountID)
}

func (s *accountService) findAccount(ctx context.Context, workplaceID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, workplaceID, accountID)
	if err != nil {
		s.logRepoError(ctx, err, "Failed to find account by ID",
			slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountWithBalance(ctx context.Context, workplaceID string, accountID string, userID string) (*dto.AccountWithBalance, error) {
	account, err := s.GetAccountByID(ctx, workplaceID, accountID, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledger.ListLedgerEntries(ctx, workplaceID, accountID, time.Time{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger entries",
			slog.String("account_id", accountID))
		return nil, err
	}

	return &dto.AccountWithBalance{
		Account:    *account,
		RawBalance: accounting.AccountBalance(accountID, entries, time.Time{}),
	}, nil
}

func (s *accountService) ListAccounts(ctx context.Context, workplaceID string, userID string, params dto.ListAccountsParams) ([]dto.AccountWithBalance, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, workplaceID, limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.String("workplace_id", workplaceID))
		return nil, err
	}
	if len(accounts) == 0 {
		return []dto.AccountWithBalance{}, nil
	}

	entries, err := s.ledger.ListLedgerEntries(ctx, workplaceID, "", time.Time{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger entries",
			slog.String("workplace_id", workplaceID))
		return nil, err
	}
	balances := accounting.Balances(entries, time.Time{})

	res := make([]dto.AccountWithBalance, len(accounts))
	for i, acc := range accounts {
		res[i] = dto.AccountWithBalance{Account: acc, RawBalance: balances[acc.AccountID]}
	}

	s.LogDebug(ctx, "Accounts listed successfully",
		slog.Int("count", len(res)),
		slog.String("workplace_id", workplaceID))
	return res, nil
}

// UpdateAccount changes the name, description or active flag. The account
// type and currency are fixed once the account exists.
func (s *accountService) UpdateAccount(ctx context.Context, workplaceID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	account, err := s.findAccount(ctx, workplaceID, accountID)
	if err != nil {
		return nil, err
	}

	if req.AccountType != nil && !strings.EqualFold(*req.AccountType, string(account.AccountType)) {
		return nil, fmt.Errorf("%w: account type cannot be changed", apperrors.ErrValidation)
	}
	if req.CurrencyCode != nil && !strings.EqualFold(*req.CurrencyCode, account.CurrencyCode) {
		return nil, fmt.Errorf("%w: account currency cannot be changed", apperrors.ErrValidation)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
		}
		account.Name = name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = s.now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.logRepoError(ctx, err, "Failed to update account",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully",
		slog.String("account_id", accountID))
	return account, nil
}

// CalculateAccountBalance folds the committed ledger of one account up to asOf
// and adds the display projection for its type.
func (s *accountService) CalculateAccountBalance(ctx context.Context, workplaceID string, accountID string, userID string, asOf time.Time) (*dto.AccountBalanceResponse, error) {
	account, err := s.GetAccountByID(ctx, workplaceID, accountID, userID)
	if err != nil {
		return nil, err
	}

	if !asOf.IsZero() {
		asOf = accounting.TruncateToDate(asOf)
	}
	entries, err := s.ledger.ListLedgerEntries(ctx, workplaceID, accountID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger entries",
			slog.String("account_id", accountID))
		return nil, err
	}
	raw := accounting.AccountBalance(accountID, entries, asOf)

	display, err := accounting.DisplayBalance(account.AccountType, raw)
	if err != nil {
		s.LogError(ctx, err, "Stored account has an unknown type",
			slog.String("account_id", accountID))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	precision := domain.DefaultCurrencyPrecision
	if currency, err := s.currencyRepo.FindCurrencyByCode(ctx, account.CurrencyCode); err == nil {
		precision = currency.Precision
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	res := &dto.AccountBalanceResponse{
		AccountID:    account.AccountID,
		AccountType:  account.AccountType,
		CurrencyCode: account.CurrencyCode,
		RawBalance:   raw,
		Balance:      display.Amount,
		Formatted:    utils.FormatWithPrecision(display.Amount, precision),
		Sign:         display.Sign,
		Class:        display.Class,
	}
	if !asOf.IsZero() {
		d := asOf.Format(accounting.DateLayout)
		res.AsOf = &d
	}
	return res, nil
}
