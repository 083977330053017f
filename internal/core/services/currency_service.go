package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/apperrors"
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	portsrepo "github.com/SscSPs/fiscal_balance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fiscal_balance/internal/core/ports/services"
	"github.com/SscSPs/fiscal_balance/internal/dto"
	"gopkg.in/yaml.v3"
)

// SystemUserID is recorded as creator of seeded reference data.
const SystemUserID = "system"

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
	now          func() time.Time
}

// NewCurrencyService creates a currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{
		currencyRepo: currencyRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if !dto.IsCurrencyCode(code) {
		return nil, fmt.Errorf("%w: currency code must be three letters, got %q", apperrors.ErrValidation, req.CurrencyCode)
	}
	precision := domain.DefaultCurrencyPrecision
	if req.Precision != nil {
		precision = *req.Precision
	}
	if precision < 0 || precision > domain.MaxCurrencyPrecision {
		return nil, fmt.Errorf("%w: precision must be between 0 and %d", apperrors.ErrValidation, domain.MaxCurrencyPrecision)
	}

	currency := domain.Currency{
		CurrencyCode: code,
		Symbol:       req.Symbol,
		Name:         strings.TrimSpace(req.Name),
		Precision:    precision,
		AuditFields:  domain.NewAuditFields(creatorUserID, s.now()),
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.logRepoError(ctx, err, "Failed to save currency",
			slog.String("currency_code", code))
		return nil, fmt.Errorf("failed to create currency %s: %w", code, err)
	}

	s.LogInfo(ctx, "Currency created", slog.String("currency_code", code))
	return &currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		s.logRepoError(ctx, err, "Failed to get currency by code",
			slog.String("currency_code", code))
		return nil, err
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, err
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// currencySeed is one entry of the currency seed file.
type currencySeed struct {
	Code      string `yaml:"code"`
	Symbol    string `yaml:"symbol"`
	Name      string `yaml:"name"`
	Precision *int32 `yaml:"precision"`
}

type currencySeedFile struct {
	Currencies []currencySeed `yaml:"currencies"`
}

// ParseCurrencySeed decodes a currency seed document.
func ParseCurrencySeed(data []byte) ([]dto.CreateCurrencyRequest, error) {
	var file currencySeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse currency seed YAML: %w", err)
	}
	reqs := make([]dto.CreateCurrencyRequest, 0, len(file.Currencies))
	for i, c := range file.Currencies {
		if c.Code == "" || c.Name == "" {
			return nil, fmt.Errorf("currency seed entry %d needs code and name", i)
		}
		reqs = append(reqs, dto.CreateCurrencyRequest{
			CurrencyCode: c.Code,
			Symbol:       c.Symbol,
			Name:         c.Name,
			Precision:    c.Precision,
		})
	}
	return reqs, nil
}

// SeedCurrencies adds the currencies of the seed file that are not stored yet.
func (s *currencyService) SeedCurrencies(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read currency seed file %s: %w", path, err)
	}
	reqs, err := ParseCurrencySeed(data)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, req := range reqs {
		_, err := s.CreateCurrency(ctx, req, SystemUserID)
		switch {
		case err == nil:
			added++
		case errors.Is(err, apperrors.ErrDuplicate):
		default:
			return added, err
		}
	}

	s.LogInfo(ctx, "Currency seed applied",
		slog.String("path", path),
		slog.Int("added", added),
		slog.Int("listed", len(reqs)))
	return added, nil
}
