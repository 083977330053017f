package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/fiscal_balance/internal/apperrors"
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	portsrepo "github.com/SscSPs/fiscal_balance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fiscal_balance/internal/core/ports/services"
	"github.com/SscSPs/fiscal_balance/internal/dto"
	"github.com/SscSPs/fiscal_balance/internal/platform/events"
	"github.com/SscSPs/fiscal_balance/internal/utils/accounting"
	"github.com/SscSPs/fiscal_balance/internal/utils/pagination"
)

// journalService provides core journal and transaction operations.
type journalService struct {
	BaseService
	journalRepo  portsrepo.JournalRepositoryFacade
	accountRepo  portsrepo.AccountReader
	currencyRepo portsrepo.CurrencyReader
	publisher    events.Publisher
	now          func() time.Time
	newID        func() string
}

// NewJournalService creates a new JournalService. A nil publisher disables journal events.
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	currencyRepo portsrepo.CurrencyReader,
	publisher events.Publisher,
	opts ...Option,
) portssvc.JournalSvcFacade {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	s := &journalService{
		journalRepo:  journalRepo,
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
		publisher:    publisher,
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
	}
	s.apply(opts)
	return s
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

var ruleOrder = []apperrors.ValidationRule{
	apperrors.RuleDate,
	apperrors.RuleMinLegs,
	apperrors.RuleLegAccount,
	apperrors.RuleLegAmount,
	apperrors.RuleLegType,
	apperrors.RuleBalance,
	apperrors.RuleCurrency,
}

// validateCandidate runs the structural journal rules and then checks the
// legs against stored data: the currency must exist and every account must
// exist in the workplace, be active and be held in the journal currency.
// All violations are reported together.
func (s *journalService) validateCandidate(ctx context.Context, workplaceID string, c accounting.JournalCandidate) error {
	verr := &apperrors.ValidationError{}

	precision := domain.DefaultCurrencyPrecision
	if c.CurrencyCode != "" {
		currency, err := s.currencyRepo.FindCurrencyByCode(ctx, c.CurrencyCode)
		switch {
		case err == nil:
			precision = currency.Precision
		case errors.Is(err, apperrors.ErrNotFound):
			verr.Add(apperrors.RuleCurrency, apperrors.NoLeg, "currencyCode",
				fmt.Sprintf("unknown currency %s", c.CurrencyCode))
		default:
			return err
		}
	}

	var structural *apperrors.ValidationError
	if err := accounting.ValidateJournal(c, precision); errors.As(err, &structural) {
		verr.Violations = append(verr.Violations, structural.Violations...)
	} else if err != nil {
		return err
	}

	ids := make([]string, 0, len(c.Legs))
	for _, leg := range c.Legs {
		if leg.AccountID != "" && !slices.Contains(ids, leg.AccountID) {
			ids = append(ids, leg.AccountID)
		}
	}
	if len(ids) > 0 {
		accounts, err := s.accountRepo.FindAccountsByIDs(ctx, workplaceID, ids)
		if err != nil {
			s.LogError(ctx, err, "Failed to load journal accounts",
				slog.String("workplace_id", workplaceID))
			return err
		}
		for i, leg := range c.Legs {
			if leg.AccountID == "" {
				continue
			}
			account, ok := accounts[leg.AccountID]
			switch {
			case !ok:
				verr.Add(apperrors.RuleLegAccount, i, fmt.Sprintf("transactions[%d].accountID", i),
					fmt.Sprintf("account %s not found in workplace", leg.AccountID))
			case !account.IsActive:
				verr.Add(apperrors.RuleLegAccount, i, fmt.Sprintf("transactions[%d].accountID", i),
					fmt.Sprintf("account %s is inactive", leg.AccountID))
			case c.CurrencyCode != "" && account.CurrencyCode != c.CurrencyCode:
				verr.Add(apperrors.RuleCurrency, i, fmt.Sprintf("transactions[%d].accountID", i),
					fmt.Sprintf("account currency %s does not match journal currency %s", account.CurrencyCode, c.CurrencyCode))
			}
		}
	}

	if len(verr.Violations) == 0 {
		return nil
	}
	slices.SortStableFunc(verr.Violations, compareViolations)
	return verr
}

// compareViolations orders violations the way ValidateJournal reports them:
// journal-level rules first, then the per-leg rules grouped by leg index,
// then balance and currency.
func compareViolations(a, b apperrors.Violation) int {
	ga, gb := violationGroup(a.Rule), violationGroup(b.Rule)
	if ga != gb {
		return ga - gb
	}
	if ga == perLegGroup && a.LegIndex != b.LegIndex {
		return a.LegIndex - b.LegIndex
	}
	return slices.Index(ruleOrder, a.Rule) - slices.Index(ruleOrder, b.Rule)
}

const perLegGroup = 2

func violationGroup(rule apperrors.ValidationRule) int {
	switch rule {
	case apperrors.RuleLegAccount, apperrors.RuleLegAmount, apperrors.RuleLegType:
		return perLegGroup
	}
	idx := slices.Index(ruleOrder, rule)
	if idx > slices.Index(ruleOrder, apperrors.RuleLegType) {
		return perLegGroup + 1 + idx
	}
	return idx
}

// buildJournal turns an accepted candidate into the journal and legs to store.
func (s *journalService) buildJournal(c accounting.JournalCandidate, workplaceID, journalID string, status domain.JournalStatus, userID string, now time.Time) (domain.Journal, []domain.Transaction, error) {
	date, err := accounting.ParseJournalDate(c.Date)
	if err != nil {
		return domain.Journal{}, nil, apperrors.NewValidationError(apperrors.RuleDate, apperrors.NoLeg, "date", err.Error())
	}

	legs := make([]domain.Transaction, len(c.Legs))
	for i, leg := range c.Legs {
		legs[i] = domain.Transaction{
			TransactionID:   s.newID(),
			JournalID:       journalID,
			AccountID:       leg.AccountID,
			Amount:          leg.Amount,
			TransactionType: leg.TransactionType,
			CurrencyCode:    c.CurrencyCode,
			Notes:           leg.Notes,
			AuditFields:     domain.NewAuditFields(userID, now),
		}
	}
	debits, _ := accounting.JournalTotals(legs)

	journal := domain.Journal{
		JournalID:    journalID,
		WorkplaceID:  workplaceID,
		JournalDate:  date,
		Description:  c.Description,
		CurrencyCode: c.CurrencyCode,
		Status:       status,
		Amount:       debits,
		AuditFields:  domain.NewAuditFields(userID, now),
	}
	return journal, legs, nil
}

// CreateJournal validates and stores a new journal. Status defaults to POSTED;
// only DRAFT and POSTED may be requested.
func (s *journalService) CreateJournal(ctx context.Context, workplaceID string, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	status := domain.JournalStatus(strings.ToUpper(string(req.Status)))
	if status == "" {
		status = domain.Posted
	}
	if status != domain.Draft && status != domain.Posted {
		return nil, fmt.Errorf("%w: status must be %s or %s, got %q", apperrors.ErrValidation, domain.Draft, domain.Posted, req.Status)
	}

	candidate := req.ToJournalCandidate()
	if err := s.validateCandidate(ctx, workplaceID, candidate); err != nil {
		s.LogDebug(ctx, "Journal rejected", slog.String("error", err.Error()))
		return nil, err
	}

	now := s.now()
	journal, legs, err := s.buildJournal(candidate, workplaceID, s.newID(), status, creatorUserID, now)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveJournal(ctx, journal, legs); err != nil {
		s.logRepoError(ctx, err, "Failed to save journal",
			slog.String("journal_id", journal.JournalID))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	journal.Transactions = legs
	s.publish(ctx, events.JournalCreated, journal, creatorUserID, now)
	s.LogInfo(ctx, "Journal created",
		slog.String("journal_id", journal.JournalID),
		slog.String("status", string(journal.Status)),
		slog.Int("legs", len(legs)))
	return &journal, nil
}

// GetJournalByID retrieves a journal with its transactions.
func (s *journalService) GetJournalByID(ctx context.Context, workplaceID string, journalID string, requestingUserID string) (*domain.Journal, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.loadJournal(ctx, workplaceID, journalID)
}

func (s *journalService) loadJournal(ctx context.Context, workplaceID, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, workplaceID, journalID)
	if err != nil {
		s.logRepoError(ctx, err, "Failed to find journal",
			slog.String("journal_id", journalID))
		return nil, err
	}
	legs, err := s.journalRepo.FindTransactionsByJournalID(ctx, journalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load journal transactions",
			slog.String("journal_id", journalID))
		return nil, err
	}
	journal.Transactions = legs
	return journal, nil
}

// ListJournals returns one page of journals, newest first.
func (s *journalService) ListJournals(ctx context.Context, workplaceID string, userID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	after, err := decodeCursor(params.NextToken)
	if err != nil {
		return nil, err
	}
	limit := pagination.NormalizeLimit(params.Limit)

	journals, err := s.journalRepo.ListJournalsByWorkplace(ctx, workplaceID, limit+1, after, params.IncludeReversals)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals",
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	res := &dto.ListJournalsResponse{Journals: []dto.JournalResponse{}}
	if len(journals) > limit {
		journals = journals[:limit]
		last := journals[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{JournalDate: last.JournalDate, CreatedAt: last.CreatedAt, ID: last.JournalID})
		res.NextToken = &token
	}

	if params.IncludeTransactions && len(journals) > 0 {
		ids := make([]string, len(journals))
		for i, j := range journals {
			ids[i] = j.JournalID
		}
		legsByJournal, err := s.journalRepo.FindTransactionsByJournalIDs(ctx, ids)
		if err != nil {
			s.LogError(ctx, err, "Failed to load transactions for journal page")
			return nil, err
		}
		for i := range journals {
			journals[i].Transactions = legsByJournal[journals[i].JournalID]
		}
	}

	for _, j := range journals {
		res.Journals = append(res.Journals, dto.ToJournalResponse(j))
	}
	return res, nil
}

// UpdateJournal replaces the header and legs of a draft. Committed journals
// can only be corrected by reversal.
func (s *journalService) UpdateJournal(ctx context.Context, workplaceID string, journalID string, req dto.UpdateJournalRequest, requestingUserID string) (*domain.Journal, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	existing, err := s.journalRepo.FindJournalByID(ctx, workplaceID, journalID)
	if err != nil {
		s.logRepoError(ctx, err, "Failed to find journal", slog.String("journal_id", journalID))
		return nil, err
	}
	if existing.Status != domain.Draft {
		return nil, fmt.Errorf("%w: journal %s is %s, only %s journals can be edited",
			apperrors.ErrConflict, journalID, existing.Status, domain.Draft)
	}

	candidate := req.ToJournalCandidate()
	if err := s.validateCandidate(ctx, workplaceID, candidate); err != nil {
		return nil, err
	}

	now := s.now()
	journal, legs, err := s.buildJournal(candidate, workplaceID, journalID, domain.Draft, requestingUserID, now)
	if err != nil {
		return nil, err
	}
	journal.CreatedAt = existing.CreatedAt
	journal.CreatedBy = existing.CreatedBy

	if err := s.journalRepo.ReplaceDraftJournal(ctx, journal, legs); err != nil {
		s.logRepoError(ctx, err, "Failed to replace draft journal", slog.String("journal_id", journalID))
		return nil, err
	}

	journal.Transactions = legs
	s.publish(ctx, events.JournalUpdated, journal, requestingUserID, now)
	s.LogInfo(ctx, "Draft journal updated", slog.String("journal_id", journalID))
	return &journal, nil
}

// PostJournal re-validates a draft against current data and commits it.
func (s *journalService) PostJournal(ctx context.Context, workplaceID string, journalID string, requestingUserID string) (*domain.Journal, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	journal, err := s.loadJournal(ctx, workplaceID, journalID)
	if err != nil {
		return nil, err
	}
	if journal.Status != domain.Draft {
		return nil, fmt.Errorf("%w: journal %s is already %s", apperrors.ErrConflict, journalID, journal.Status)
	}

	if err := s.validateCandidate(ctx, workplaceID, accounting.CandidateFromJournal(*journal, journal.Transactions)); err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.journalRepo.PostJournal(ctx, workplaceID, journalID, requestingUserID, now); err != nil {
		s.logRepoError(ctx, err, "Failed to post journal", slog.String("journal_id", journalID))
		return nil, err
	}

	journal.Status = domain.Posted
	journal.LastUpdatedAt = now
	journal.LastUpdatedBy = requestingUserID
	s.publish(ctx, events.JournalPosted, *journal, requestingUserID, now)
	s.LogInfo(ctx, "Journal posted", slog.String("journal_id", journalID))
	return journal, nil
}

// ReverseJournal creates the journal that cancels journalID. When the store
// reports a lost race or a vanished row the original is re-read and the
// reversal attempted once more.
func (s *journalService) ReverseJournal(ctx context.Context, workplaceID string, journalID string, userID string, req dto.ReverseJournalRequest) (*domain.Journal, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	var date time.Time
	if req.Date != nil && strings.TrimSpace(*req.Date) != "" {
		d, err := accounting.ParseJournalDate(*req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError(apperrors.RuleDate, apperrors.NoLeg, "date", err.Error())
		}
		date = d
	}
	var description string
	if req.Description != nil {
		description = *req.Description
	}

	const attempts = 2
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		reversal, err := s.reverseOnce(ctx, workplaceID, journalID, userID, date, description)
		if err == nil {
			return reversal, nil
		}
		lastErr = err
		retryable := errors.Is(err, apperrors.ErrConcurrencyConflict) || errors.Is(err, apperrors.ErrNotFound)
		if !retryable || attempt == attempts {
			break
		}
		s.LogWarn(ctx, err, "Reversal lost a race, retrying",
			slog.String("journal_id", journalID),
			slog.Int("attempt", attempt))
	}
	return nil, lastErr
}

func (s *journalService) reverseOnce(ctx context.Context, workplaceID, journalID, userID string, date time.Time, description string) (*domain.Journal, error) {
	original, err := s.loadJournal(ctx, workplaceID, journalID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	reversal, legs, err := accounting.BuildReversal(*original, original.Transactions, accounting.ReversalParams{
		Date:        date,
		Description: description,
		UserID:      userID,
		Now:         now,
		NewID:       s.newID,
	})
	if err != nil {
		return nil, err
	}

	precision := domain.DefaultCurrencyPrecision
	if currency, err := s.currencyRepo.FindCurrencyByCode(ctx, reversal.CurrencyCode); err == nil {
		precision = currency.Precision
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load reversal currency",
			slog.String("journal_id", journalID))
		return nil, err
	}
	if err := accounting.ValidateJournal(accounting.CandidateFromJournal(reversal, legs), precision); err != nil {
		s.LogError(ctx, err, "Generated reversal failed validation",
			slog.String("journal_id", journalID))
		return nil, fmt.Errorf("%w: generated reversal is invalid: %v", apperrors.ErrInternal, err)
	}

	if err := s.journalRepo.SaveReversal(ctx, original.JournalID, reversal, legs); err != nil {
		s.logRepoError(ctx, err, "Failed to save reversal",
			slog.String("journal_id", journalID),
			slog.String("reversal_id", reversal.JournalID))
		return nil, err
	}

	reversal.Transactions = legs
	s.publish(ctx, events.JournalReversed, reversal, userID, now)
	s.LogInfo(ctx, "Journal reversed",
		slog.String("journal_id", journalID),
		slog.String("reversal_id", reversal.JournalID))
	return &reversal, nil
}

// ListTransactionsByAccount returns one page of committed legs of an account.
func (s *journalService) ListTransactionsByAccount(ctx context.Context, workplaceID string, accountID string, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, workplaceID, accountID); err != nil {
		s.logRepoError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, err
	}

	after, err := decodeCursor(params.NextToken)
	if err != nil {
		return nil, err
	}
	limit := pagination.NormalizeLimit(params.Limit)

	txns, err := s.journalRepo.ListTransactionsByAccountID(ctx, workplaceID, accountID, limit+1, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account transactions", slog.String("account_id", accountID))
		return nil, err
	}

	res := &dto.ListTransactionsResponse{}
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{JournalDate: last.JournalDate, CreatedAt: last.CreatedAt, ID: last.TransactionID})
		res.NextToken = &token
	}
	res.Transactions = dto.ToTransactionResponses(txns)
	return res, nil
}

// publish sends a journal event. Delivery failures are logged and never fail the request.
func (s *journalService) publish(ctx context.Context, eventType events.EventType, journal domain.Journal, userID string, at time.Time) {
	if err := s.publisher.Publish(ctx, events.NewJournalEvent(eventType, journal, userID, at)); err != nil {
		s.LogError(ctx, err, "Failed to publish journal event",
			slog.String("event_type", string(eventType)),
			slog.String("journal_id", journal.JournalID))
	}
}

func decodeCursor(token *string) (*pagination.Cursor, error) {
	if token == nil || *token == "" {
		return nil, nil
	}
	cursor, err := pagination.DecodeToken(*token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return &cursor, nil
}
