package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/apperrors"
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	portssvc "github.com/SscSPs/fiscal_balance/internal/core/ports/services"
	"github.com/SscSPs/fiscal_balance/internal/core/services"
	"github.com/SscSPs/fiscal_balance/internal/dto"
	"github.com/SscSPs/fiscal_balance/internal/platform/config"
	"github.com/SscSPs/fiscal_balance/internal/platform/events"
	"github.com/SscSPs/fiscal_balance/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	readerID   = "user-ro"
	cashID     = "acc-cash"
	revenueID  = "acc-revenue"
	yenID      = "acc-yen"
	dormantID  = "acc-dormant"
	expensesID = "acc-expenses"
)

// ledgerFixture wires the real services over the in-memory store.
type ledgerFixture struct {
	store     *memory.Store
	svc       *portssvc.ServiceContainer
	publisher *MockPublisher
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	audit := domain.NewAuditFields(testUserID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, store.SaveUser(ctx, domain.User{UserID: testUserID, Email: "owner@example.com", Name: "Owner", AuditFields: audit}))
	require.NoError(t, store.SaveUser(ctx, domain.User{UserID: readerID, Email: "reader@example.com", Name: "Reader", AuditFields: audit}))
	require.NoError(t, store.SaveCurrency(ctx, domain.Currency{CurrencyCode: "USD", Name: "US Dollar", Precision: 2, AuditFields: audit}))
	require.NoError(t, store.SaveCurrency(ctx, domain.Currency{CurrencyCode: "JPY", Name: "Japanese Yen", Precision: 0, AuditFields: audit}))
	require.NoError(t, store.SaveWorkplace(ctx,
		domain.Workplace{WorkplaceID: testWorkplaceID, Name: "Books", DefaultCurrencyCode: "USD", IsActive: true, AuditFields: audit},
		domain.UserWorkplace{UserID: testUserID, WorkplaceID: testWorkplaceID, Role: domain.RoleAdmin}))
	require.NoError(t, store.AddUserToWorkplace(ctx, domain.UserWorkplace{UserID: readerID, WorkplaceID: testWorkplaceID, Role: domain.RoleReadOnly}))

	accounts := []domain.Account{
		{AccountID: cashID, Name: "Cash", AccountType: domain.Asset, CurrencyCode: "USD", IsActive: true},
		{AccountID: revenueID, Name: "Sales", AccountType: domain.Revenue, CurrencyCode: "USD", IsActive: true},
		{AccountID: expensesID, Name: "Rent", AccountType: domain.Expense, CurrencyCode: "USD", IsActive: true},
		{AccountID: yenID, Name: "Yen wallet", AccountType: domain.Asset, CurrencyCode: "JPY", IsActive: true},
		{AccountID: dormantID, Name: "Old bank", AccountType: domain.Asset, CurrencyCode: "USD", IsActive: false},
	}
	for _, acc := range accounts {
		acc.WorkplaceID = testWorkplaceID
		acc.AuditFields = audit
		require.NoError(t, store.SaveAccount(ctx, acc))
	}

	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	cfg := &config.Config{JWTSecret: "test", JWTExpiryDuration: time.Hour}

	return &ledgerFixture{
		store:     store,
		svc:       services.NewServiceContainer(cfg, memory.NewRepositoryProvider(store), publisher),
		publisher: publisher,
	}
}

func (f *ledgerFixture) publishedTypes() []events.EventType {
	var types []events.EventType
	for _, call := range f.publisher.Calls {
		if call.Method == "Publish" {
			types = append(types, call.Arguments.Get(1).(events.JournalEvent).Type)
		}
	}
	return types
}

func leg(accountID, amount string, side domain.TransactionType) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{AccountID: accountID, Amount: decimal.RequireFromString(amount), TransactionType: side}
}

func sale(date, amount string) dto.CreateJournalRequest {
	return dto.CreateJournalRequest{
		Date:         date,
		Description:  "Cash sale",
		CurrencyCode: "USD",
		Transactions: []dto.CreateTransactionRequest{
			leg(cashID, amount, domain.Debit),
			leg(revenueID, amount, domain.Credit),
		},
	}
}

func requireViolation(t *testing.T, err error, rule apperrors.ValidationRule, legIndex int) {
	t.Helper()
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	for _, v := range verr.Violations {
		if v.Rule == rule && v.LegIndex == legIndex {
			return
		}
	}
	t.Fatalf("no %s violation on leg %d in %+v", rule, legIndex, verr.Violations)
}

type JournalServiceTestSuite struct {
	suite.Suite
	f   *ledgerFixture
	ctx context.Context
}

func (s *JournalServiceTestSuite) SetupTest() {
	s.f = newLedgerFixture(s.T())
	s.ctx = context.Background()
}

func (s *JournalServiceTestSuite) balance(accountID string) dto.AccountBalanceResponse {
	res, err := s.f.svc.Account.CalculateAccountBalance(s.ctx, testWorkplaceID, accountID, testUserID, time.Time{})
	s.Require().NoError(err)
	return *res
}

func (s *JournalServiceTestSuite) TestCreateJournal_PostsBalancedSale() {
	j, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, sale("2024-03-01", "100.00"), testUserID)

	s.Require().NoError(err)
	s.Equal(domain.Posted, j.Status)
	s.Len(j.Transactions, 2)
	s.True(decimal.NewFromInt(100).Equal(j.Amount))
	for _, txn := range j.Transactions {
		s.Equal("USD", txn.CurrencyCode)
		s.Equal(j.JournalID, txn.JournalID)
	}

	cash, revenue := s.balance(cashID), s.balance(revenueID)
	s.True(decimal.NewFromInt(100).Equal(cash.RawBalance))
	s.True(decimal.NewFromInt(-100).Equal(revenue.RawBalance))
	s.True(decimal.NewFromInt(100).Equal(revenue.Balance), "revenue shows growth as positive")
	s.Equal([]events.EventType{events.JournalCreated}, s.f.publishedTypes())
}

func (s *JournalServiceTestSuite) TestCreateJournal_RejectsUnbalanced() {
	req := sale("2024-03-01", "100")
	req.Transactions[1].Amount = decimal.RequireFromString("90")

	_, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, req, testUserID)

	requireViolation(s.T(), err, apperrors.RuleBalance, apperrors.NoLeg)
	s.True(s.balance(cashID).RawBalance.IsZero(), "rejected journal leaves no trace")
	s.Empty(s.f.publishedTypes())
}

func (s *JournalServiceTestSuite) TestCreateJournal_RejectsSingleLeg() {
	req := sale("2024-03-01", "10")
	req.Transactions = req.Transactions[:1]

	_, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, req, testUserID)

	requireViolation(s.T(), err, apperrors.RuleMinLegs, apperrors.NoLeg)
}

func (s *JournalServiceTestSuite) TestCreateJournal_MinorUnitTolerance() {
	within := sale("2024-03-01", "50.00")
	within.Transactions[1].Amount = decimal.RequireFromString("49.99")
	_, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, within, testUserID)
	s.NoError(err)

	beyond := sale("2024-03-01", "50.00")
	beyond.Transactions[1].Amount = decimal.RequireFromString("49.98")
	_, err = s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, beyond, testUserID)
	requireViolation(s.T(), err, apperrors.RuleBalance, apperrors.NoLeg)
}

func (s *JournalServiceTestSuite) TestCreateJournal_AccountChecks() {
	cases := map[string]struct {
		accountID string
		rule      apperrors.ValidationRule
	}{
		"unknown account":   {"acc-missing", apperrors.RuleLegAccount},
		"inactive account":  {dormantID, apperrors.RuleLegAccount},
		"currency mismatch": {yenID, apperrors.RuleCurrency},
	}
	for name, tc := range cases {
		s.Run(name, func() {
			req := sale("2024-03-01", "10")
			req.Transactions[1].AccountID = tc.accountID

			_, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, req, testUserID)

			s.ErrorIs(err, apperrors.ErrValidation)
			requireViolation(s.T(), err, tc.rule, 1)
		})
	}
}

func (s *JournalServiceTestSuite) TestCreateJournal_ReportsEveryViolationInRuleOrder() {
	req := dto.CreateJournalRequest{
		Date:         "not-a-date",
		CurrencyCode: "USD",
		Transactions: []dto.CreateTransactionRequest{leg("acc-missing", "-1", "SIDEWAYS")},
	}

	_, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, req, testUserID)

	var verr *apperrors.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal(apperrors.RuleDate, verr.First().Rule)
	s.True(verr.HasRule(apperrors.RuleMinLegs))
	s.True(verr.HasRule(apperrors.RuleLegAccount))
	s.True(verr.HasRule(apperrors.RuleLegAmount))
	s.True(verr.HasRule(apperrors.RuleLegType))
}

func (s *JournalServiceTestSuite) TestCreateJournal_LegViolationsFollowLegOrder() {
	req := sale("2024-03-01", "10")
	req.Transactions[0].Amount = decimal.NewFromInt(-1)
	req.Transactions[1].AccountID = "acc-missing"

	_, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, req, testUserID)

	var verr *apperrors.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Require().Len(verr.Violations, 3)
	s.Equal(apperrors.RuleLegAmount, verr.Violations[0].Rule)
	s.Equal(0, verr.Violations[0].LegIndex)
	s.Equal(apperrors.RuleLegAccount, verr.Violations[1].Rule)
	s.Equal(1, verr.Violations[1].LegIndex)
	s.Equal(apperrors.RuleBalance, verr.Violations[2].Rule)
}

func (s *JournalServiceTestSuite) TestCreateJournal_UnknownCurrency() {
	req := sale("2024-03-01", "10")
	req.CurrencyCode = "XAU"

	_, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, req, testUserID)

	requireViolation(s.T(), err, apperrors.RuleCurrency, apperrors.NoLeg)
}

func (s *JournalServiceTestSuite) TestCreateJournal_StatusRules() {
	req := sale("2024-03-01", "10")
	req.Status = domain.Reversed
	_, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, req, testUserID)
	s.ErrorIs(err, apperrors.ErrValidation)

	req.Status = "draft"
	j, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, req, testUserID)
	s.Require().NoError(err)
	s.Equal(domain.Draft, j.Status)
	s.True(s.balance(cashID).RawBalance.IsZero(), "drafts do not count")
}

func (s *JournalServiceTestSuite) TestCreateJournal_ReadOnlyMemberIsForbidden() {
	_, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, sale("2024-03-01", "10"), readerID)
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, sale("2024-03-01", "10"), "stranger")
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.f.svc.Journal.CreateJournal(s.ctx, "wp-missing", sale("2024-03-01", "10"), testUserID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *JournalServiceTestSuite) TestCreateJournal_PublishFailureIsNotFatal() {
	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
	repos := memory.NewRepositoryProvider(s.f.store)
	svc := services.NewServiceContainer(&config.Config{}, repos, publisher)

	_, err := svc.Journal.CreateJournal(s.ctx, testWorkplaceID, sale("2024-03-01", "10"), testUserID)

	s.NoError(err)
	publisher.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestDraftLifecycle() {
	draftReq := sale("2024-03-01", "10")
	draftReq.Status = domain.Draft
	draft, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, draftReq, testUserID)
	s.Require().NoError(err)

	update := dto.UpdateJournalRequest{
		Date:         "2024-03-02",
		Description:  "Rent",
		CurrencyCode: "USD",
		Transactions: []dto.CreateTransactionRequest{leg(expensesID, "25", domain.Debit), leg(cashID, "25", domain.Credit)},
	}
	updated, err := s.f.svc.Journal.UpdateJournal(s.ctx, testWorkplaceID, draft.JournalID, update, testUserID)
	s.Require().NoError(err)
	s.Equal(domain.Draft, updated.Status)
	s.Equal(draft.CreatedAt, updated.CreatedAt)
	s.True(decimal.NewFromInt(25).Equal(updated.Amount))

	posted, err := s.f.svc.Journal.PostJournal(s.ctx, testWorkplaceID, draft.JournalID, testUserID)
	s.Require().NoError(err)
	s.Equal(domain.Posted, posted.Status)
	s.True(decimal.NewFromInt(-25).Equal(s.balance(cashID).RawBalance))

	_, err = s.f.svc.Journal.UpdateJournal(s.ctx, testWorkplaceID, draft.JournalID, update, testUserID)
	s.ErrorIs(err, apperrors.ErrConflict)
	_, err = s.f.svc.Journal.PostJournal(s.ctx, testWorkplaceID, draft.JournalID, testUserID)
	s.ErrorIs(err, apperrors.ErrConflict)

	s.Equal([]events.EventType{events.JournalCreated, events.JournalUpdated, events.JournalPosted}, s.f.publishedTypes())
}

func (s *JournalServiceTestSuite) TestPostJournal_RevalidatesAccounts() {
	draftReq := sale("2024-03-01", "10")
	draftReq.Status = domain.Draft
	draft, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, draftReq, testUserID)
	s.Require().NoError(err)

	inactive := false
	_, err = s.f.svc.Account.UpdateAccount(s.ctx, testWorkplaceID, revenueID, dto.UpdateAccountRequest{IsActive: &inactive}, testUserID)
	s.Require().NoError(err)

	_, err = s.f.svc.Journal.PostJournal(s.ctx, testWorkplaceID, draft.JournalID, testUserID)
	requireViolation(s.T(), err, apperrors.RuleLegAccount, 1)
}

func (s *JournalServiceTestSuite) TestReverseJournal_CancelsOriginal() {
	original, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, sale("2024-03-01", "100"), testUserID)
	s.Require().NoError(err)

	reversal, err := s.f.svc.Journal.ReverseJournal(s.ctx, testWorkplaceID, original.JournalID, testUserID, dto.ReverseJournalRequest{})
	s.Require().NoError(err)

	s.Require().NotNil(reversal.OriginalJournalID)
	s.Equal(original.JournalID, *reversal.OriginalJournalID)
	s.Equal(domain.Posted, reversal.Status)
	s.Equal("Reversal of Journal: Cash sale", reversal.Description)
	s.Require().Len(reversal.Transactions, 2)
	s.Equal(domain.Credit, reversal.Transactions[0].TransactionType)
	s.Equal(domain.Debit, reversal.Transactions[1].TransactionType)

	stored, err := s.f.svc.Journal.GetJournalByID(s.ctx, testWorkplaceID, original.JournalID, readerID)
	s.Require().NoError(err)
	s.Equal(domain.Reversed, stored.Status)
	s.Require().NotNil(stored.ReversingJournalID)
	s.Equal(reversal.JournalID, *stored.ReversingJournalID)

	s.True(s.balance(cashID).RawBalance.IsZero())
	s.True(s.balance(revenueID).RawBalance.IsZero())

	_, err = s.f.svc.Journal.ReverseJournal(s.ctx, testWorkplaceID, original.JournalID, testUserID, dto.ReverseJournalRequest{})
	s.ErrorIs(err, apperrors.ErrAlreadyReversed)

	_, err = s.f.svc.Journal.ReverseJournal(s.ctx, testWorkplaceID, reversal.JournalID, testUserID, dto.ReverseJournalRequest{})
	s.ErrorIs(err, apperrors.ErrCannotReverseReversal)
}

func (s *JournalServiceTestSuite) TestReverseJournal_Overrides() {
	original, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, sale("2024-03-01", "10"), testUserID)
	s.Require().NoError(err)

	date, desc := "2024-04-15", "Refund"
	reversal, err := s.f.svc.Journal.ReverseJournal(s.ctx, testWorkplaceID, original.JournalID, testUserID,
		dto.ReverseJournalRequest{Date: &date, Description: &desc})
	s.Require().NoError(err)
	s.Equal("2024-04-15", reversal.JournalDate.Format("2006-01-02"))
	s.Equal("Refund", reversal.Description)

	bad := "15/04/2024"
	_, err = s.f.svc.Journal.ReverseJournal(s.ctx, testWorkplaceID, original.JournalID, testUserID, dto.ReverseJournalRequest{Date: &bad})
	requireViolation(s.T(), err, apperrors.RuleDate, apperrors.NoLeg)
}

func (s *JournalServiceTestSuite) TestReverseJournal_RejectsDraftAndMissing() {
	draftReq := sale("2024-03-01", "10")
	draftReq.Status = domain.Draft
	draft, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, draftReq, testUserID)
	s.Require().NoError(err)

	_, err = s.f.svc.Journal.ReverseJournal(s.ctx, testWorkplaceID, draft.JournalID, testUserID, dto.ReverseJournalRequest{})
	s.ErrorIs(err, apperrors.ErrConflict)

	_, err = s.f.svc.Journal.ReverseJournal(s.ctx, testWorkplaceID, "missing", testUserID, dto.ReverseJournalRequest{})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *JournalServiceTestSuite) TestReverseJournal_ConcurrentCallersProduceOneReversal() {
	original, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, sale("2024-03-01", "10"), testUserID)
	s.Require().NoError(err)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.f.svc.Journal.ReverseJournal(s.ctx, testWorkplaceID, original.JournalID, testUserID, dto.ReverseJournalRequest{})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, apperrors.ErrConflict)
	}
	s.Equal(1, succeeded)

	page, err := s.f.svc.Journal.ListJournals(s.ctx, testWorkplaceID, testUserID, dto.ListJournalsParams{IncludeReversals: true})
	s.Require().NoError(err)
	s.Len(page.Journals, 2)
	s.True(s.balance(cashID).RawBalance.IsZero())
}

func (s *JournalServiceTestSuite) TestListJournals_Pagination() {
	for _, date := range []string{"2024-03-01", "2024-03-02", "2024-03-03"} {
		_, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, sale(date, "1"), testUserID)
		s.Require().NoError(err)
	}

	first, err := s.f.svc.Journal.ListJournals(s.ctx, testWorkplaceID, readerID, dto.ListJournalsParams{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(first.Journals, 2)
	s.Equal("2024-03-03", first.Journals[0].Date)
	s.Equal("2024-03-02", first.Journals[1].Date)
	s.Empty(first.Journals[0].Transactions)
	s.Require().NotNil(first.NextToken)

	second, err := s.f.svc.Journal.ListJournals(s.ctx, testWorkplaceID, readerID, dto.ListJournalsParams{Limit: 2, NextToken: first.NextToken, IncludeTransactions: true})
	s.Require().NoError(err)
	s.Require().Len(second.Journals, 1)
	s.Equal("2024-03-01", second.Journals[0].Date)
	s.Len(second.Journals[0].Transactions, 2)
	s.Nil(second.NextToken)

	bad := "%%%"
	_, err = s.f.svc.Journal.ListJournals(s.ctx, testWorkplaceID, readerID, dto.ListJournalsParams{NextToken: &bad})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *JournalServiceTestSuite) TestListJournals_HidesReversalsByDefault() {
	original, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, sale("2024-03-01", "10"), testUserID)
	s.Require().NoError(err)
	_, err = s.f.svc.Journal.ReverseJournal(s.ctx, testWorkplaceID, original.JournalID, testUserID, dto.ReverseJournalRequest{})
	s.Require().NoError(err)

	page, err := s.f.svc.Journal.ListJournals(s.ctx, testWorkplaceID, testUserID, dto.ListJournalsParams{})
	s.Require().NoError(err)
	s.Require().Len(page.Journals, 1)
	s.Equal(original.JournalID, page.Journals[0].JournalID)
	s.Equal(domain.Reversed, page.Journals[0].Status)
}

func (s *JournalServiceTestSuite) TestListTransactionsByAccount() {
	original, err := s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, sale("2024-03-01", "10"), testUserID)
	s.Require().NoError(err)
	_, err = s.f.svc.Journal.ReverseJournal(s.ctx, testWorkplaceID, original.JournalID, testUserID, dto.ReverseJournalRequest{})
	s.Require().NoError(err)
	draftReq := sale("2024-03-05", "99")
	draftReq.Status = domain.Draft
	_, err = s.f.svc.Journal.CreateJournal(s.ctx, testWorkplaceID, draftReq, testUserID)
	s.Require().NoError(err)

	page, err := s.f.svc.Journal.ListTransactionsByAccount(s.ctx, testWorkplaceID, cashID, readerID, dto.ListTransactionsParams{Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(page.Transactions, 1)
	s.Require().NotNil(page.NextToken)

	rest, err := s.f.svc.Journal.ListTransactionsByAccount(s.ctx, testWorkplaceID, cashID, readerID, dto.ListTransactionsParams{Limit: 5, NextToken: page.NextToken})
	s.Require().NoError(err)
	s.Len(rest.Transactions, 1, "draft legs are not listed")
	s.Nil(rest.NextToken)

	_, err = s.f.svc.Journal.ListTransactionsByAccount(s.ctx, testWorkplaceID, "acc-missing", readerID, dto.ListTransactionsParams{})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestJournalService(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func postedJournal() (*domain.Journal, []domain.Transaction) {
	j := &domain.Journal{
		JournalID:    "j-1",
		WorkplaceID:  testWorkplaceID,
		JournalDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description:  "Sale",
		CurrencyCode: "USD",
		Status:       domain.Posted,
		Amount:       decimal.NewFromInt(10),
	}
	legs := []domain.Transaction{
		{TransactionID: "t-1", JournalID: "j-1", AccountID: cashID, Amount: decimal.NewFromInt(10), TransactionType: domain.Debit, CurrencyCode: "USD"},
		{TransactionID: "t-2", JournalID: "j-1", AccountID: revenueID, Amount: decimal.NewFromInt(10), TransactionType: domain.Credit, CurrencyCode: "USD"},
	}
	return j, legs
}

func newMockedJournalService(journals *MockJournalRepository, currencies *MockCurrencyRepository) portssvc.JournalSvcFacade {
	authorizer := new(MockWorkplaceAuthorizer)
	authorizer.On("AuthorizeUserAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	return services.NewJournalService(journals, new(MockAccountRepository), currencies, nil, services.WithWorkplaceAuthorizer(authorizer))
}

func TestReverseJournal_RetriesOnceAfterLostRace(t *testing.T) {
	ctx := context.Background()
	journals, currencies := new(MockJournalRepository), new(MockCurrencyRepository)
	original, legs := postedJournal()
	winner := "j-winner"
	reversedByWinner := *original
	reversedByWinner.Status = domain.Reversed
	reversedByWinner.ReversingJournalID = &winner

	currencies.On("FindCurrencyByCode", ctx, "USD").Return(&domain.Currency{CurrencyCode: "USD", Precision: 2}, nil)
	journals.On("FindJournalByID", ctx, testWorkplaceID, "j-1").Return(original, nil).Once()
	journals.On("FindJournalByID", ctx, testWorkplaceID, "j-1").Return(&reversedByWinner, nil).Once()
	journals.On("FindTransactionsByJournalID", ctx, "j-1").Return(legs, nil).Twice()
	journals.On("SaveReversal", ctx, "j-1", mock.AnythingOfType("domain.Journal"), mock.Anything).Return(apperrors.ErrConcurrencyConflict).Once()

	_, err := newMockedJournalService(journals, currencies).ReverseJournal(ctx, testWorkplaceID, "j-1", testUserID, dto.ReverseJournalRequest{})

	assert.ErrorIs(t, err, apperrors.ErrAlreadyReversed)
	journals.AssertExpectations(t)
	journals.AssertNumberOfCalls(t, "SaveReversal", 1)
}

func TestReverseJournal_GivesUpAfterSecondConflict(t *testing.T) {
	ctx := context.Background()
	journals, currencies := new(MockJournalRepository), new(MockCurrencyRepository)
	original, legs := postedJournal()

	currencies.On("FindCurrencyByCode", ctx, "USD").Return(&domain.Currency{CurrencyCode: "USD", Precision: 2}, nil)
	journals.On("FindJournalByID", ctx, testWorkplaceID, "j-1").Return(original, nil)
	journals.On("FindTransactionsByJournalID", ctx, "j-1").Return(legs, nil)
	journals.On("SaveReversal", ctx, "j-1", mock.AnythingOfType("domain.Journal"), mock.Anything).Return(apperrors.ErrConcurrencyConflict)

	_, err := newMockedJournalService(journals, currencies).ReverseJournal(ctx, testWorkplaceID, "j-1", testUserID, dto.ReverseJournalRequest{})

	assert.ErrorIs(t, err, apperrors.ErrConcurrencyConflict)
	journals.AssertNumberOfCalls(t, "SaveReversal", 2)
}

func TestReverseJournal_DoesNotRetryRuleFailures(t *testing.T) {
	ctx := context.Background()
	journals, currencies := new(MockJournalRepository), new(MockCurrencyRepository)
	original, legs := postedJournal()
	source := "j-0"
	original.OriginalJournalID = &source

	journals.On("FindJournalByID", ctx, testWorkplaceID, "j-1").Return(original, nil).Once()
	journals.On("FindTransactionsByJournalID", ctx, "j-1").Return(legs, nil).Once()

	_, err := newMockedJournalService(journals, currencies).ReverseJournal(ctx, testWorkplaceID, "j-1", testUserID, dto.ReverseJournalRequest{})

	assert.ErrorIs(t, err, apperrors.ErrCannotReverseReversal)
	journals.AssertExpectations(t)
	journals.AssertNotCalled(t, "SaveReversal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReverseJournal_CurrencyLookupFailureIsReturned(t *testing.T) {
	ctx := context.Background()
	journals, currencies := new(MockJournalRepository), new(MockCurrencyRepository)
	original, legs := postedJournal()
	dbErr := errors.New("connection reset by peer")

	journals.On("FindJournalByID", ctx, testWorkplaceID, "j-1").Return(original, nil).Once()
	journals.On("FindTransactionsByJournalID", ctx, "j-1").Return(legs, nil).Once()
	currencies.On("FindCurrencyByCode", ctx, "USD").Return(nil, dbErr).Once()

	_, err := newMockedJournalService(journals, currencies).ReverseJournal(ctx, testWorkplaceID, "j-1", testUserID, dto.ReverseJournalRequest{})

	assert.ErrorIs(t, err, dbErr)
	currencies.AssertExpectations(t)
	journals.AssertNotCalled(t, "SaveReversal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
