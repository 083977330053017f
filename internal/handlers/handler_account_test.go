package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/apperrors"
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	portssvc "github.com/SscSPs/fiscal_balance/internal/core/ports/services"
	"github.com/SscSPs/fiscal_balance/internal/core/services"
	"github.com/SscSPs/fiscal_balance/internal/dto"
	"github.com/SscSPs/fiscal_balance/internal/handlers"
	"github.com/SscSPs/fiscal_balance/internal/platform/config"
	"github.com/SscSPs/fiscal_balance/internal/utils/accounting"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, workplaceID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, workplaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByID(ctx context.Context, workplaceID string, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, workplaceID, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountWithBalance(ctx context.Context, workplaceID string, accountID string, userID string) (*dto.AccountWithBalance, error) {
	args := m.Called(ctx, workplaceID, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountWithBalance), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, workplaceID string, userID string, params dto.ListAccountsParams) ([]dto.AccountWithBalance, error) {
	args := m.Called(ctx, workplaceID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AccountWithBalance), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, workplaceID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, workplaceID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) CalculateAccountBalance(ctx context.Context, workplaceID string, accountID string, userID string, asOf time.Time) (*dto.AccountBalanceResponse, error) {
	args := m.Called(ctx, workplaceID, accountID, userID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountBalanceResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) CreateJournal(ctx context.Context, workplaceID string, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error) {
	args := m.Called(ctx, workplaceID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) GetJournalByID(ctx context.Context, workplaceID string, journalID string, requestingUserID string) (*domain.Journal, error) {
	args := m.Called(ctx, workplaceID, journalID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) ListJournals(ctx context.Context, workplaceID string, userID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	args := m.Called(ctx, workplaceID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalsResponse), args.Error(1)
}
func (m *MockJournalService) UpdateJournal(ctx context.Context, workplaceID string, journalID string, req dto.UpdateJournalRequest, requestingUserID string) (*domain.Journal, error) {
	args := m.Called(ctx, workplaceID, journalID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) PostJournal(ctx context.Context, workplaceID string, journalID string, requestingUserID string) (*domain.Journal, error) {
	args := m.Called(ctx, workplaceID, journalID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) ReverseJournal(ctx context.Context, workplaceID string, journalID string, userID string, req dto.ReverseJournalRequest) (*domain.Journal, error) {
	args := m.Called(ctx, workplaceID, journalID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) ListTransactionsByAccount(ctx context.Context, workplaceID string, accountID string, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, workplaceID, accountID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	tokens             portssvc.TokenSvcFacade
	mockAccountService *MockAccountService
	mockJournalService *MockJournalService
	workplaceID        string
	userID             string
}

// testConfig returns the settings the handler tests run with.
func testConfig() *config.Config {
	return &config.Config{
		IsProduction:      true,
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "fiscal-balance-test",
		LoginRateLimit:    "1000-M",
	}
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	suite.tokens = services.NewTokenService(cfg)
	suite.mockAccountService = new(MockAccountService)
	suite.mockJournalService = new(MockJournalService)
	suite.workplaceID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.router = gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
		Journal: suite.mockJournalService,
		Token:   suite.tokens,
	}))
}

func (suite *AccountHandlerTestSuite) TearDownTest() {
	suite.mockAccountService.AssertExpectations(suite.T())
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, fmt.Sprintf("/api/v1/workplaces/%s%s", suite.workplaceID, path), &payload)
	token, _, err := suite.tokens.GenerateAccessToken(context.Background(), &domain.User{UserID: suite.userID})
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AccountHandlerTestSuite) decodeError(w *httptest.ResponseRecorder) handlers.ErrorResponse {
	var res handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestListTransactionsByAccount_Success() {
	accountID := uuid.NewString()
	limit := 10

	expectedTransactions := []dto.TransactionResponse{
		{
			TransactionID:   uuid.NewString(),
			JournalID:       uuid.NewString(),
			AccountID:       accountID,
			Amount:          decimal.NewFromInt(100),
			TransactionType: domain.Debit,
			CurrencyCode:    "USD",
			CreatedAt:       time.Now(),
		},
		{
			TransactionID:   uuid.NewString(),
			JournalID:       uuid.NewString(),
			AccountID:       accountID,
			Amount:          decimal.NewFromInt(50),
			TransactionType: domain.Credit,
			CurrencyCode:    "USD",
			CreatedAt:       time.Now().Add(-time.Hour),
		},
	}
	next := "next-page"
	suite.mockJournalService.On("ListTransactionsByAccount",
		mock.Anything,
		suite.workplaceID,
		accountID,
		suite.userID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool { return p.Limit == limit && p.NextToken == nil }),
	).Return(&dto.ListTransactionsResponse{Transactions: expectedTransactions, NextToken: &next}, nil).Once()

	w := suite.do(http.MethodGet, fmt.Sprintf("/accounts/%s/transactions?limit=%d", accountID, limit), nil)

	suite.Equal(http.StatusOK, w.Code)
	var responseBody dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Require().Len(responseBody.Transactions, 2)
	suite.Equal(expectedTransactions[0].TransactionID, responseBody.Transactions[0].TransactionID)
	suite.Equal(expectedTransactions[1].TransactionID, responseBody.Transactions[1].TransactionID)
	suite.Require().NotNil(responseBody.NextToken)
	suite.Equal(next, *responseBody.NextToken)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts")
}

func (suite *AccountHandlerTestSuite) TestListTransactionsByAccount_LimitTooLarge() {
	w := suite.do(http.MethodGet, "/accounts/acc/transactions?limit=1000", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(handlers.CodeValidation, suite.decodeError(w).Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_ReturnsDisplayBalance() {
	account := dto.AccountWithBalance{
		Account:    domain.Account{AccountID: "acc-rev", WorkplaceID: suite.workplaceID, Name: "Sales", AccountType: domain.Revenue, CurrencyCode: "USD", IsActive: true},
		RawBalance: decimal.NewFromInt(-100),
	}
	suite.mockAccountService.On("GetAccountWithBalance", mock.Anything, suite.workplaceID, "acc-rev", suite.userID).Return(&account, nil).Once()

	w := suite.do(http.MethodGet, "/accounts/acc-rev", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var res dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(decimal.NewFromInt(-100).Equal(res.RawBalance))
	suite.True(decimal.NewFromInt(100).Equal(res.Balance))
	suite.Equal(1, res.BalanceSign)
	suite.Equal(accounting.BalancePositive, res.BalanceClass)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_ErrorMapping() {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", apperrors.NewNotFoundError("account not found"), http.StatusNotFound, handlers.CodeNotFound},
		{"forbidden", fmt.Errorf("get account: %w", apperrors.ErrForbidden), http.StatusForbidden, handlers.CodeForbidden},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError, handlers.CodeInternal},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			accountID := uuid.NewString()
			suite.mockAccountService.On("GetAccountWithBalance", mock.Anything, suite.workplaceID, accountID, suite.userID).Return(nil, tc.err).Once()

			w := suite.do(http.MethodGet, "/accounts/"+accountID, nil)

			suite.Equal(tc.status, w.Code)
			res := suite.decodeError(w)
			suite.Equal(tc.code, res.Code)
			if tc.status == http.StatusInternalServerError {
				suite.NotContains(res.Error, "connection reset")
			}
		})
	}
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance_ParsesAsOf() {
	asOf := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.mockAccountService.On("CalculateAccountBalance", mock.Anything, suite.workplaceID, "acc-cash", suite.userID, asOf).
		Return(&dto.AccountBalanceResponse{AccountID: "acc-cash", Balance: decimal.NewFromInt(60), Formatted: "60.00"}, nil).Once()

	w := suite.do(http.MethodGet, "/accounts/acc-cash/balance?asOf=2024-03-31", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var res dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("60.00", res.Formatted)
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance_NoAsOfMeansAllTime() {
	suite.mockAccountService.On("CalculateAccountBalance", mock.Anything, suite.workplaceID, "acc-cash", suite.userID, time.Time{}).
		Return(&dto.AccountBalanceResponse{AccountID: "acc-cash"}, nil).Once()

	w := suite.do(http.MethodGet, "/accounts/acc-cash/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance_InvalidAsOf() {
	w := suite.do(http.MethodGet, "/accounts/acc-cash/balance?asOf=31-03-2024", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CalculateAccountBalance")
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{Name: "Cash", AccountType: domain.Asset, CurrencyCode: "USD"}
	created := &domain.Account{AccountID: "acc-new", WorkplaceID: suite.workplaceID, Name: "Cash", AccountType: domain.Asset, CurrencyCode: "USD", IsActive: true}
	suite.mockAccountService.On("CreateAccount", mock.Anything, suite.workplaceID, req, suite.userID).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/accounts", req)

	suite.Require().Equal(http.StatusCreated, w.Code)
	var res dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("acc-new", res.AccountID)
	suite.True(res.Balance.IsZero())
	suite.Equal(accounting.BalanceZero, res.BalanceClass)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_BindingFailure() {
	w := suite.do(http.MethodPost, "/accounts", map[string]string{"accountType": "CASH", "currencyCode": "usd"})

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	var res handlers.BindingErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(handlers.CodeValidation, res.Code)
	suite.NotEmpty(res.Fields)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestUpdateAccount_ImmutableField() {
	eur := "EUR"
	suite.mockAccountService.On("UpdateAccount", mock.Anything, suite.workplaceID, "acc-cash",
		mock.MatchedBy(func(r dto.UpdateAccountRequest) bool { return r.CurrencyCode != nil }), suite.userID).
		Return(nil, fmt.Errorf("%w: currencyCode cannot be changed", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPut, "/accounts/acc-cash", dto.UpdateAccountRequest{CurrencyCode: &eur})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(handlers.CodeValidation, suite.decodeError(w).Code)
}

func (suite *AccountHandlerTestSuite) TestMissingToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/workplaces/"+suite.workplaceID+"/accounts", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
