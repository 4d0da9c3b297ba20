package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/dto"
	"github.com/SscSPs/property_ledger/internal/handlers"
	"github.com/SscSPs/property_ledger/internal/middleware"
	"github.com/SscSPs/property_ledger/internal/utils/spreadsheet"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testTenant = "tenant-42"

type HandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	chartSvc      *MockChartService
	journalSvc    *MockJournalService
	reportingSvc  *MockReportingService
	jwtSecret     string
	requestUserID string
}

// generateTestToken creates a tenant-scoped JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(userID, tenantID string) string {
	claims := middleware.TenantClaims{
		TenantID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "ledger-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.requestUserID = uuid.NewString()

	suite.chartSvc = new(MockChartService)
	suite.journalSvc = new(MockJournalService)
	suite.reportingSvc = new(MockReportingService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret, "ledger-test"))
	handlers.RegisterChartRoutes(v1, suite.chartSvc)
	handlers.RegisterJournalRoutes(v1, suite.journalSvc, suite.chartSvc, "USD")
	handlers.RegisterReportingRoutes(v1, suite.reportingSvc, suite.journalSvc, "USD")
}

func (suite *HandlerTestSuite) do(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.requestUserID, testTenant))
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func day(s string) time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func sameDay(want time.Time) any {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

// --- Chart ---

func (suite *HandlerTestSuite) TestListAccounts_ByType() {
	accounts := []domain.Account{
		{Code: "2000", Name: "Accounts Payable", Type: domain.Liability, SubType: domain.CurrentLiability, IsActive: true},
	}
	suite.chartSvc.On("ListAccounts", mock.Anything, domain.Liability, domain.AccountSubType("")).Return(accounts, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts?type=liability")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Accounts, 1)
	suite.Equal("2000", resp.Accounts[0].Code)
	suite.chartSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListAccounts_InvalidTypeRejectedBeforeService() {
	w := suite.do(http.MethodGet, "/api/v1/accounts?type=bogus")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.chartSvc.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.chartSvc.On("GetAccount", mock.Anything, "9999").Return(nil, fmt.Errorf("account 9999: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/9999")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestMapExpenseCategory() {
	suite.chartSvc.On("MapExpenseCategory", mock.Anything, "pest_control").
		Return(domain.Account{Code: "6900", Name: "Other Expenses", Type: domain.ExpenseAccount}).Once()

	w := suite.do(http.MethodGet, "/api/v1/account-mappings/expense/pest_control")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("6900", resp.Code)
}

// --- Journal ---

func (suite *HandlerTestSuite) TestRecordPayment_Success() {
	entries := []domain.JournalEntry{
		{ID: uuid.NewString(), TenantID: testTenant, TransactionDate: day("2024-03-05"), AccountCode: "1000", EntryType: domain.Debit, Amount: decimal.NewFromInt(1000), ReferenceType: domain.PaymentReference, ReferenceID: "pay-1"},
		{ID: uuid.NewString(), TenantID: testTenant, TransactionDate: day("2024-03-05"), AccountCode: "4000", EntryType: domain.Credit, Amount: decimal.NewFromInt(1000), ReferenceType: domain.PaymentReference, ReferenceID: "pay-1"},
	}
	suite.journalSvc.On("RecordPayment", mock.Anything, testTenant, "pay-1", suite.requestUserID).Return(entries, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal/payments/pay-1")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PostingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.PaymentReference, resp.ReferenceType)
	suite.Equal("pay-1", resp.ReferenceID)
	suite.Require().Len(resp.Entries, 2)
	suite.Equal("2024-03-05", resp.Entries[0].TransactionDate)
	suite.journalSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRecordPayment_PendingReturnsEmptyList() {
	suite.journalSvc.On("RecordPayment", mock.Anything, testTenant, "pay-2", suite.requestUserID).Return([]domain.JournalEntry{}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal/payments/pay-2")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"referenceType":"payment","referenceId":"pay-2","entries":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestPostingErrors() {
	tests := []struct {
		name       string
		method     string
		url        string
		id         string
		err        error
		wantStatus int
	}{
		{name: "expense not found", method: "RecordExpense", url: "/api/v1/journal/expenses/exp-1", id: "exp-1", err: fmt.Errorf("expense exp-1: %w", apperrors.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "invoice conflict", method: "RecordInvoice", url: "/api/v1/journal/invoices/inv-1", id: "inv-1", err: fmt.Errorf("save: %w", apperrors.ErrDuplicate), wantStatus: http.StatusConflict},
		{name: "deposit storage failure", method: "RecordDeposit", url: "/api/v1/journal/deposits/lease-1", id: "lease-1", err: apperrors.NewAppError(500, "db down", nil), wantStatus: http.StatusInternalServerError},
		{name: "unbalanced", method: "RecordPayment", url: "/api/v1/journal/payments/pay-9", id: "pay-9", err: fmt.Errorf("entries do not balance: %w", apperrors.ErrValidation), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.journalSvc.On(tt.method, mock.Anything, testTenant, tt.id, suite.requestUserID).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, tt.url)

			suite.Equal(tt.wantStatus, w.Code)
			suite.NotEmpty(suite.errorBody(w))
		})
	}
	suite.journalSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRecordPayment_RequiresTenantToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/journal/payments/pay-1", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.requestUserID, ""))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.journalSvc.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListEntries() {
	suite.journalSvc.On("ListEntries", mock.Anything, testTenant, sameDay(day("2024-01-01")), sameDay(day("2024-01-31"))).
		Return([]domain.JournalEntry{{ID: "je-1", TransactionDate: day("2024-01-15"), AccountCode: "1000"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journal/entries?fromDate=2024-01-01&toDate=2024-01-31")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListJournalEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 1)
	suite.journalSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListEntries_BadDates() {
	for _, url := range []string{
		"/api/v1/journal/entries?fromDate=2024-01-01",
		"/api/v1/journal/entries?fromDate=01/01/2024&toDate=2024-01-31",
		"/api/v1/journal/entries?fromDate=2024-02-30&toDate=2024-03-01",
	} {
		w := suite.do(http.MethodGet, url)
		suite.Equal(http.StatusBadRequest, w.Code, url)
	}
	suite.journalSvc.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestEntriesForReference_UnknownType() {
	suite.journalSvc.On("EntriesForReference", mock.Anything, testTenant, domain.ReferenceType("receipt"), "r-1").
		Return(nil, fmt.Errorf("unknown reference type: %w", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodGet, "/api/v1/journal/references/receipt/r-1")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAccountBalance() {
	suite.chartSvc.On("GetAccount", mock.Anything, "1000").Return(&domain.Account{Code: "1000", Name: "Cash - Operating", Type: domain.Asset}, nil).Once()
	suite.journalSvc.On("AccountBalance", mock.Anything, testTenant, "1000", sameDay(day("2024-03-31"))).Return(decimal.NewFromInt(700), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journal/balances/1000?asOf=2024-03-31")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Cash - Operating", resp.AccountName)
	suite.Equal("2024-03-31", resp.AsOf)
	suite.Equal("$700.00", resp.Balance.Display)
	suite.True(resp.Balance.Amount.Equal(decimal.NewFromInt(700)))
}

func (suite *HandlerTestSuite) TestAccountBalance_UnknownAccount() {
	suite.chartSvc.On("GetAccount", mock.Anything, "9999").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/journal/balances/9999")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.journalSvc.AssertNotCalled(suite.T(), "AccountBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Reports ---

func (suite *HandlerTestSuite) TestIncomeStatement_UsesRequestedCurrency() {
	from, to := day("2024-01-01"), day("2024-01-31")
	report := &domain.IncomeStatement{
		Period:    domain.NewPeriod(from, to),
		Revenue:   domain.IncomeRevenue{RentalIncome: decimal.NewFromInt(1800), TotalRevenue: decimal.NewFromInt(1800)},
		NetIncome: decimal.NewFromInt(1800),
	}
	suite.reportingSvc.On("IncomeStatement", mock.Anything, testTenant, sameDay(from), sameDay(to)).Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/income-statement?fromDate=2024-01-01&toDate=2024-01-31&currency=eur")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.IncomeStatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("EUR", resp.Currency)
	suite.Equal("2024-01-01", resp.Period.StartDate)
	suite.True(resp.NetIncome.Amount.Equal(decimal.NewFromInt(1800)))
	suite.NotContains(resp.NetIncome.Display, "$")
}

func (suite *HandlerTestSuite) TestIncomeStatement_ReversedPeriod() {
	suite.reportingSvc.On("IncomeStatement", mock.Anything, testTenant, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("period start after end: %w", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/income-statement?fromDate=2024-02-01&toDate=2024-01-01")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestIncomeStatement_UnknownCurrency() {
	w := suite.do(http.MethodGet, "/api/v1/reports/income-statement?fromDate=2024-01-01&toDate=2024-01-31&currency=XYZ")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestBalanceSheet() {
	asOf := day("2024-06-30")
	report := &domain.BalanceSheet{AsOfDate: asOf}
	report.Assets.CurrentAssets.SecurityDeposits = decimal.NewFromInt(1500)
	report.Assets.TotalAssets = decimal.NewFromInt(1500)
	suite.reportingSvc.On("BalanceSheet", mock.Anything, testTenant, sameDay(asOf)).Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/balance-sheet?asOf=2024-06-30")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceSheetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024-06-30", resp.AsOf)
	suite.Equal("$1,500.00", resp.Assets.SecurityDeposits.Display)
}

func (suite *HandlerTestSuite) TestCashFlow() {
	report := &domain.CashFlowStatement{EndingCash: decimal.NewFromInt(1540)}
	suite.reportingSvc.On("CashFlowStatement", mock.Anything, testTenant, mock.Anything, mock.Anything).Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/cash-flow?fromDate=2024-01-01&toDate=2024-03-31")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CashFlowResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("$1,540.00", resp.EndingCash.Display)
}

func (suite *HandlerTestSuite) TestPropertyPerformance_UnknownProperty() {
	suite.reportingSvc.On("PropertyPerformance", mock.Anything, testTenant, "prop-x", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("property prop-x: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/properties/prop-x/performance?fromDate=2024-01-01&toDate=2024-01-31")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestTransactionSummary() {
	report := &domain.TransactionSummary{
		Revenue:  []domain.SummaryLine{{AccountCode: "4000", AccountName: "Rental Income", Amount: decimal.NewFromInt(2000), Count: 2}},
		Expenses: []domain.SummaryLine{},
	}
	suite.reportingSvc.On("TransactionSummary", mock.Anything, testTenant, mock.Anything, mock.Anything).Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/transaction-summary?fromDate=2024-01-01&toDate=2024-01-31")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Revenue, 1)
	suite.Equal("$2,000.00", resp.Revenue[0].Amount.Display)
	suite.NotNil(resp.Expenses)
}

func (suite *HandlerTestSuite) TestTrialBalance_DefaultsToToday() {
	today := domain.DateOnly(time.Now().UTC())
	tb := &domain.TrialBalance{
		AsOfDate:    today,
		Rows:        []domain.TrialBalanceRow{{AccountCode: "1000", AccountName: "Cash - Operating", AccountType: domain.Asset, Debit: decimal.NewFromInt(5)}},
		TotalDebit:  decimal.NewFromInt(5),
		TotalCredit: decimal.NewFromInt(5),
	}
	suite.journalSvc.On("TrialBalance", mock.Anything, testTenant, sameDay(today)).Return(tb, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/trial-balance")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Rows, 1)
	suite.journalSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestTrialBalance_XLSXExport() {
	tb := &domain.TrialBalance{AsOfDate: day("2024-01-31"), Rows: []domain.TrialBalanceRow{}}
	suite.journalSvc.On("TrialBalance", mock.Anything, testTenant, sameDay(day("2024-01-31"))).Return(tb, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/trial-balance?asOf=2024-01-31&format=xlsx")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(spreadsheet.ContentType, w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "trial_balance_2024-01-31.xlsx")
	suite.NotZero(w.Body.Len())
}

func (suite *HandlerTestSuite) TestTrialBalance_UnknownFormat() {
	w := suite.do(http.MethodGet, "/api/v1/reports/trial-balance?format=pdf")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.journalSvc.AssertNotCalled(suite.T(), "TrialBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestTrialBalance_ServiceFailure() {
	suite.journalSvc.On("TrialBalance", mock.Anything, testTenant, mock.Anything).Return(nil, fmt.Errorf("boom")).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/trial-balance?asOf=2024-01-31")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to generate trial balance report", suite.errorBody(w))
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
