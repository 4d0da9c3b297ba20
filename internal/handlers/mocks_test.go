package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ChartService ---
type MockChartService struct {
	mock.Mock
}

var _ portssvc.ChartSvc = (*MockChartService)(nil)

func (m *MockChartService) ListAccounts(ctx context.Context, accountType domain.AccountType, subType domain.AccountSubType) ([]domain.Account, error) {
	args := m.Called(ctx, accountType, subType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockChartService) GetAccount(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockChartService) MapExpenseCategory(ctx context.Context, category string) domain.Account {
	return m.Called(ctx, category).Get(0).(domain.Account)
}

func (m *MockChartService) MapPaymentType(ctx context.Context, paymentType string) domain.Account {
	return m.Called(ctx, paymentType).Get(0).(domain.Account)
}

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) entries(args mock.Arguments) ([]domain.JournalEntry, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) RecordPayment(ctx context.Context, tenantID, paymentID, userID string) ([]domain.JournalEntry, error) {
	return m.entries(m.Called(ctx, tenantID, paymentID, userID))
}

func (m *MockJournalService) RecordExpense(ctx context.Context, tenantID, expenseID, userID string) ([]domain.JournalEntry, error) {
	return m.entries(m.Called(ctx, tenantID, expenseID, userID))
}

func (m *MockJournalService) RecordInvoice(ctx context.Context, tenantID, invoiceID, userID string) ([]domain.JournalEntry, error) {
	return m.entries(m.Called(ctx, tenantID, invoiceID, userID))
}

func (m *MockJournalService) RecordDeposit(ctx context.Context, tenantID, leaseID, userID string) ([]domain.JournalEntry, error) {
	return m.entries(m.Called(ctx, tenantID, leaseID, userID))
}

func (m *MockJournalService) ListEntries(ctx context.Context, tenantID string, from, to time.Time) ([]domain.JournalEntry, error) {
	return m.entries(m.Called(ctx, tenantID, from, to))
}

func (m *MockJournalService) EntriesForReference(ctx context.Context, tenantID string, refType domain.ReferenceType, refID string) ([]domain.JournalEntry, error) {
	return m.entries(m.Called(ctx, tenantID, refType, refID))
}

func (m *MockJournalService) AccountBalance(ctx context.Context, tenantID, code string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, code, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockJournalService) TrialBalance(ctx context.Context, tenantID string, asOf time.Time) (*domain.TrialBalance, error) {
	args := m.Called(ctx, tenantID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

func (m *MockReportingService) IncomeStatement(ctx context.Context, tenantID string, from, to time.Time) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context, tenantID string, asOf time.Time) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, tenantID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

func (m *MockReportingService) CashFlowStatement(ctx context.Context, tenantID string, from, to time.Time) (*domain.CashFlowStatement, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowStatement), args.Error(1)
}

func (m *MockReportingService) PropertyPerformance(ctx context.Context, tenantID, propertyID string, from, to time.Time) (*domain.PropertyPerformance, error) {
	args := m.Called(ctx, tenantID, propertyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyPerformance), args.Error(1)
}

func (m *MockReportingService) TransactionSummary(ctx context.Context, tenantID string, from, to time.Time) (*domain.TransactionSummary, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionSummary), args.Error(1)
}
