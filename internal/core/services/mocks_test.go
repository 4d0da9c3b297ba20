package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalEntryRepository ---
type MockJournalEntryRepository struct {
	mock.Mock
}

var _ portsrepo.JournalEntryRepositoryFacade = (*MockJournalEntryRepository)(nil)

func (m *MockJournalEntryRepository) SaveEntries(ctx context.Context, entries []domain.JournalEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockJournalEntryRepository) FindEntriesByReference(ctx context.Context, tenantID string, refType domain.ReferenceType, refID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, refType, refID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) ListEntries(ctx context.Context, tenantID string, from, to time.Time) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) ListEntriesUpTo(ctx context.Context, tenantID string, asOf time.Time) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Mock SourceRecordRepository ---
type MockSourceRecordRepository struct {
	mock.Mock
}

var _ portsrepo.SourceRecordRepositoryFacade = (*MockSourceRecordRepository)(nil)

func (m *MockSourceRecordRepository) ListPayments(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockSourceRecordRepository) FindPayment(ctx context.Context, tenantID, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, tenantID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockSourceRecordRepository) ListExpenses(ctx context.Context, tenantID string) ([]domain.Expense, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockSourceRecordRepository) FindExpense(ctx context.Context, tenantID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, tenantID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockSourceRecordRepository) ListLeases(ctx context.Context, tenantID string) ([]domain.Lease, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lease), args.Error(1)
}

func (m *MockSourceRecordRepository) FindLease(ctx context.Context, tenantID, leaseID string) (*domain.Lease, error) {
	args := m.Called(ctx, tenantID, leaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lease), args.Error(1)
}

func (m *MockSourceRecordRepository) ListUnits(ctx context.Context, tenantID string) ([]domain.Unit, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Unit), args.Error(1)
}

func (m *MockSourceRecordRepository) FindProperty(ctx context.Context, tenantID, propertyID string) (*domain.Property, error) {
	args := m.Called(ctx, tenantID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockSourceRecordRepository) FindInvoice(ctx context.Context, tenantID, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, tenantID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// --- Mock Publisher ---
type MockPublisher struct {
	mock.Mock
}

var _ events.Publisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(ctx context.Context, key string, event any) error {
	args := m.Called(ctx, key, event)
	return args.Error(0)
}
