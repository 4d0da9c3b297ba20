// Package journal turns business events into balanced ledger postings.
//
// Every Create function returns matched debit/credit pairs sharing one
// reference, so the entries for a reference always balance. The functions do
// no I/O; persisting the result is up to the caller.
package journal

import (
	"time"

	"github.com/SscSPs/property_ledger/internal/core/chart"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Factory builds journal entries. The zero value is not usable; call NewFactory.
type Factory struct {
	newID    func() string
	now      func() time.Time
	registry *chart.Registry
}

// Option is a functional option for configuring a Factory.
type Option func(*Factory)

// WithIDGenerator sets the function used to assign entry IDs.
func WithIDGenerator(fn func() string) Option {
	return func(f *Factory) {
		f.newID = fn
	}
}

// WithClock sets the function used to stamp CreatedAt.
func WithClock(fn func() time.Time) Option {
	return func(f *Factory) {
		f.now = fn
	}
}

// WithRegistry resolves category mappings against r instead of the default chart.
func WithRegistry(r *chart.Registry) Option {
	return func(f *Factory) {
		f.registry = r
	}
}

// NewFactory creates a Factory with random UUIDs, a UTC wall clock and the default chart.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
		registry: chart.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// posting is the information shared by both sides of a pair.
type posting struct {
	tenantID        string
	createdBy       string
	createdAt       time.Time
	transactionDate time.Time
	transactionType domain.TransactionType
	referenceID     string
	referenceType   domain.ReferenceType
	description     string
	currency        string
	propertyID      string
	unitID          string
	notes           string
}

// pair returns a debit to debitCode and a credit to creditCode for amount.
func (f *Factory) pair(p posting, debitCode, creditCode string, amount decimal.Decimal) []domain.JournalEntry {
	return []domain.JournalEntry{
		f.entry(p, debitCode, domain.Debit, amount),
		f.entry(p, creditCode, domain.Credit, amount),
	}
}

func (f *Factory) entry(p posting, code string, side domain.EntryType, amount decimal.Decimal) domain.JournalEntry {
	return domain.JournalEntry{
		ID:              f.newID(),
		TenantID:        p.tenantID,
		TransactionDate: p.transactionDate,
		TransactionType: p.transactionType,
		ReferenceID:     p.referenceID,
		ReferenceType:   p.referenceType,
		Description:     p.description,
		AccountCode:     code,
		EntryType:       side,
		Amount:          amount,
		Currency:        p.currency,
		PropertyID:      p.propertyID,
		UnitID:          p.unitID,
		Notes:           p.notes,
		CreatedBy:       p.createdBy,
		CreatedAt:       p.createdAt,
	}
}

var defaultFactory = NewFactory()

// CreatePaymentJournalEntries builds entries for payment using the default factory.
func CreatePaymentJournalEntries(payment domain.Payment, lease *domain.Lease, tenantID, createdBy string) []domain.JournalEntry {
	return defaultFactory.CreatePaymentJournalEntries(payment, lease, tenantID, createdBy)
}

// CreateExpenseJournalEntries builds entries for expense using the default factory.
func CreateExpenseJournalEntries(expense domain.Expense, tenantID, createdBy string) []domain.JournalEntry {
	return defaultFactory.CreateExpenseJournalEntries(expense, tenantID, createdBy)
}

// CreateInvoiceJournalEntries builds entries for invoice using the default factory.
func CreateInvoiceJournalEntries(invoice domain.Invoice, tenantID, createdBy string) []domain.JournalEntry {
	return defaultFactory.CreateInvoiceJournalEntries(invoice, tenantID, createdBy)
}

// CreateDepositJournalEntries builds entries for a lease deposit using the default factory.
func CreateDepositJournalEntries(lease domain.Lease, tenantID, createdBy string) []domain.JournalEntry {
	return defaultFactory.CreateDepositJournalEntries(lease, tenantID, createdBy)
}

// AssignAccountCodeToExpense resolves the expense account against the default chart.
func AssignAccountCodeToExpense(expense domain.Expense) string {
	return defaultFactory.AssignAccountCodeToExpense(expense)
}

// AssignAccountCodeToPayment resolves the revenue account against the default chart.
func AssignAccountCodeToPayment(payment domain.Payment) string {
	return defaultFactory.AssignAccountCodeToPayment(payment)
}
