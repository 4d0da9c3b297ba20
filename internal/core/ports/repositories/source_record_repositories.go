package repositories

import (
	"context"

	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// Source records belong to the property-management application. The ledger
// only reads them, always scoped to one tenant. Find methods return
// apperrors.ErrNotFound when the record does not exist for the tenant.

// PaymentReader reads rent payments.
type PaymentReader interface {
	ListPayments(ctx context.Context, tenantID string) ([]domain.Payment, error)
	FindPayment(ctx context.Context, tenantID, paymentID string) (*domain.Payment, error)
}

// ExpenseReader reads property expenses.
type ExpenseReader interface {
	ListExpenses(ctx context.Context, tenantID string) ([]domain.Expense, error)
	FindExpense(ctx context.Context, tenantID, expenseID string) (*domain.Expense, error)
}

// LeaseReader reads leases.
type LeaseReader interface {
	ListLeases(ctx context.Context, tenantID string) ([]domain.Lease, error)
	FindLease(ctx context.Context, tenantID, leaseID string) (*domain.Lease, error)
}

// PropertyReader reads properties and their units.
type PropertyReader interface {
	ListUnits(ctx context.Context, tenantID string) ([]domain.Unit, error)
	FindProperty(ctx context.Context, tenantID, propertyID string) (*domain.Property, error)
}

// InvoiceReader reads invoices.
type InvoiceReader interface {
	FindInvoice(ctx context.Context, tenantID, invoiceID string) (*domain.Invoice, error)
}

// SourceRecordRepositoryFacade combines all source record readers.
type SourceRecordRepositoryFacade interface {
	PaymentReader
	ExpenseReader
	LeaseReader
	PropertyReader
	InvoiceReader
}
