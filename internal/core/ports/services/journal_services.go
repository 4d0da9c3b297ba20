package services

import (
	"context"
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalPostingSvc turns source records into persisted journal entries.
// Posting is idempotent per record: a record that already has entries gets
// them back unchanged.
type JournalPostingSvc interface {
	RecordPayment(ctx context.Context, tenantID, paymentID, userID string) ([]domain.JournalEntry, error)
	RecordExpense(ctx context.Context, tenantID, expenseID, userID string) ([]domain.JournalEntry, error)
	RecordInvoice(ctx context.Context, tenantID, invoiceID, userID string) ([]domain.JournalEntry, error)
	RecordDeposit(ctx context.Context, tenantID, leaseID, userID string) ([]domain.JournalEntry, error)
}

// JournalReaderSvc defines read operations for journal entries.
type JournalReaderSvc interface {
	// ListEntries returns entries with a transaction date in [from, to].
	ListEntries(ctx context.Context, tenantID string, from, to time.Time) ([]domain.JournalEntry, error)

	// EntriesForReference returns the entries posted for one source record.
	EntriesForReference(ctx context.Context, tenantID string, refType domain.ReferenceType, refID string) ([]domain.JournalEntry, error)
}

// JournalCalculatorSvc folds persisted entries into balances.
type JournalCalculatorSvc interface {
	// AccountBalance returns the balance of code as of asOf in the account's normal direction.
	AccountBalance(ctx context.Context, tenantID, code string, asOf time.Time) (decimal.Decimal, error)

	// TrialBalance totals every account with postings on or before asOf.
	TrialBalance(ctx context.Context, tenantID string, asOf time.Time) (*domain.TrialBalance, error)
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalPostingSvc
	JournalReaderSvc
	JournalCalculatorSvc
}
