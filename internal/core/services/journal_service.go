package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/chart"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/core/journal"
	"github.com/SscSPs/property_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// journalService posts source records to the ledger and reads them back.
type journalService struct {
	BaseService
	entryRepo  portsrepo.JournalEntryRepositoryFacade
	sourceRepo portsrepo.SourceRecordRepositoryFacade
	factory    *journal.Factory
	registry   *chart.Registry
	publisher  events.Publisher
	now        func() time.Time
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalFactory sets the factory used to build entries.
func WithJournalFactory(f *journal.Factory) JournalServiceOption {
	return func(s *journalService) {
		s.factory = f
	}
}

// WithJournalRegistry sets the chart used for balances and the trial balance.
func WithJournalRegistry(r *chart.Registry) JournalServiceOption {
	return func(s *journalService) {
		s.registry = r
	}
}

// WithEventPublisher sets the publisher notified after entries are saved.
func WithEventPublisher(p events.Publisher) JournalServiceOption {
	return func(s *journalService) {
		s.publisher = p
	}
}

// WithJournalClock sets the clock used to stamp published events.
func WithJournalClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.now = now
	}
}

// NewJournalService creates a new journal service with the provided options
func NewJournalService(entryRepo portsrepo.JournalEntryRepositoryFacade, sourceRepo portsrepo.SourceRecordRepositoryFacade, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		entryRepo:  entryRepo,
		sourceRepo: sourceRepo,
		registry:   chart.Default(),
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	if svc.factory == nil {
		svc.factory = journal.NewFactory(journal.WithRegistry(svc.registry))
	}
	return svc
}

// Ensure journalService implements the JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// RecordPayment posts a paid payment. The lease supplies the property and unit;
// a payment whose lease no longer exists is still posted without them.
func (s *journalService) RecordPayment(ctx context.Context, tenantID, paymentID, userID string) ([]domain.JournalEntry, error) {
	if err := s.RequireTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	return s.post(ctx, tenantID, domain.PaymentReference, paymentID, userID, func() ([]domain.JournalEntry, error) {
		payment, err := s.sourceRepo.FindPayment(ctx, tenantID, paymentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load payment %s: %w", paymentID, err)
		}

		var lease *domain.Lease
		if payment.LeaseID != "" {
			lease, err = s.sourceRepo.FindLease(ctx, tenantID, payment.LeaseID)
			if err != nil {
				if !errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("failed to load lease %s: %w", payment.LeaseID, err)
				}
				s.LogDebug(ctx, "Lease for payment not found, posting without property dimension",
					slog.String("payment_id", paymentID),
					slog.String("lease_id", payment.LeaseID))
				lease = nil
			}
		}

		return s.factory.CreatePaymentJournalEntries(*payment, lease, tenantID, userID), nil
	})
}

// RecordExpense posts an expense against Cash or Accounts Payable depending on its status.
func (s *journalService) RecordExpense(ctx context.Context, tenantID, expenseID, userID string) ([]domain.JournalEntry, error) {
	if err := s.RequireTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	return s.post(ctx, tenantID, domain.ExpenseReference, expenseID, userID, func() ([]domain.JournalEntry, error) {
		expense, err := s.sourceRepo.FindExpense(ctx, tenantID, expenseID)
		if err != nil {
			return nil, fmt.Errorf("failed to load expense %s: %w", expenseID, err)
		}
		return s.factory.CreateExpenseJournalEntries(*expense, tenantID, userID), nil
	})
}

// RecordInvoice accrues a sent or overdue invoice.
func (s *journalService) RecordInvoice(ctx context.Context, tenantID, invoiceID, userID string) ([]domain.JournalEntry, error) {
	if err := s.RequireTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	return s.post(ctx, tenantID, domain.InvoiceReference, invoiceID, userID, func() ([]domain.JournalEntry, error) {
		invoice, err := s.sourceRepo.FindInvoice(ctx, tenantID, invoiceID)
		if err != nil {
			return nil, fmt.Errorf("failed to load invoice %s: %w", invoiceID, err)
		}
		return s.factory.CreateInvoiceJournalEntries(*invoice, tenantID, userID), nil
	})
}

// RecordDeposit posts the security deposit of a lease.
func (s *journalService) RecordDeposit(ctx context.Context, tenantID, leaseID, userID string) ([]domain.JournalEntry, error) {
	if err := s.RequireTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	return s.post(ctx, tenantID, domain.LeaseReference, leaseID, userID, func() ([]domain.JournalEntry, error) {
		lease, err := s.sourceRepo.FindLease(ctx, tenantID, leaseID)
		if err != nil {
			return nil, fmt.Errorf("failed to load lease %s: %w", leaseID, err)
		}
		return s.factory.CreateDepositJournalEntries(*lease, tenantID, userID), nil
	})
}

// post is the shared posting flow: skip references that already have entries,
// build, validate, save, then publish. A failed publish is logged only, since
// the entries are already stored.
func (s *journalService) post(ctx context.Context, tenantID string, refType domain.ReferenceType, refID, userID string, build func() ([]domain.JournalEntry, error)) ([]domain.JournalEntry, error) {
	logAttrs := []any{
		slog.String("tenant_id", tenantID),
		slog.String("reference_type", string(refType)),
		slog.String("reference_id", refID),
	}

	existing, err := s.entryRepo.FindEntriesByReference(ctx, tenantID, refType, refID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for existing journal entries", logAttrs...)
		return nil, fmt.Errorf("failed to check existing entries: %w", err)
	}
	if len(existing) > 0 {
		s.LogInfo(ctx, "Reference already posted, returning existing entries",
			append(logAttrs, slog.Int("entry_count", len(existing)))...)
		return existing, nil
	}

	entries, err := build()
	if err != nil {
		s.LogError(ctx, err, "Failed to build journal entries", logAttrs...)
		return nil, err
	}
	if len(entries) == 0 {
		s.LogInfo(ctx, "Record produces no journal entries in its current status", logAttrs...)
		return []domain.JournalEntry{}, nil
	}

	if err := accounting.ValidateJournalBalance(entries); err != nil {
		s.LogError(ctx, err, "Journal entries failed balance validation", logAttrs...)
		return nil, err
	}

	if err := s.entryRepo.SaveEntries(ctx, entries); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Another call posted the record between the check and the save.
			stored, findErr := s.entryRepo.FindEntriesByReference(ctx, tenantID, refType, refID)
			if findErr == nil && len(stored) > 0 {
				s.LogInfo(ctx, "Reference posted concurrently, returning stored entries",
					append(logAttrs, slog.Int("entry_count", len(stored)))...)
				return stored, nil
			}
		}
		s.LogError(ctx, err, "Failed to save journal entries", logAttrs...)
		return nil, fmt.Errorf("failed to save journal entries: %w", err)
	}

	if s.publisher != nil {
		event := events.JournalEntriesPosted{
			TenantID:      tenantID,
			ReferenceType: refType,
			ReferenceID:   refID,
			Entries:       entries,
			PostedBy:      userID,
			OccurredAt:    s.now(),
		}
		if err := s.publisher.Publish(ctx, refID, event); err != nil {
			s.LogError(ctx, err, "Failed to publish journal entries posted event", logAttrs...)
		}
	}

	s.LogInfo(ctx, "Journal entries posted", append(logAttrs, slog.Int("entry_count", len(entries)))...)
	return entries, nil
}

func (s *journalService) ListEntries(ctx context.Context, tenantID string, from, to time.Time) ([]domain.JournalEntry, error) {
	if err := s.RequireTenant(ctx, tenantID); err != nil {
		return nil, err
	}
	if err := s.ValidatePeriod(from, to); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListEntries(ctx, tenantID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

func (s *journalService) EntriesForReference(ctx context.Context, tenantID string, refType domain.ReferenceType, refID string) ([]domain.JournalEntry, error) {
	if err := s.RequireTenant(ctx, tenantID); err != nil {
		return nil, err
	}
	switch refType {
	case domain.PaymentReference, domain.ExpenseReference, domain.InvoiceReference, domain.LeaseReference:
	default:
		return nil, fmt.Errorf("%w: unknown reference type %q", apperrors.ErrValidation, refType)
	}

	entries, err := s.entryRepo.FindEntriesByReference(ctx, tenantID, refType, refID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for reference",
			slog.String("reference_type", string(refType)),
			slog.String("reference_id", refID))
		return nil, fmt.Errorf("failed to load entries for reference: %w", err)
	}
	return entries, nil
}

func (s *journalService) AccountBalance(ctx context.Context, tenantID, code string, asOf time.Time) (decimal.Decimal, error) {
	if err := s.RequireTenant(ctx, tenantID); err != nil {
		return decimal.Zero, err
	}

	acc, ok := s.registry.AccountByCode(code)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, code)
	}

	entries, err := s.entryRepo.ListEntriesUpTo(ctx, tenantID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for balance", slog.String("account_code", code))
		return decimal.Zero, fmt.Errorf("failed to load entries: %w", err)
	}

	balance, err := accounting.CalculateAccountBalance(entries, acc.Code, acc.Type)
	if err != nil {
		return decimal.Zero, err
	}

	s.LogDebug(ctx, "Account balance calculated",
		slog.String("account_code", code),
		slog.String("balance", balance.String()))
	return balance, nil
}

func (s *journalService) TrialBalance(ctx context.Context, tenantID string, asOf time.Time) (*domain.TrialBalance, error) {
	if err := s.RequireTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListEntriesUpTo(ctx, tenantID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data",
			slog.String("tenant_id", tenantID),
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	tb := accounting.BuildTrialBalance(entries, s.registry)
	tb.AsOfDate = domain.DateOnly(asOf)

	if len(tb.UnknownCodes) > 0 {
		s.LogInfo(ctx, "Trial balance found postings to accounts missing from the chart",
			slog.Any("account_codes", tb.UnknownCodes))
	}
	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("tenant_id", tenantID),
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int("row_count", len(tb.Rows)))
	return &tb, nil
}
