// Package memory is an in-process implementation of the ledger repositories.
// It backs the server when no database is configured and is handy in tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
)

// Store holds journal entries and source records keyed by tenant. It is safe
// for concurrent use; every read returns a copy.
type Store struct {
	mu         sync.RWMutex
	entries    []domain.JournalEntry
	entryIDs   map[string]struct{}
	posted     map[referenceKey]struct{}
	payments   map[string][]domain.Payment
	expenses   map[string][]domain.Expense
	leases     map[string][]domain.Lease
	units      map[string][]domain.Unit
	properties map[string][]domain.Property
	invoices   map[string][]domain.Invoice
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entries:    make([]domain.JournalEntry, 0),
		entryIDs:   make(map[string]struct{}),
		posted:     make(map[referenceKey]struct{}),
		payments:   make(map[string][]domain.Payment),
		expenses:   make(map[string][]domain.Expense),
		leases:     make(map[string][]domain.Lease),
		units:      make(map[string][]domain.Unit),
		properties: make(map[string][]domain.Property),
		invoices:   make(map[string][]domain.Invoice),
	}
}

var (
	_ portsrepo.JournalEntryRepositoryFacade = (*Store)(nil)
	_ portsrepo.SourceRecordRepositoryFacade = (*Store)(nil)
)

// RepositoryProvider exposes the store as both repositories.
func (s *Store) RepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JournalEntryRepo: s,
		SourceRecordRepo: s,
	}
}

// referenceKey identifies the source record a batch of entries was posted for.
type referenceKey struct {
	tenantID string
	refType  domain.ReferenceType
	refID    string
}

// SaveEntries appends entries atomically. Nothing is saved if any ID is
// already stored or if a referenced source record already has entries.
func (s *Store) SaveEntries(ctx context.Context, entries []domain.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := s.entryIDs[e.ID]; ok {
			return fmt.Errorf("%w: journal entry %s", apperrors.ErrDuplicate, e.ID)
		}
		if key, ok := keyOf(e); ok {
			if _, posted := s.posted[key]; posted {
				return fmt.Errorf("%w: %s %s already posted", apperrors.ErrDuplicate, e.ReferenceType, e.ReferenceID)
			}
		}
		if _, ok := seen[e.ID]; ok {
			return fmt.Errorf("%w: journal entry %s repeated in batch", apperrors.ErrDuplicate, e.ID)
		}
		seen[e.ID] = struct{}{}
	}

	for _, e := range entries {
		s.entryIDs[e.ID] = struct{}{}
		if key, ok := keyOf(e); ok {
			s.posted[key] = struct{}{}
		}
		s.entries = append(s.entries, e)
	}
	return nil
}

// keyOf reports the posting key of e. Entries without a source record have none.
func keyOf(e domain.JournalEntry) (referenceKey, bool) {
	if e.ReferenceID == "" {
		return referenceKey{}, false
	}
	return referenceKey{tenantID: e.TenantID, refType: e.ReferenceType, refID: e.ReferenceID}, true
}

func (s *Store) FindEntriesByReference(ctx context.Context, tenantID string, refType domain.ReferenceType, refID string) ([]domain.JournalEntry, error) {
	return s.filterEntries(tenantID, func(e domain.JournalEntry) bool {
		return e.ReferenceType == refType && e.ReferenceID == refID
	}), nil
}

func (s *Store) ListEntries(ctx context.Context, tenantID string, from, to time.Time) ([]domain.JournalEntry, error) {
	period := domain.NewPeriod(from, to)
	return s.filterEntries(tenantID, func(e domain.JournalEntry) bool {
		return period.Contains(e.TransactionDate)
	}), nil
}

func (s *Store) ListEntriesUpTo(ctx context.Context, tenantID string, asOf time.Time) ([]domain.JournalEntry, error) {
	return s.filterEntries(tenantID, func(e domain.JournalEntry) bool {
		return domain.OnOrBefore(e.TransactionDate, asOf)
	}), nil
}

// filterEntries returns matching entries ordered by transaction date, then insertion order.
func (s *Store) filterEntries(tenantID string, keep func(domain.JournalEntry) bool) []domain.JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []domain.JournalEntry{}
	for _, e := range s.entries {
		if e.TenantID == tenantID && keep(e) {
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return domain.DateOnly(result[i].TransactionDate).Before(domain.DateOnly(result[j].TransactionDate))
	})
	return result
}

// AddPayment stores a payment under its tenant, replacing one with the same ID.
func (s *Store) AddPayment(p domain.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[p.TenantID] = upsert(s.payments[p.TenantID], p, func(x domain.Payment) string { return x.ID })
}

func (s *Store) AddExpense(e domain.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses[e.TenantID] = upsert(s.expenses[e.TenantID], e, func(x domain.Expense) string { return x.ID })
}

func (s *Store) AddLease(l domain.Lease) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leases[l.TenantID] = upsert(s.leases[l.TenantID], l, func(x domain.Lease) string { return x.ID })
}

func (s *Store) AddUnit(u domain.Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units[u.TenantID] = upsert(s.units[u.TenantID], u, func(x domain.Unit) string { return x.ID })
}

func (s *Store) AddProperty(p domain.Property) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties[p.TenantID] = upsert(s.properties[p.TenantID], p, func(x domain.Property) string { return x.ID })
}

func (s *Store) AddInvoice(inv domain.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices[inv.TenantID] = upsert(s.invoices[inv.TenantID], inv, func(x domain.Invoice) string { return x.ID })
}

func (s *Store) ListPayments(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.payments[tenantID]), nil
}

func (s *Store) FindPayment(ctx context.Context, tenantID, paymentID string) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.payments[tenantID], paymentID, func(x domain.Payment) string { return x.ID })
}

func (s *Store) ListExpenses(ctx context.Context, tenantID string) ([]domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.expenses[tenantID]), nil
}

func (s *Store) FindExpense(ctx context.Context, tenantID, expenseID string) (*domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.expenses[tenantID], expenseID, func(x domain.Expense) string { return x.ID })
}

func (s *Store) ListLeases(ctx context.Context, tenantID string) ([]domain.Lease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.leases[tenantID]), nil
}

func (s *Store) FindLease(ctx context.Context, tenantID, leaseID string) (*domain.Lease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.leases[tenantID], leaseID, func(x domain.Lease) string { return x.ID })
}

func (s *Store) ListUnits(ctx context.Context, tenantID string) ([]domain.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.units[tenantID]), nil
}

func (s *Store) FindProperty(ctx context.Context, tenantID, propertyID string) (*domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.properties[tenantID], propertyID, func(x domain.Property) string { return x.ID })
}

func (s *Store) FindInvoice(ctx context.Context, tenantID, invoiceID string) (*domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.invoices[tenantID], invoiceID, func(x domain.Invoice) string { return x.ID })
}

func upsert[T any](items []T, item T, id func(T) string) []T {
	for i := range items {
		if id(items[i]) == id(item) {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func find[T any](items []T, wanted string, id func(T) string) (*T, error) {
	for _, item := range items {
		if id(item) == wanted {
			found := item
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}
