package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// JournalEntryReader defines read operations for persisted journal entries.
type JournalEntryReader interface {
	// FindEntriesByReference returns the entries posted for one source record.
	// An empty slice (not ErrNotFound) means nothing has been posted yet.
	FindEntriesByReference(ctx context.Context, tenantID string, refType domain.ReferenceType, refID string) ([]domain.JournalEntry, error)

	// ListEntries returns a tenant's entries with a transaction date in [from, to], oldest first.
	ListEntries(ctx context.Context, tenantID string, from, to time.Time) ([]domain.JournalEntry, error)

	// ListEntriesUpTo returns every entry dated on or before asOf, oldest first.
	ListEntriesUpTo(ctx context.Context, tenantID string, asOf time.Time) ([]domain.JournalEntry, error)
}

// JournalEntryWriter defines write operations for journal entries.
type JournalEntryWriter interface {
	// SaveEntries persists all entries atomically. Entries are never updated once saved.
	SaveEntries(ctx context.Context, entries []domain.JournalEntry) error
}

// JournalEntryRepositoryFacade combines the journal entry reader and writer.
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}
