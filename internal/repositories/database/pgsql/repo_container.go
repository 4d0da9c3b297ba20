package pgsql

import (
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	journalEntryRepo := newPgxJournalEntryRepository(dbPool)
	sourceRecordRepo := newPgxSourceRecordRepository(dbPool)

	return portsrepo.RepositoryProvider{
		JournalEntryRepo: journalEntryRepo,
		SourceRecordRepo: sourceRecordRepo,
	}
}
