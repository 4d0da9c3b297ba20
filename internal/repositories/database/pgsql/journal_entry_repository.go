package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/property_ledger/internal/models"
	"github.com/SscSPs/property_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

const journalEntryColumns = `
	entry_id, tenant_id, transaction_date, transaction_type, reference_id, reference_type,
	description, account_code, entry_type, amount, currency_code,
	property_id, unit_id, notes, created_by, created_at`

type PgxJournalEntryRepository struct {
	BaseRepository
}

// newPgxJournalEntryRepository creates a new repository for journal entries.
func newPgxJournalEntryRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepositoryFacade {
	return &PgxJournalEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.JournalEntryRepositoryFacade = (*PgxJournalEntryRepository)(nil)

// SaveEntries inserts all entries in one database transaction, claiming a
// journal_postings row for every source record they reference. A duplicate
// entry ID or an already posted record surfaces as apperrors.ErrDuplicate.
func (r *PgxJournalEntryRepository) SaveEntries(ctx context.Context, entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	query := `INSERT INTO journal_entries (` + journalEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`

	batch := &pgx.Batch{}
	claimed := make(map[[3]string]struct{})
	for _, e := range entries {
		if e.ReferenceID == "" {
			continue
		}
		key := [3]string{e.TenantID, string(e.ReferenceType), e.ReferenceID}
		if _, ok := claimed[key]; ok {
			continue
		}
		claimed[key] = struct{}{}
		batch.Queue(`INSERT INTO journal_postings (tenant_id, reference_type, reference_id) VALUES ($1, $2, $3);`,
			e.TenantID, string(e.ReferenceType), e.ReferenceID)
	}
	for _, e := range entries {
		m := mapping.ToModelJournalEntry(e)
		batch.Queue(query,
			m.EntryID,
			m.TenantID,
			m.TransactionDate,
			m.TransactionType,
			m.ReferenceID,
			m.ReferenceType,
			m.Description,
			m.AccountCode,
			m.EntryType,
			m.Amount,
			m.CurrencyCode,
			m.PropertyID,
			m.UnitID,
			m.Notes,
			m.CreatedBy,
			m.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: journal entries already stored for this record", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert journal entries", err)
	}

	return r.Commit(ctx, tx)
}

// FindEntriesByReference returns the entries posted for one source record.
func (r *PgxJournalEntryRepository) FindEntriesByReference(ctx context.Context, tenantID string, refType domain.ReferenceType, refID string) ([]domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + `
		FROM journal_entries
		WHERE tenant_id = $1 AND reference_type = $2 AND reference_id = $3
		ORDER BY created_at, entry_id;`
	return r.queryEntries(ctx, query, tenantID, string(refType), refID)
}

// ListEntries returns the entries dated within [from, to].
func (r *PgxJournalEntryRepository) ListEntries(ctx context.Context, tenantID string, from, to time.Time) ([]domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + `
		FROM journal_entries
		WHERE tenant_id = $1 AND transaction_date BETWEEN $2 AND $3
		ORDER BY transaction_date, created_at, entry_id;`
	return r.queryEntries(ctx, query, tenantID, domain.DateOnly(from), domain.DateOnly(to))
}

// ListEntriesUpTo returns every entry dated on or before asOf.
func (r *PgxJournalEntryRepository) ListEntriesUpTo(ctx context.Context, tenantID string, asOf time.Time) ([]domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + `
		FROM journal_entries
		WHERE tenant_id = $1 AND transaction_date <= $2
		ORDER BY transaction_date, created_at, entry_id;`
	return r.queryEntries(ctx, query, tenantID, domain.DateOnly(asOf))
}

func (r *PgxJournalEntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.JournalEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		err := rows.Scan(
			&m.EntryID,
			&m.TenantID,
			&m.TransactionDate,
			&m.TransactionType,
			&m.ReferenceID,
			&m.ReferenceType,
			&m.Description,
			&m.AccountCode,
			&m.EntryType,
			&m.Amount,
			&m.CurrencyCode,
			&m.PropertyID,
			&m.UnitID,
			&m.Notes,
			&m.CreatedBy,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	return mapping.ToDomainJournalEntrySlice(entries), nil
}
