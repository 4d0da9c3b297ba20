package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/property_ledger/internal/models"
	"github.com/SscSPs/property_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSourceRecordRepository reads the property-management tables. It never writes.
type PgxSourceRecordRepository struct {
	BaseRepository
}

func newPgxSourceRecordRepository(pool *pgxpool.Pool) portsrepo.SourceRecordRepositoryFacade {
	return &PgxSourceRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SourceRecordRepositoryFacade = (*PgxSourceRecordRepository)(nil)

const paymentColumns = `payment_id, tenant_id, lease_id, amount, late_fee, currency_code,
	payment_date, due_date, status, payment_type, account_code, notes`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(&m.PaymentID, &m.TenantID, &m.LeaseID, &m.Amount, &m.LateFee, &m.Currency,
		&m.PaymentDate, &m.DueDate, &m.Status, &m.PaymentType, &m.AccountCode, &m.Notes)
	return m, err
}

func (r *PgxSourceRecordRepository) ListPayments(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE tenant_id = $1 ORDER BY due_date NULLS LAST, payment_id;`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for tenant "+tenantID, err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, mapping.ToDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return payments, nil
}

func (r *PgxSourceRecordRepository) FindPayment(ctx context.Context, tenantID, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE tenant_id = $1 AND payment_id = $2;`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, tenantID, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment "+paymentID, err)
	}
	p := mapping.ToDomainPayment(m)
	return &p, nil
}

const expenseColumns = `expense_id, tenant_id, property_id, unit_id, amount, currency_code,
	expense_date, category, status, vendor_name, description, account_code`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(&m.ExpenseID, &m.TenantID, &m.PropertyID, &m.UnitID, &m.Amount, &m.Currency,
		&m.ExpenseDate, &m.Category, &m.Status, &m.VendorName, &m.Description, &m.AccountCode)
	return m, err
}

func (r *PgxSourceRecordRepository) ListExpenses(ctx context.Context, tenantID string) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE tenant_id = $1 ORDER BY expense_date, expense_id;`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expenses for tenant "+tenantID, err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense row", err)
		}
		expenses = append(expenses, mapping.ToDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating expense rows", err)
	}
	return expenses, nil
}

func (r *PgxSourceRecordRepository) FindExpense(ctx context.Context, tenantID, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE tenant_id = $1 AND expense_id = $2;`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, tenantID, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find expense "+expenseID, err)
	}
	e := mapping.ToDomainExpense(m)
	return &e, nil
}

// Leases carry their property through the unit they are written against.
const leaseSelect = `SELECT l.lease_id, l.tenant_id, u.property_id, l.unit_id, l.start_date, l.end_date,
	l.status, l.rent_amount, l.deposit_amount, l.currency_code
	FROM leases l LEFT JOIN units u ON u.unit_id = l.unit_id AND u.tenant_id = l.tenant_id`

func scanLease(row pgx.Row) (models.Lease, error) {
	var m models.Lease
	err := row.Scan(&m.LeaseID, &m.TenantID, &m.PropertyID, &m.UnitID, &m.StartDate, &m.EndDate,
		&m.Status, &m.RentAmount, &m.DepositAmount, &m.Currency)
	return m, err
}

func (r *PgxSourceRecordRepository) ListLeases(ctx context.Context, tenantID string) ([]domain.Lease, error) {
	query := leaseSelect + ` WHERE l.tenant_id = $1 ORDER BY l.start_date, l.lease_id;`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query leases for tenant "+tenantID, err)
	}
	defer rows.Close()

	leases := []domain.Lease{}
	for rows.Next() {
		m, err := scanLease(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan lease row", err)
		}
		leases = append(leases, mapping.ToDomainLease(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating lease rows", err)
	}
	return leases, nil
}

func (r *PgxSourceRecordRepository) FindLease(ctx context.Context, tenantID, leaseID string) (*domain.Lease, error) {
	query := leaseSelect + ` WHERE l.tenant_id = $1 AND l.lease_id = $2;`
	m, err := scanLease(r.Pool.QueryRow(ctx, query, tenantID, leaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find lease "+leaseID, err)
	}
	l := mapping.ToDomainLease(m)
	return &l, nil
}

func (r *PgxSourceRecordRepository) ListUnits(ctx context.Context, tenantID string) ([]domain.Unit, error) {
	query := `SELECT unit_id, tenant_id, property_id, name, status FROM units WHERE tenant_id = $1 ORDER BY property_id, name;`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query units for tenant "+tenantID, err)
	}
	defer rows.Close()

	units := []domain.Unit{}
	for rows.Next() {
		var m models.Unit
		if err := rows.Scan(&m.UnitID, &m.TenantID, &m.PropertyID, &m.Name, &m.Status); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan unit row", err)
		}
		units = append(units, mapping.ToDomainUnit(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating unit rows", err)
	}
	return units, nil
}

func (r *PgxSourceRecordRepository) FindProperty(ctx context.Context, tenantID, propertyID string) (*domain.Property, error) {
	query := `SELECT property_id, tenant_id, name FROM properties WHERE tenant_id = $1 AND property_id = $2;`
	var m models.Property
	err := r.Pool.QueryRow(ctx, query, tenantID, propertyID).Scan(&m.PropertyID, &m.TenantID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find property "+propertyID, err)
	}
	p := mapping.ToDomainProperty(m)
	return &p, nil
}

func (r *PgxSourceRecordRepository) FindInvoice(ctx context.Context, tenantID, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT invoice_id, tenant_id, invoice_number, lease_id, property_id, unit_id,
		total_amount, currency_code, status, issue_date, due_date
		FROM invoices WHERE tenant_id = $1 AND invoice_id = $2;`
	var m models.Invoice
	err := r.Pool.QueryRow(ctx, query, tenantID, invoiceID).Scan(
		&m.InvoiceID,
		&m.TenantID,
		&m.InvoiceNumber,
		&m.LeaseID,
		&m.PropertyID,
		&m.UnitID,
		&m.TotalAmount,
		&m.Currency,
		&m.Status,
		&m.IssueDate,
		&m.DueDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice "+invoiceID, err)
	}
	inv := mapping.ToDomainInvoice(m)
	return &inv, nil
}
