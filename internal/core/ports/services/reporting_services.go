package services

import (
	"context"
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
// from a tenant's source records. Period bounds are inclusive.
type ReportingService interface {
	// IncomeStatement reports paid revenue and expenses for a period
	IncomeStatement(ctx context.Context, tenantID string, from, to time.Time) (*domain.IncomeStatement, error)

	// BalanceSheet generates a balance sheet as of a specific date
	BalanceSheet(ctx context.Context, tenantID string, asOf time.Time) (*domain.BalanceSheet, error)

	// CashFlowStatement reports cash movement for a period
	CashFlowStatement(ctx context.Context, tenantID string, from, to time.Time) (*domain.CashFlowStatement, error)

	// PropertyPerformance reports occupancy and operating income for one property
	PropertyPerformance(ctx context.Context, tenantID, propertyID string, from, to time.Time) (*domain.PropertyPerformance, error)

	// TransactionSummary groups a period's activity by account
	TransactionSummary(ctx context.Context, tenantID string, from, to time.Time) (*domain.TransactionSummary, error)
}
