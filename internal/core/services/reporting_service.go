package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/core/reports"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	sourceRepo portsrepo.SourceRecordRepositoryFacade
	generator  *reports.Generator
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportGenerator sets the generator, e.g. one built on an extended chart.
func WithReportGenerator(g *reports.Generator) ReportingServiceOption {
	return func(s *reportingService) {
		s.generator = g
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.SourceRecordRepositoryFacade, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		sourceRepo: repo,
		generator:  reports.NewGenerator(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// loadActivity reads the payments and expenses every period report needs.
func (s *reportingService) loadActivity(ctx context.Context, tenantID string) ([]domain.Payment, []domain.Expense, error) {
	payments, err := s.sourceRepo.ListPayments(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments", slog.String("tenant_id", tenantID))
		return nil, nil, fmt.Errorf("failed to load payments: %w", err)
	}
	expenses, err := s.sourceRepo.ListExpenses(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses", slog.String("tenant_id", tenantID))
		return nil, nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	return payments, expenses, nil
}

func (s *reportingService) checkPeriod(ctx context.Context, tenantID string, from, to time.Time) error {
	if err := s.RequireTenant(ctx, tenantID); err != nil {
		return err
	}
	return s.ValidatePeriod(from, to)
}

// IncomeStatement generates an income statement for a specific period
func (s *reportingService) IncomeStatement(ctx context.Context, tenantID string, from, to time.Time) (*domain.IncomeStatement, error) {
	if err := s.checkPeriod(ctx, tenantID, from, to); err != nil {
		return nil, err
	}

	payments, expenses, err := s.loadActivity(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	report := s.generator.GenerateIncomeStatement(payments, expenses, from, to)

	s.LogInfo(ctx, "Income statement generated successfully",
		slog.String("tenant_id", tenantID),
		slog.String("from", from.Format(time.DateOnly)),
		slog.String("to", to.Format(time.DateOnly)),
		slog.String("net_income", report.NetIncome.String()))
	return &report, nil
}

// BalanceSheet generates a balance sheet as of a specific date
func (s *reportingService) BalanceSheet(ctx context.Context, tenantID string, asOf time.Time) (*domain.BalanceSheet, error) {
	if err := s.RequireTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	payments, expenses, err := s.loadActivity(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	leases, err := s.sourceRepo.ListLeases(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load leases", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to load leases: %w", err)
	}

	report := s.generator.GenerateBalanceSheet(payments, expenses, leases, asOf)

	s.LogInfo(ctx, "Balance sheet generated successfully",
		slog.String("tenant_id", tenantID),
		slog.String("asOf", asOf.Format(time.DateOnly)))
	return &report, nil
}

// CashFlowStatement generates a cash flow statement for a specific period
func (s *reportingService) CashFlowStatement(ctx context.Context, tenantID string, from, to time.Time) (*domain.CashFlowStatement, error) {
	if err := s.checkPeriod(ctx, tenantID, from, to); err != nil {
		return nil, err
	}

	payments, expenses, err := s.loadActivity(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	report := s.generator.GenerateCashFlowStatement(payments, expenses, from, to)

	s.LogInfo(ctx, "Cash flow statement generated successfully",
		slog.String("tenant_id", tenantID),
		slog.String("from", from.Format(time.DateOnly)),
		slog.String("to", to.Format(time.DateOnly)))
	return &report, nil
}

// PropertyPerformance generates a performance report for one property
func (s *reportingService) PropertyPerformance(ctx context.Context, tenantID, propertyID string, from, to time.Time) (*domain.PropertyPerformance, error) {
	if err := s.checkPeriod(ctx, tenantID, from, to); err != nil {
		return nil, err
	}

	property, err := s.sourceRepo.FindProperty(ctx, tenantID, propertyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load property", slog.String("property_id", propertyID))
		return nil, fmt.Errorf("failed to load property %s: %w", propertyID, err)
	}

	payments, expenses, err := s.loadActivity(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	units, err := s.sourceRepo.ListUnits(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load units", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to load units: %w", err)
	}
	leases, err := s.sourceRepo.ListLeases(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load leases", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to load leases: %w", err)
	}

	report := s.generator.GeneratePropertyPerformance(property.ID, property.Name, payments, expenses, units, leases, from, to)

	s.LogInfo(ctx, "Property performance generated successfully",
		slog.String("tenant_id", tenantID),
		slog.String("property_id", propertyID),
		slog.Int("total_units", report.TotalUnits))
	return &report, nil
}

// TransactionSummary groups a period's activity by account
func (s *reportingService) TransactionSummary(ctx context.Context, tenantID string, from, to time.Time) (*domain.TransactionSummary, error) {
	if err := s.checkPeriod(ctx, tenantID, from, to); err != nil {
		return nil, err
	}

	payments, expenses, err := s.loadActivity(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	report := s.generator.GenerateTransactionSummary(payments, expenses, from, to)

	s.LogInfo(ctx, "Transaction summary generated successfully",
		slog.String("tenant_id", tenantID),
		slog.Int("expense_lines", len(report.Expenses)))
	return &report, nil
}
