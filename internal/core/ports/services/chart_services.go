package services

import (
	"context"

	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// ChartSvc exposes the chart of accounts and its category mappings.
type ChartSvc interface {
	// ListAccounts returns every account, or only those matching the non-empty filter.
	// A type filter returns active accounts only.
	ListAccounts(ctx context.Context, accountType domain.AccountType, subType domain.AccountSubType) ([]domain.Account, error)

	// GetAccount returns apperrors.ErrNotFound for an unregistered code.
	GetAccount(ctx context.Context, code string) (*domain.Account, error)

	// MapExpenseCategory resolves an expense category to an account; never fails.
	MapExpenseCategory(ctx context.Context, category string) domain.Account

	// MapPaymentType resolves a payment type to a revenue account; never fails.
	MapPaymentType(ctx context.Context, paymentType string) domain.Account
}
