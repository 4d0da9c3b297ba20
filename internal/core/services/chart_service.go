package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/chart"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
)

type chartService struct {
	BaseService
	registry *chart.Registry
}

// NewChartService creates a chart service over registry, or the default chart when nil.
func NewChartService(registry *chart.Registry) portssvc.ChartSvc {
	if registry == nil {
		registry = chart.Default()
	}
	return &chartService{registry: registry}
}

var _ portssvc.ChartSvc = (*chartService)(nil)

func (s *chartService) ListAccounts(ctx context.Context, accountType domain.AccountType, subType domain.AccountSubType) ([]domain.Account, error) {
	switch {
	case accountType != "":
		if !accountType.IsValid() {
			return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, accountType)
		}
		accounts := s.registry.AccountsByType(accountType)
		if subType == "" {
			return accounts, nil
		}
		filtered := make([]domain.Account, 0, len(accounts))
		for _, acc := range accounts {
			if acc.SubType == subType {
				filtered = append(filtered, acc)
			}
		}
		return filtered, nil
	case subType != "":
		return s.registry.AccountsBySubType(subType), nil
	default:
		return s.registry.Accounts(), nil
	}
}

func (s *chartService) GetAccount(ctx context.Context, code string) (*domain.Account, error) {
	acc, ok := s.registry.AccountByCode(code)
	if !ok {
		s.LogDebug(ctx, "Account code not in chart", slog.String("account_code", code))
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, code)
	}
	return &acc, nil
}

func (s *chartService) MapExpenseCategory(ctx context.Context, category string) domain.Account {
	acc, _ := s.registry.AccountByCode(s.registry.MapExpenseCategoryToAccount(category))
	return acc
}

func (s *chartService) MapPaymentType(ctx context.Context, paymentType string) domain.Account {
	acc, _ := s.registry.AccountByCode(s.registry.MapPaymentToAccount(paymentType))
	return acc
}
