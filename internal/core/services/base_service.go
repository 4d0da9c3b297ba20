package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the request-scoped logger from context or the default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireTenant rejects calls that are not scoped to a tenant.
func (s *BaseService) RequireTenant(ctx context.Context, tenantID string) error {
	if tenantID == "" {
		err := fmt.Errorf("%w: tenant is required", apperrors.ErrForbidden)
		s.LogError(ctx, err, "Rejected call without tenant scope")
		return err
	}
	return nil
}

// ValidatePeriod rejects a period whose start falls after its end.
func (s *BaseService) ValidatePeriod(from, to time.Time) error {
	if from.After(to) {
		return fmt.Errorf("%w: start date %s is after end date %s", apperrors.ErrValidation,
			from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	return nil
}
