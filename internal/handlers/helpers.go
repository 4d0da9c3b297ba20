package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/dto"
	"github.com/SscSPs/property_ledger/internal/middleware"
	"github.com/SscSPs/property_ledger/internal/utils/spreadsheet"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// requestScope returns the tenant and user the token was issued for. It
// writes a 401 and returns ok=false when either is missing.
func requestScope(c *gin.Context, logger *slog.Logger) (tenantID, userID string, ok bool) {
	tenantID, tenantOK := middleware.GetTenantIDFromContext(c)
	userID, userOK := middleware.GetUserIDFromContext(c)
	if !tenantOK || !userOK {
		logger.Error("Tenant or user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return tenantID, userID, true
}

// writeServiceError maps service sentinels onto HTTP statuses.
func writeServiceError(c *gin.Context, logger *slog.Logger, err error, failure string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(failure, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failure})
	}
}

// bindPeriod binds and parses fromDate/toDate. It writes a 400 on failure.
func bindPeriod(c *gin.Context, logger *slog.Logger) (dto.PeriodQuery, time.Time, time.Time, bool) {
	var q dto.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind period query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: fromDate and toDate must be YYYY-MM-DD"})
		return q, time.Time{}, time.Time{}, false
	}
	from, errFrom := domain.ParseDate(q.FromDate)
	to, errTo := domain.ParseDate(q.ToDate)
	if err := errors.Join(errFrom, errTo); err != nil {
		logger.Warn("Invalid period dates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return q, time.Time{}, time.Time{}, false
	}
	return q, from, to, true
}

// bindAsOf binds the optional asOf date, defaulting to today.
func bindAsOf(c *gin.Context, logger *slog.Logger) (dto.AsOfQuery, time.Time, bool) {
	var q dto.AsOfQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind asOf query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: asOf must be YYYY-MM-DD"})
		return q, time.Time{}, false
	}
	if q.AsOf == "" {
		return q, domain.DateOnly(time.Now().UTC()), true
	}
	asOf, err := domain.ParseDate(q.AsOf)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return q, time.Time{}, false
	}
	return q, asOf, true
}

func currencyOr(requested, fallback string) string {
	if requested == "" {
		return fallback
	}
	return strings.ToUpper(requested)
}

// writeWorkbook streams a generated workbook as an attachment.
func writeWorkbook(c *gin.Context, logger *slog.Logger, fileName string, f *excelize.File, err error) {
	if err != nil {
		logger.Error("Failed to build workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build spreadsheet"})
		return
	}
	defer f.Close()

	c.Header("Content-Type", spreadsheet.ContentType)
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		logger.Error("Failed to write workbook", slog.String("error", err.Error()))
	}
}
