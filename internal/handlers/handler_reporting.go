package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/dto"
	"github.com/SscSPs/property_ledger/internal/middleware"
	"github.com/SscSPs/property_ledger/internal/utils/spreadsheet"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	calculator       portssvc.JournalCalculatorSvc
	currency         string
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, calc portssvc.JournalCalculatorSvc, currency string) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		calculator:       calc,
		currency:         currency,
	}
}

// RegisterReportingRoutes registers routes related to financial reports.
// The trial balance is computed from posted journal entries by calc.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, calc portssvc.JournalCalculatorSvc, currency string) {
	registerValidators()
	h := newReportingHandler(reportingService, calc, currency)

	reports := rg.Group("/reports")
	{
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/cash-flow", h.getCashFlow)
		reports.GET("/properties/:propertyID/performance", h.getPropertyPerformance)
		reports.GET("/transaction-summary", h.getTransactionSummary)
		reports.GET("/trial-balance", h.getTrialBalance)
	}
}

// getIncomeStatement godoc
// @Summary Generate income statement
// @Description Paid revenue and expenses for an inclusive period
// @Tags reports
// @Produce json
// @Param fromDate query string true "Start date (YYYY-MM-DD)"
// @Param toDate query string true "End date (YYYY-MM-DD)"
// @Param currency query string false "Display currency (ISO 4217)"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}
	q, from, to, ok := bindPeriod(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("fromDate", q.FromDate), slog.String("toDate", q.ToDate))
	logger.Info("Received request to generate income statement")

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), tenantID, from, to)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to generate income statement")
		return
	}

	logger.Info("Income statement generated successfully")
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(*report, currencyOr(q.Currency, h.currency)))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param currency query string false "Display currency (ISO 4217)"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}
	q, asOf, ok := bindAsOf(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), tenantID, asOf)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to generate balance sheet")
		return
	}

	logger.Info("Balance sheet generated successfully", slog.String("asOf", asOf.Format(domain.DateLayout)))
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(*report, currencyOr(q.Currency, h.currency)))
}

// getCashFlow godoc
// @Summary Generate cash flow statement
// @Tags reports
// @Produce json
// @Param fromDate query string true "Start date (YYYY-MM-DD)"
// @Param toDate query string true "End date (YYYY-MM-DD)"
// @Param currency query string false "Display currency (ISO 4217)"
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}
	q, from, to, ok := bindPeriod(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.CashFlowStatement(c.Request.Context(), tenantID, from, to)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to generate cash flow statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashFlowResponse(*report, currencyOr(q.Currency, h.currency)))
}

// getPropertyPerformance godoc
// @Summary Generate property performance report
// @Tags reports
// @Produce json
// @Param propertyID path string true "Property ID"
// @Param fromDate query string true "Start date (YYYY-MM-DD)"
// @Param toDate query string true "End date (YYYY-MM-DD)"
// @Param currency query string false "Display currency (ISO 4217)"
// @Success 200 {object} dto.PropertyPerformanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Property not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/properties/{propertyID}/performance [get]
func (h *reportingHandler) getPropertyPerformance(c *gin.Context) {
	propertyID := c.Param("propertyID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("property_id", propertyID))
	tenantID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}
	q, from, to, ok := bindPeriod(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.PropertyPerformance(c.Request.Context(), tenantID, propertyID, from, to)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to generate property performance report")
		return
	}
	c.JSON(http.StatusOK, dto.ToPropertyPerformanceResponse(*report, currencyOr(q.Currency, h.currency)))
}

// getTransactionSummary godoc
// @Summary Generate transaction summary
// @Description Paid revenue and paid expenses grouped by account, largest first
// @Tags reports
// @Produce json
// @Param fromDate query string true "Start date (YYYY-MM-DD)"
// @Param toDate query string true "End date (YYYY-MM-DD)"
// @Param currency query string false "Display currency (ISO 4217)"
// @Param format query string false "Response format (json, xlsx)"
// @Success 200 {object} dto.TransactionSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/transaction-summary [get]
func (h *reportingHandler) getTransactionSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}
	q, from, to, ok := bindPeriod(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.TransactionSummary(c.Request.Context(), tenantID, from, to)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to generate transaction summary")
		return
	}
	if q.Format == dto.FormatXLSX {
		f, err := spreadsheet.TransactionSummaryWorkbook(*report)
		writeWorkbook(c, logger, "transaction_summary_"+q.FromDate+"_"+q.ToDate+".xlsx", f, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionSummaryResponse(*report, currencyOr(q.Currency, h.currency)))
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Per-account debit and credit totals of posted entries as of a date
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param format query string false "Response format (json, xlsx)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}
	q, asOf, ok := bindAsOf(c, logger)
	if !ok {
		return
	}

	tb, err := h.calculator.TrialBalance(c.Request.Context(), tenantID, asOf)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to generate trial balance report")
		return
	}

	logger.Info("Trial balance report generated successfully", slog.Int("row_count", len(tb.Rows)))
	if q.Format == dto.FormatXLSX {
		f, err := spreadsheet.TrialBalanceWorkbook(*tb)
		writeWorkbook(c, logger, "trial_balance_"+asOf.Format(domain.DateLayout)+".xlsx", f, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(*tb))
}
