package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/dto"
	"github.com/SscSPs/property_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// chartHandler serves the chart of accounts.
type chartHandler struct {
	chartService portssvc.ChartSvc
}

func newChartHandler(cs portssvc.ChartSvc) *chartHandler {
	return &chartHandler{chartService: cs}
}

// RegisterChartRoutes registers the chart of accounts routes on rg.
func RegisterChartRoutes(rg *gin.RouterGroup, chartService portssvc.ChartSvc) {
	registerValidators()
	h := newChartHandler(chartService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:code", h.getAccount)
	}

	mappings := rg.Group("/account-mappings")
	{
		mappings.GET("/expense/:category", h.mapExpenseCategory)
		mappings.GET("/payment/:paymentType", h.mapPaymentType)
	}
}

// listAccounts godoc
// @Summary List chart of accounts
// @Description Lists every account, or the active accounts of one type, or the accounts of one sub-type
// @Tags accounts
// @Produce json
// @Param type query string false "Account type (asset, liability, equity, revenue, expense)"
// @Param subType query string false "Account sub-type (e.g. current_asset)"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} map[string]string "Invalid account type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /accounts [get]
func (h *chartHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.ListAccountsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query params for ListAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.chartService.ListAccounts(c.Request.Context(), domain.AccountType(q.Type), domain.AccountSubType(q.SubType))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list accounts")
		return
	}

	logger.Info("Accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// getAccount godoc
// @Summary Get an account by code
// @Tags accounts
// @Produce json
// @Param code path string true "Account code"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{code} [get]
func (h *chartHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_code", c.Param("code")))

	account, err := h.chartService.GetAccount(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(*account))
}

// mapExpenseCategory godoc
// @Summary Resolve an expense category to its account
// @Description Unknown categories resolve to Other Expenses
// @Tags accounts
// @Produce json
// @Param category path string true "Expense category"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /account-mappings/expense/{category} [get]
func (h *chartHandler) mapExpenseCategory(c *gin.Context) {
	account := h.chartService.MapExpenseCategory(c.Request.Context(), c.Param("category"))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// mapPaymentType godoc
// @Summary Resolve a payment type to its revenue account
// @Description Unknown payment types resolve to Rental Income
// @Tags accounts
// @Produce json
// @Param paymentType path string true "Payment type"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /account-mappings/payment/{paymentType} [get]
func (h *chartHandler) mapPaymentType(c *gin.Context) {
	account := h.chartService.MapPaymentType(c.Request.Context(), c.Param("paymentType"))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
