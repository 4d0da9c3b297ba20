package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/dto"
	"github.com/SscSPs/property_ledger/internal/middleware"
	"github.com/SscSPs/property_ledger/internal/utils/spreadsheet"
	"github.com/gin-gonic/gin"
)

type postFunc func(ctx context.Context, tenantID, recordID, userID string) ([]domain.JournalEntry, error)

// journalHandler posts source records to the ledger and reads entries back.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	chartService   portssvc.ChartSvc
	currency       string
}

func newJournalHandler(js portssvc.JournalSvcFacade, cs portssvc.ChartSvc, currency string) *journalHandler {
	return &journalHandler{journalService: js, chartService: cs, currency: currency}
}

// RegisterJournalRoutes registers posting and journal query routes on rg.
// currency is the default display currency for balances.
func RegisterJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, chartService portssvc.ChartSvc, currency string) {
	registerValidators()
	h := newJournalHandler(journalService, chartService, currency)

	journal := rg.Group("/journal")
	{
		journal.POST("/payments/:id", h.recordPayment)
		journal.POST("/expenses/:id", h.recordExpense)
		journal.POST("/invoices/:id", h.recordInvoice)
		journal.POST("/deposits/:id", h.recordDeposit)

		journal.GET("/entries", h.listEntries)
		journal.GET("/references/:type/:id", h.entriesForReference)
		journal.GET("/balances/:code", h.accountBalance)
	}
}

// recordPayment godoc
// @Summary Post a payment to the ledger
// @Description Creates the journal entries for a paid payment. Repeating the call returns the entries already posted. Pending payments produce no entries.
// @Tags journal
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PostingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Concurrent posting conflict"
// @Failure 500 {object} map[string]string "Failed to post payment"
// @Security BearerAuth
// @Router /journal/payments/{id} [post]
func (h *journalHandler) recordPayment(c *gin.Context) {
	h.post(c, domain.PaymentReference, h.journalService.RecordPayment, "Failed to post payment")
}

// recordExpense godoc
// @Summary Post an expense to the ledger
// @Description Approved expenses accrue to accounts payable, paid expenses settle from cash
// @Tags journal
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.PostingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to post expense"
// @Security BearerAuth
// @Router /journal/expenses/{id} [post]
func (h *journalHandler) recordExpense(c *gin.Context) {
	h.post(c, domain.ExpenseReference, h.journalService.RecordExpense, "Failed to post expense")
}

// recordInvoice godoc
// @Summary Post an invoice to the ledger
// @Tags journal
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.PostingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to post invoice"
// @Security BearerAuth
// @Router /journal/invoices/{id} [post]
func (h *journalHandler) recordInvoice(c *gin.Context) {
	h.post(c, domain.InvoiceReference, h.journalService.RecordInvoice, "Failed to post invoice")
}

// recordDeposit godoc
// @Summary Post a lease's security deposit to the ledger
// @Tags journal
// @Produce json
// @Param id path string true "Lease ID"
// @Success 200 {object} dto.PostingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Lease not found"
// @Failure 500 {object} map[string]string "Failed to post deposit"
// @Security BearerAuth
// @Router /journal/deposits/{id} [post]
func (h *journalHandler) recordDeposit(c *gin.Context) {
	h.post(c, domain.LeaseReference, h.journalService.RecordDeposit, "Failed to post deposit")
}

func (h *journalHandler) post(c *gin.Context, refType domain.ReferenceType, record postFunc, failure string) {
	recordID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("reference_type", string(refType)),
		slog.String("reference_id", recordID),
	)

	tenantID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to post source record")
	entries, err := record(c.Request.Context(), tenantID, recordID, userID)
	if err != nil {
		writeServiceError(c, logger, err, failure)
		return
	}

	logger.Info("Source record posted", slog.Int("entry_count", len(entries)))
	c.JSON(http.StatusOK, dto.PostingResponse{
		ReferenceType: refType,
		ReferenceID:   recordID,
		Entries:       dto.ToJournalEntryResponses(entries),
	})
}

// listEntries godoc
// @Summary List journal entries in a period
// @Tags journal
// @Produce json
// @Param fromDate query string true "Start date (YYYY-MM-DD)"
// @Param toDate query string true "End date (YYYY-MM-DD)"
// @Param format query string false "Response format (json, xlsx)"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list journal entries"
// @Security BearerAuth
// @Router /journal/entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}
	q, from, to, ok := bindPeriod(c, logger)
	if !ok {
		return
	}

	entries, err := h.journalService.ListEntries(c.Request.Context(), tenantID, from, to)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list journal entries")
		return
	}
	if q.Format == dto.FormatXLSX {
		f, err := spreadsheet.JournalEntriesWorkbook(entries)
		writeWorkbook(c, logger, "journal_"+q.FromDate+"_"+q.ToDate+".xlsx", f, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListJournalEntriesResponse{Entries: dto.ToJournalEntryResponses(entries)})
}

// entriesForReference godoc
// @Summary List the entries posted for one source record
// @Tags journal
// @Produce json
// @Param type path string true "Reference type (payment, expense, invoice, lease)"
// @Param id path string true "Source record ID"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Unknown reference type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list journal entries"
// @Security BearerAuth
// @Router /journal/references/{type}/{id} [get]
func (h *journalHandler) entriesForReference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	refType := domain.ReferenceType(c.Param("type"))
	entries, err := h.journalService.EntriesForReference(c.Request.Context(), tenantID, refType, c.Param("id"))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, dto.ListJournalEntriesResponse{Entries: dto.ToJournalEntryResponses(entries)})
}

// accountBalance godoc
// @Summary Get an account balance
// @Description Balance in the account's normal direction, from entries dated on or before asOf
// @Tags journal
// @Produce json
// @Param code path string true "Account code"
// @Param asOf query string false "Balance date (YYYY-MM-DD)" default(current date)
// @Param currency query string false "Display currency (ISO 4217)"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to calculate balance"
// @Security BearerAuth
// @Router /journal/balances/{code} [get]
func (h *journalHandler) accountBalance(c *gin.Context) {
	code := c.Param("code")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_code", code))
	tenantID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}
	q, asOf, ok := bindAsOf(c, logger)
	if !ok {
		return
	}

	account, err := h.chartService.GetAccount(c.Request.Context(), code)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to calculate balance")
		return
	}

	balance, err := h.journalService.AccountBalance(c.Request.Context(), tenantID, code, asOf)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to calculate balance")
		return
	}

	c.JSON(http.StatusOK, dto.AccountBalanceResponse{
		AccountCode: account.Code,
		AccountName: account.Name,
		AsOf:        asOf.Format(domain.DateLayout),
		Balance:     dto.NewMoneyResponse(balance, currencyOr(q.Currency, h.currency)),
	})
}
