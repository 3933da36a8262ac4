package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/travelpay_ledger/internal/core/ports/services"
	"github.com/SscSPs/travelpay_ledger/internal/dto"
	"github.com/SscSPs/travelpay_ledger/internal/middleware"
)

// ledgerHandler handles HTTP requests for the chart of accounts, the journal and the general ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers the /ledger routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledgerGroup := rg.Group("/ledger")
	{
		ledgerGroup.GET("/accounts", h.getChartOfAccounts)
		ledgerGroup.POST("/journal-entries", h.postJournalEntry)
		ledgerGroup.GET("/journal-entries", h.listJournalEntries)
		ledgerGroup.GET("/journal-entries/:entryID", h.getJournalEntry)
		ledgerGroup.POST("/journal-entries/:entryID/reverse", h.reverseJournalEntry)
		ledgerGroup.GET("/general-ledger", h.listGeneralLedger)
	}
}

// accountNames loads the chart and returns the code -> name lookup for presentation.
func (h *ledgerHandler) accountNames(c *gin.Context) (map[string]string, bool) {
	accounts, err := h.ledgerService.GetChartOfAccounts(c.Request.Context())
	if err != nil {
		respondWithError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "Failed to load chart of accounts")
		return nil, false
	}
	return dto.AccountNames(accounts), true
}

// getChartOfAccounts godoc
// @Summary List the chart of accounts
// @Description Returns every account with its current type-normal balance
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.ChartOfAccountsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load chart of accounts"
// @Security BearerAuth
// @Router /ledger/accounts [get]
func (h *ledgerHandler) getChartOfAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.ledgerService.GetChartOfAccounts(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to load chart of accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToChartOfAccountsResponse(accounts))
}

// postJournalEntry godoc
// @Summary Post a journal entry
// @Description Validates and atomically records a balanced set of debit and credit lines
// @Tags ledger
// @Accept json
// @Produce json
// @Param entry body dto.PostJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid, unbalanced or unknown-account posting"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to post journal entry"
// @Security BearerAuth
// @Router /ledger/journal-entries [post]
func (h *ledgerHandler) postJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PostJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind journal entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.PostJournalEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to post journal entry")
		return
	}

	names, ok := h.accountNames(c)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry, names))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Returns every journal entry with its lines, oldest first unless order=desc
// @Tags ledger
// @Produce json
// @Param order query string false "asc (default) or desc"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid order"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list journal entries"
// @Security BearerAuth
// @Router /ledger/journal-entries [get]
func (h *ledgerHandler) listJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	order := c.DefaultQuery("order", "asc")
	if order != "asc" && order != "desc" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order must be asc or desc"})
		return
	}

	entries, err := h.ledgerService.GetJournalEntries(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list journal entries")
		return
	}

	names, ok := h.accountNames(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToListJournalEntriesResponse(entries, names, order == "desc"))
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Description Retrieves a journal entry and its lines by ID
// @Tags ledger
// @Produce json
// @Param entryID path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal entry"
// @Security BearerAuth
// @Router /ledger/journal-entries/{entryID} [get]
func (h *ledgerHandler) getJournalEntry(c *gin.Context) {
	entryID := c.Param("entryID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("journal_entry_id", entryID))

	entry, err := h.ledgerService.GetJournalEntry(c.Request.Context(), entryID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve journal entry")
		return
	}

	names, ok := h.accountNames(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry, names))
}

// reverseJournalEntry godoc
// @Summary Reverse a journal entry
// @Description Posts a new entry that swaps every debit and credit of the original
// @Tags ledger
// @Produce json
// @Param entryID path string true "Journal entry ID"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Entry is itself a reversal"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 409 {object} map[string]string "Entry already reversed"
// @Failure 500 {object} map[string]string "Failed to reverse journal entry"
// @Security BearerAuth
// @Router /ledger/journal-entries/{entryID}/reverse [post]
func (h *ledgerHandler) reverseJournalEntry(c *gin.Context) {
	entryID := c.Param("entryID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("journal_entry_id", entryID))

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reversal, err := h.ledgerService.ReverseJournalEntry(c.Request.Context(), entryID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to reverse journal entry")
		return
	}

	names, ok := h.accountNames(c)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(reversal, names))
}

// listGeneralLedger godoc
// @Summary List general ledger lines
// @Description Returns ledger lines in posting order, optionally for one account, one page at a time
// @Tags ledger
// @Produce json
// @Param accountCode query string false "Only lines for this account"
// @Param limit query int false "Page size (1-500)" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListGeneralLedgerResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list general ledger"
// @Security BearerAuth
// @Router /ledger/general-ledger [get]
func (h *ledgerHandler) listGeneralLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListGeneralLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind general ledger query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.ledgerService.ListGeneralLedger(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list general ledger")
		return
	}

	c.JSON(http.StatusOK, page)
}
