package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/travelpay_ledger/internal/core/ports/services"
	"github.com/SscSPs/travelpay_ledger/internal/dto"
	"github.com/SscSPs/travelpay_ledger/internal/middleware"
)

// settlementHandler exposes the business flows that post to the ledger.
type settlementHandler struct {
	settlementService portssvc.SettlementSvcFacade
	ledgerService     portssvc.ChartOfAccountsReaderSvc
}

func newSettlementHandler(ss portssvc.SettlementSvcFacade, ls portssvc.ChartOfAccountsReaderSvc) *settlementHandler {
	return &settlementHandler{
		settlementService: ss,
		ledgerService:     ls,
	}
}

// registerSettlementRoutes registers the /settlements routes.
func registerSettlementRoutes(rg *gin.RouterGroup, settlementService portssvc.SettlementSvcFacade, ledgerService portssvc.ChartOfAccountsReaderSvc) {
	h := newSettlementHandler(settlementService, ledgerService)

	settlementGroup := rg.Group("/settlements")
	{
		settlementGroup.POST("/flight-bookings", h.recordFlightBooking)
		settlementGroup.POST("/p2p-trades", h.settleP2PTrade)
		settlementGroup.POST("/transfers", h.recordUserTransfer)
	}
}

// settle binds req, runs the flow as the authenticated user and writes the resulting entry.
func settle[T any](c *gin.Context, h *settlementHandler, flow string, run func(ctx context.Context, req T, userID string) (*domain.JournalEntry, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("flow", flow))

	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind settlement request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := run(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record "+flow)
		return
	}

	accounts, err := h.ledgerService.GetChartOfAccounts(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to load chart of accounts")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry, dto.AccountNames(accounts)))
}

// recordFlightBooking godoc
// @Summary Record a flight booking payment
// @Description Posts Dr User Funds / Cr User Liability / Cr Flight Revenue for the service fee
// @Tags settlements
// @Accept json
// @Produce json
// @Param booking body dto.FlightBookingSettlementRequest true "Flight booking"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid request or booking failed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record flight booking"
// @Security BearerAuth
// @Router /settlements/flight-bookings [post]
func (h *settlementHandler) recordFlightBooking(c *gin.Context) {
	settle(c, h, "flight booking", h.settlementService.RecordFlightBooking)
}

// settleP2PTrade godoc
// @Summary Settle a P2P trade
// @Description Posts Dr User Liability / Cr P2P Escrow / Cr P2P Trading Fees
// @Tags settlements
// @Accept json
// @Produce json
// @Param trade body dto.P2PTradeSettlementRequest true "P2P trade"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid request or trade failed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record p2p trade"
// @Security BearerAuth
// @Router /settlements/p2p-trades [post]
func (h *settlementHandler) settleP2PTrade(c *gin.Context) {
	settle(c, h, "p2p trade", h.settlementService.SettleP2PTrade)
}

// recordUserTransfer godoc
// @Summary Record a user-to-user transfer
// @Description Moves funds between wallets inside User Liability and books the transfer fee
// @Tags settlements
// @Accept json
// @Produce json
// @Param transfer body dto.UserTransferRequest true "Transfer"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid request or transfer failed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record user transfer"
// @Security BearerAuth
// @Router /settlements/transfers [post]
func (h *settlementHandler) recordUserTransfer(c *gin.Context) {
	settle(c, h, "user transfer", h.settlementService.RecordUserTransfer)
}
