package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/travelpay_ledger/internal/core/ports/services"
	"github.com/SscSPs/travelpay_ledger/internal/dto"
	"github.com/SscSPs/travelpay_ledger/internal/middleware"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/financial-summary", h.getFinancialSummary)
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
	}
}

// getFinancialSummary godoc
// @Summary Get the financial summary
// @Description Aggregates revenue, net profit, user liabilities and house liquidity from live balances
// @Tags reports
// @Produce json
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/financial-summary [get]
func (h *reportingHandler) getFinancialSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.FinancialSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate financial summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(summary))
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Lists every account with its balance in the debit or credit column
// @Tags reports
// @Produce json
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate trial balance")
		return
	}

	logger.Debug("Trial balance generated")
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows))
}
