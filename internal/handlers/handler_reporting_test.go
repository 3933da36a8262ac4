package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/travelpay_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/travelpay_ledger/internal/core/ports/services"
	"github.com/SscSPs/travelpay_ledger/internal/core/services"
	"github.com/SscSPs/travelpay_ledger/internal/dto"
	"github.com/SscSPs/travelpay_ledger/internal/handlers"
	"github.com/SscSPs/travelpay_ledger/internal/platform/config"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

func (m *MockReportingService) FinancialSummary(ctx context.Context) (*domain.FinancialSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}

func (m *MockReportingService) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func newReportingRouter(t *testing.T, reporting portssvc.ReportingService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}
	repos := memory.NewRepositoryProvider()
	ledger := services.NewLedgerService(repos.AccountRepo, repos.JournalRepo)
	handlers.RegisterRoutes(router, cfg, &portssvc.ServiceContainer{
		Ledger:     ledger,
		Reporting:  reporting,
		Settlement: services.NewSettlementService(ledger),
	})
	return router
}

func getWithToken(t *testing.T, router *gin.Engine, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+generateTestToken(t, "analyst"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestReportingHandler_FinancialSummary(t *testing.T) {
	reporting := new(MockReportingService)
	reporting.On("FinancialSummary", mock.Anything).Return(&domain.FinancialSummary{
		TotalRevenue:    decimal.NewFromInt(120),
		TotalExpenses:   decimal.NewFromInt(20),
		NetProfit:       decimal.NewFromInt(100),
		UserLiabilities: decimal.NewFromInt(900),
		HouseLiquidity:  decimal.NewFromInt(1000),
	}, nil).Once()

	w := getWithToken(t, newReportingRouter(t, reporting), "/api/v1/reports/financial-summary")

	require.Equal(t, http.StatusOK, w.Code)
	var body dto.FinancialSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, decimal.NewFromInt(100).Equal(body.NetProfit))
	assert.True(t, decimal.NewFromInt(900).Equal(body.UserLiabilities))
	reporting.AssertExpectations(t)
}

func TestReportingHandler_InternalErrorIsHidden(t *testing.T) {
	reporting := new(MockReportingService)
	reporting.On("TrialBalance", mock.Anything).Return(nil, errors.New("pq: connection refused")).Once()

	w := getWithToken(t, newReportingRouter(t, reporting), "/api/v1/reports/trial-balance")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	reporting.AssertExpectations(t)
}
