package services

import (
	"context"

	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// FinancialSummary aggregates revenue, profit, user liabilities and house liquidity from live balances
	FinancialSummary(ctx context.Context) (*domain.FinancialSummary, error)

	// TrialBalance lists every account with its balance in the debit or credit column
	TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error)
}
