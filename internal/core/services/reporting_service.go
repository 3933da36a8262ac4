package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/travelpay_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travelpay_ledger/internal/core/ports/services"
	"github.com/SscSPs/travelpay_ledger/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountReader
}

// NewReportingService creates a new reporting service reading live account balances
func NewReportingService(repo portsrepo.AccountReader) portssvc.ReportingService {
	return &reportingService{
		accountRepo: repo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) listAccounts(ctx context.Context, report string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for report", slog.String("report", report))
		return nil, fmt.Errorf("failed to load accounts for %s: %w", report, err)
	}
	return accounts, nil
}

// FinancialSummary aggregates revenue, profit, user liabilities and house liquidity
func (s *reportingService) FinancialSummary(ctx context.Context) (*domain.FinancialSummary, error) {
	accounts, err := s.listAccounts(ctx, "financial summary")
	if err != nil {
		return nil, err
	}

	summary := domain.FinancialSummary{
		TotalRevenue:    decimal.Zero,
		TotalExpenses:   decimal.Zero,
		UserLiabilities: decimal.Zero,
		HouseLiquidity:  decimal.Zero,
	}
	for _, acc := range accounts {
		switch acc.AccountType {
		case domain.Revenue:
			summary.TotalRevenue = summary.TotalRevenue.Add(acc.Balance)
		case domain.Expense:
			summary.TotalExpenses = summary.TotalExpenses.Add(acc.Balance)
		case domain.Asset:
			summary.HouseLiquidity = summary.HouseLiquidity.Add(acc.Balance)
		case domain.Liability:
			if acc.IsUserWallet {
				summary.UserLiabilities = summary.UserLiabilities.Add(acc.Balance)
			}
		}
	}
	summary.NetProfit = summary.TotalRevenue.Sub(summary.TotalExpenses)

	s.LogDebug(ctx, "Financial summary generated", slog.String("net_profit", summary.NetProfit.String()))
	return &summary, nil
}

// TrialBalance lists every account with its balance in the debit or credit column
func (s *reportingService) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	accounts, err := s.listAccounts(ctx, "trial balance")
	if err != nil {
		return nil, err
	}

	rows := make([]domain.TrialBalanceRow, 0, len(accounts))
	for _, acc := range accounts {
		debit, credit := accounting.SplitNormalBalance(acc.Balance, acc.AccountType)
		rows = append(rows, domain.TrialBalanceRow{
			AccountCode: acc.Code,
			AccountName: acc.Name,
			AccountType: acc.AccountType,
			Debit:       debit,
			Credit:      credit,
		})
	}

	s.LogDebug(ctx, "Trial balance generated", slog.Int("row_count", len(rows)))
	return rows, nil
}
