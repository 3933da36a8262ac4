package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/travelpay_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	"github.com/SscSPs/travelpay_ledger/internal/core/services"
	"github.com/SscSPs/travelpay_ledger/internal/dto"
)

func postReq(description, debitCode, creditCode, amount string) dto.PostJournalEntryRequest {
	return dto.PostJournalEntryRequest{
		Description: description,
		Debits:      []dto.PostingLineRequest{line(debitCode, amount)},
		Credits:     []dto.PostingLineRequest{line(creditCode, amount)},
	}
}

func flightReq(orderID, amount string) dto.FlightBookingSettlementRequest {
	return dto.FlightBookingSettlementRequest{OrderID: orderID, Amount: amt(amount)}
}

func TestReporting_FinancialSummaryFromBalances(t *testing.T) {
	repo := new(MockAccountRepository)
	repo.On("ListAccounts", context.Background()).Return([]domain.Account{
		{Code: "1010", AccountType: domain.Asset, Balance: amt("1000")},
		{Code: "1020", AccountType: domain.Asset, Balance: amt("500")},
		{Code: "2010", AccountType: domain.Liability, IsUserWallet: true, Balance: amt("450")},
		{Code: "2030", AccountType: domain.Liability, Balance: amt("300")},
		{Code: "3010", AccountType: domain.Equity, Balance: amt("1000")},
		{Code: "4010", AccountType: domain.Revenue, Balance: amt("50")},
		{Code: "4020", AccountType: domain.Revenue, Balance: amt("5")},
		{Code: "5010", AccountType: domain.Expense, Balance: amt("12")},
	}, nil)

	summary, err := services.NewReportingService(repo).FinancialSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, amt("55").Equal(summary.TotalRevenue))
	assert.True(t, amt("12").Equal(summary.TotalExpenses))
	assert.True(t, amt("43").Equal(summary.NetProfit))
	assert.True(t, amt("450").Equal(summary.UserLiabilities))
	assert.True(t, amt("1500").Equal(summary.HouseLiquidity))
}

func TestReporting_RepositoryError(t *testing.T) {
	repo := new(MockAccountRepository)
	dbErr := errors.New("boom")
	repo.On("ListAccounts", context.Background()).Return(nil, dbErr)
	svc := services.NewReportingService(repo)

	_, err := svc.FinancialSummary(context.Background())
	assert.ErrorIs(t, err, dbErr)
	_, err = svc.TrialBalance(context.Background())
	assert.ErrorIs(t, err, dbErr)
}

func TestReporting_TrialBalanceColumnsAgree(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider()
	ledger := services.NewLedgerService(repos.AccountRepo, repos.JournalRepo)
	settlement := services.NewSettlementService(ledger)
	reporting := services.NewReportingService(repos.AccountRepo)

	_, err := ledger.PostJournalEntry(ctx, postReq("Owner funding", domain.AccountHouseCash, domain.AccountOwnerEquity, "1000"), "ops")
	require.NoError(t, err)
	_, err = ledger.PostJournalEntry(ctx, postReq("Card fees", domain.AccountProcessingCosts, domain.AccountHouseCash, "7.5"), "ops")
	require.NoError(t, err)
	_, err = settlement.RecordFlightBooking(ctx, flightReq("ORD-1", "500"), "user-1")
	require.NoError(t, err)
	// Drives P2P escrow negative so its row lands in the debit column
	_, err = ledger.PostJournalEntry(ctx, postReq("Escrow release", domain.AccountP2PEscrow, domain.AccountUserLiability, "20"), "ops")
	require.NoError(t, err)

	rows, err := reporting.TrialBalance(ctx)
	require.NoError(t, err)
	require.Len(t, rows, len(domain.DefaultChartOfAccounts()))

	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	byCode := make(map[string]domain.TrialBalanceRow)
	for _, r := range rows {
		totalDebit = totalDebit.Add(r.Debit)
		totalCredit = totalCredit.Add(r.Credit)
		byCode[r.AccountCode] = r
	}
	assert.True(t, totalDebit.Equal(totalCredit), "debits %s != credits %s", totalDebit, totalCredit)
	assert.True(t, amt("20").Equal(byCode[domain.AccountP2PEscrow].Debit))
	assert.True(t, amt("992.5").Equal(byCode[domain.AccountHouseCash].Debit))

	summary, err := reporting.FinancialSummary(ctx)
	require.NoError(t, err)
	assert.True(t, amt("50").Equal(summary.TotalRevenue))
	assert.True(t, amt("42.5").Equal(summary.NetProfit))
	assert.True(t, amt("450").Equal(summary.UserLiabilities))
	assert.True(t, amt("1492.5").Equal(summary.HouseLiquidity))
}
