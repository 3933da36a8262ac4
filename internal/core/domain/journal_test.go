package domain_test

import (
	"testing"

	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountType_IsDebitNormal(t *testing.T) {
	tests := []struct {
		accountType domain.AccountType
		want        bool
	}{
		{domain.Asset, true},
		{domain.Expense, true},
		{domain.Liability, false},
		{domain.Equity, false},
		{domain.Revenue, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.accountType), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.accountType.IsDebitNormal())
			assert.True(t, tt.accountType.IsValid())
		})
	}
	assert.False(t, domain.AccountType("INCOME").IsValid())
}

func TestJournalEntry_Totals(t *testing.T) {
	entry := domain.JournalEntry{
		Lines: []domain.LedgerLine{
			{AccountCode: domain.AccountUserFunds, LineType: domain.Debit, Amount: decimal.NewFromInt(500)},
			{AccountCode: domain.AccountUserLiability, LineType: domain.Credit, Amount: decimal.NewFromInt(450)},
			{AccountCode: domain.AccountFlightRevenue, LineType: domain.Credit, Amount: decimal.NewFromInt(50)},
		},
	}

	assert.True(t, decimal.NewFromInt(500).Equal(entry.TotalDebits()))
	assert.True(t, decimal.NewFromInt(500).Equal(entry.TotalCredits()))
	assert.True(t, entry.IsBalanced())
	assert.False(t, entry.IsReversal())

	entry.Lines = entry.Lines[:2]
	assert.False(t, entry.IsBalanced())
}

func TestJournalEntry_CloneDoesNotAlias(t *testing.T) {
	entry := domain.JournalEntry{
		JournalEntryID: "je-1",
		Lines:          []domain.LedgerLine{{LineID: "l-1", LineType: domain.Debit}},
	}

	clone := entry.Clone()
	clone.Lines[0].LineID = "changed"

	assert.Equal(t, "l-1", entry.Lines[0].LineID)
	assert.Equal(t, domain.Credit, domain.Debit.Opposite())
	assert.Equal(t, domain.Debit, domain.Credit.Opposite())
}

func TestDefaultChartOfAccounts(t *testing.T) {
	accounts := domain.DefaultChartOfAccounts()
	seen := make(map[string]bool, len(accounts))

	for _, acc := range accounts {
		assert.False(t, seen[acc.Code], "duplicate account code %s", acc.Code)
		seen[acc.Code] = true
		assert.True(t, acc.AccountType.IsValid())
		assert.True(t, acc.Balance.IsZero())
		if acc.IsUserWallet {
			assert.Equal(t, domain.Liability, acc.AccountType)
		}
	}
	assert.Equal(t, "User Funds", accounts[1].Name)
}
