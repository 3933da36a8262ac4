package accounting

import (
	"testing"

	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSignedAmount(t *testing.T) {
	hundred := decimal.NewFromInt(100)
	tests := []struct {
		name        string
		lineType    domain.LineType
		accountType domain.AccountType
		want        decimal.Decimal
	}{
		{"debit asset", domain.Debit, domain.Asset, hundred},
		{"credit asset", domain.Credit, domain.Asset, hundred.Neg()},
		{"debit expense", domain.Debit, domain.Expense, hundred},
		{"credit liability", domain.Credit, domain.Liability, hundred},
		{"debit liability", domain.Debit, domain.Liability, hundred.Neg()},
		{"credit revenue", domain.Credit, domain.Revenue, hundred},
		{"debit equity", domain.Debit, domain.Equity, hundred.Neg()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := domain.LedgerLine{AccountCode: "x", LineType: tt.lineType, Amount: hundred}
			got, err := CalculateSignedAmount(line, tt.accountType)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}

	_, err := CalculateSignedAmount(domain.LedgerLine{AccountCode: "x", LineType: domain.Debit, Amount: hundred}, "INCOME")
	assert.Error(t, err)
}

func TestCalculateBalanceChanges(t *testing.T) {
	types := map[string]domain.AccountType{
		domain.AccountUserLiability: domain.Liability,
		domain.AccountTransferFees:  domain.Revenue,
	}
	lines := []domain.LedgerLine{
		{AccountCode: domain.AccountUserLiability, LineType: domain.Debit, Amount: decimal.NewFromInt(105)},
		{AccountCode: domain.AccountUserLiability, LineType: domain.Credit, Amount: decimal.NewFromInt(100)},
		{AccountCode: domain.AccountTransferFees, LineType: domain.Credit, Amount: decimal.NewFromInt(5)},
	}

	changes, err := CalculateBalanceChanges(lines, types)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(-5).Equal(changes[domain.AccountUserLiability]))
	assert.True(t, decimal.NewFromInt(5).Equal(changes[domain.AccountTransferFees]))

	_, err = CalculateBalanceChanges([]domain.LedgerLine{{AccountCode: "9999", LineType: domain.Debit}}, types)
	assert.Error(t, err)
}

func TestSplitNormalBalance(t *testing.T) {
	debit, credit := SplitNormalBalance(decimal.NewFromInt(40), domain.Asset)
	assert.True(t, decimal.NewFromInt(40).Equal(debit))
	assert.True(t, credit.IsZero())

	debit, credit = SplitNormalBalance(decimal.NewFromInt(-40), domain.Asset)
	assert.True(t, debit.IsZero())
	assert.True(t, decimal.NewFromInt(40).Equal(credit))

	debit, credit = SplitNormalBalance(decimal.NewFromInt(25), domain.Revenue)
	assert.True(t, debit.IsZero())
	assert.True(t, decimal.NewFromInt(25).Equal(credit))

	debit, credit = SplitNormalBalance(decimal.NewFromInt(-25), domain.Liability)
	assert.True(t, decimal.NewFromInt(25).Equal(debit))
	assert.True(t, credit.IsZero())
}

func TestSumAmounts(t *testing.T) {
	lines := []domain.PostingLine{
		{AccountCode: "a", Amount: decimal.RequireFromString("0.10")},
		{AccountCode: "b", Amount: decimal.RequireFromString("0.20")},
	}
	assert.True(t, decimal.RequireFromString("0.30").Equal(SumAmounts(lines)))
	assert.True(t, SumAmounts(nil).IsZero())
}
