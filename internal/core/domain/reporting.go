package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// FinancialSummary aggregates the house position from live account balances.
type FinancialSummary struct {
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`    // Sum of REVENUE balances
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`   // Sum of EXPENSE balances
	NetProfit       decimal.Decimal `json:"netProfit"`       // Revenue minus expenses
	UserLiabilities decimal.Decimal `json:"userLiabilities"` // Sum of user wallet LIABILITY balances
	HouseLiquidity  decimal.Decimal `json:"houseLiquidity"`  // Sum of ASSET balances
}
