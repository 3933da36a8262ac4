package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsDebitNormal reports whether a debit increases accounts of this type.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// IsValid reports whether t is one of the five known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account is a line in the chart of accounts.
type Account struct {
	Code         string          `json:"code"`         // Primary Key (e.g., "1010")
	Name         string          `json:"name"`         // Display name
	AccountType  AccountType     `json:"accountType"`  // ASSET, LIABILITY, etc.
	IsUserWallet bool            `json:"isUserWallet"` // Liability held on behalf of app users
	Balance      decimal.Decimal `json:"balance"`      // Signed, type-normal running balance
}

// Account codes of the seed chart.
const (
	AccountHouseCash         = "1010"
	AccountUserFunds         = "1020"
	AccountCardClearing      = "1030"
	AccountUserLiability     = "2010"
	AccountP2PEscrow         = "2020"
	AccountSupplierPayable   = "2030"
	AccountOwnerEquity       = "3010"
	AccountFlightRevenue     = "4010"
	AccountP2PTradingFees    = "4020"
	AccountTransferFees      = "4030"
	AccountProcessingCosts   = "5010"
	AccountOperatingExpenses = "5020"
)

// DefaultChartOfAccounts returns the seed chart every store starts from. Balances are zero.
func DefaultChartOfAccounts() []Account {
	return []Account{
		{Code: AccountHouseCash, Name: "House Cash", AccountType: Asset},
		{Code: AccountUserFunds, Name: "User Funds", AccountType: Asset},
		{Code: AccountCardClearing, Name: "Card Settlement Clearing", AccountType: Asset},
		{Code: AccountUserLiability, Name: "User Liability", AccountType: Liability, IsUserWallet: true},
		{Code: AccountP2PEscrow, Name: "P2P Escrow", AccountType: Liability, IsUserWallet: true},
		{Code: AccountSupplierPayable, Name: "Supplier Payable", AccountType: Liability},
		{Code: AccountOwnerEquity, Name: "Owner Equity", AccountType: Equity},
		{Code: AccountFlightRevenue, Name: "Flight Revenue", AccountType: Revenue},
		{Code: AccountP2PTradingFees, Name: "P2P Trading Fees", AccountType: Revenue},
		{Code: AccountTransferFees, Name: "Transfer Fees", AccountType: Revenue},
		{Code: AccountProcessingCosts, Name: "Payment Processing Costs", AccountType: Expense},
		{Code: AccountOperatingExpenses, Name: "Operating Expenses", AccountType: Expense},
	}
}
