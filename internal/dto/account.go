package dto

import (
	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for a chart-of-accounts line.
// Mirrors domain.Account.
type AccountResponse struct {
	Code         string             `json:"code"`
	Name         string             `json:"name"`
	AccountType  domain.AccountType `json:"accountType"`
	IsUserWallet bool               `json:"isUserWallet"`
	Balance      decimal.Decimal    `json:"balance"`
}

// ChartOfAccountsResponse wraps the full chart.
type ChartOfAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		Code:         acc.Code,
		Name:         acc.Name,
		AccountType:  acc.AccountType,
		IsUserWallet: acc.IsUserWallet,
		Balance:      acc.Balance,
	}
}

// ToChartOfAccountsResponse converts the chart of accounts to its DTO.
func ToChartOfAccountsResponse(accounts []domain.Account) ChartOfAccountsResponse {
	resp := ChartOfAccountsResponse{Accounts: make([]AccountResponse, len(accounts))}
	for i := range accounts {
		resp.Accounts[i] = ToAccountResponse(&accounts[i])
	}
	return resp
}
