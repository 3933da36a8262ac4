package models

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

// Account is a row of the accounts table.
type Account struct {
	Code         string          `db:"code"`
	Name         string          `db:"name"`
	AccountType  AccountType     `db:"account_type"`
	IsUserWallet bool            `db:"is_user_wallet"`
	Balance      decimal.Decimal `db:"balance"` // Persisted type-normal balance
}
