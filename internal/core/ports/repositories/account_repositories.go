package repositories

import (
	"context"

	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts
type AccountReader interface {
	// ListAccounts returns every account ordered by code, with current balances.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// FindAccountsByCodes returns the accounts that exist among the given codes, keyed by code.
	// Missing codes are simply absent from the map.
	FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error)
}

// AccountWriter defines write operations for the chart of accounts
type AccountWriter interface {
	// SeedAccounts inserts the given accounts if they are not present yet. Existing balances are untouched.
	SeedAccounts(ctx context.Context, accounts []domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
