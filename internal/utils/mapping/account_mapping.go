package mapping

import (
	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	"github.com/SscSPs/travelpay_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		Code:         d.Code,
		Name:         d.Name,
		AccountType:  models.AccountType(d.AccountType),
		IsUserWallet: d.IsUserWallet,
		Balance:      d.Balance,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		Code:         m.Code,
		Name:         m.Name,
		AccountType:  domain.AccountType(m.AccountType),
		IsUserWallet: m.IsUserWallet,
		Balance:      m.Balance,
	}
}
