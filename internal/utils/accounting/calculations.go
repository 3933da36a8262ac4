package accounting

import (
	"fmt"

	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the correct sign to a line amount based on account type and line type.
// This is used in both services and repositories to ensure consistent accounting logic.
func CalculateSignedAmount(line domain.LedgerLine, accountType domain.AccountType) (decimal.Decimal, error) {
	signedAmount := line.Amount
	isDebit := line.LineType == domain.Debit

	// DEBIT to ASSET/EXPENSE -> Positive (+)
	// CREDIT to ASSET/EXPENSE -> Negative (-)
	// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
	// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit {
			signedAmount = signedAmount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Revenue:
		if isDebit {
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account %s", accountType, line.AccountCode)
	}
	return signedAmount, nil
}

// CalculateBalanceChanges nets the signed effect of every line per account code.
func CalculateBalanceChanges(lines []domain.LedgerLine, accountTypes map[string]domain.AccountType) (map[string]decimal.Decimal, error) {
	changes := make(map[string]decimal.Decimal)
	for _, line := range lines {
		accountType, ok := accountTypes[line.AccountCode]
		if !ok {
			return nil, fmt.Errorf("account type not found for account %s", line.AccountCode)
		}
		signedAmount, err := CalculateSignedAmount(line, accountType)
		if err != nil {
			return nil, err
		}
		changes[line.AccountCode] = changes[line.AccountCode].Add(signedAmount)
	}
	return changes, nil
}

// SumAmounts totals the amounts of the given posting lines.
func SumAmounts(lines []domain.PostingLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Amount)
	}
	return sum
}

// SplitNormalBalance places a type-normal balance into a debit or credit column, as a trial balance does.
// A negative balance lands in the opposite column as a positive amount.
func SplitNormalBalance(balance decimal.Decimal, accountType domain.AccountType) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	positive := !balance.IsNegative()
	if accountType.IsDebitNormal() == positive {
		debit = balance.Abs()
	} else {
		credit = balance.Abs()
	}
	return debit, credit
}
