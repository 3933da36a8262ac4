package services

import (
	"errors"
	"fmt"

	"github.com/SscSPs/travelpay_ledger/internal/apperrors"
	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrDescriptionMissing = fmt.Errorf("%w: journal entry description is required", apperrors.ErrValidation)
	ErrNoDebitLines       = fmt.Errorf("%w: journal entry needs at least one debit line", apperrors.ErrValidation)
	ErrNoCreditLines      = fmt.Errorf("%w: journal entry needs at least one credit line", apperrors.ErrValidation)
	ErrReversalOfReversal = fmt.Errorf("%w: a reversal entry cannot itself be reversed", apperrors.ErrValidation)
	ErrSettlementFailed   = errors.New("settlement failed")
)

// UnbalancedEntryError reports a journal entry whose debit and credit totals differ.
type UnbalancedEntryError struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("journal entry is unbalanced: debits %s, credits %s", e.Debits.String(), e.Credits.String())
}

func (e *UnbalancedEntryError) Unwrap() error { return apperrors.ErrValidation }

// UnknownAccountError reports a line that references an account outside the chart.
type UnknownAccountError struct {
	AccountCode string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("unknown account code %q", e.AccountCode)
}

func (e *UnknownAccountError) Unwrap() error { return apperrors.ErrValidation }

// InvalidAmountError reports a line amount that is not positive or has more than domain.AmountScale decimal places.
type InvalidAmountError struct {
	AccountCode string
	Amount      decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	if e.Amount.IsPositive() {
		return fmt.Sprintf("amount %s for account %s has more than %d decimal places", e.Amount.String(), e.AccountCode, domain.AmountScale)
	}
	return fmt.Sprintf("amount %s for account %s must be positive", e.Amount.String(), e.AccountCode)
}

func (e *InvalidAmountError) Unwrap() error { return apperrors.ErrValidation }
