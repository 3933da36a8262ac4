package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineType indicates whether a ledger line is a debit or a credit.
type LineType string

const (
	Debit  LineType = "debit"
	Credit LineType = "credit"
)

// Opposite returns the other side of the entry.
func (t LineType) Opposite() LineType {
	if t == Debit {
		return Credit
	}
	return Debit
}

// AmountScale is the number of decimal places a line amount may carry. Storage keeps amounts at this scale.
const AmountScale = 4

// LedgerLine is one debit or credit movement against one account.
type LedgerLine struct {
	LineID         string          `json:"lineID"`         // Primary Key (UUID)
	JournalEntryID string          `json:"journalEntryID"` // Back-reference to the owning entry
	AccountCode    string          `json:"accountCode"`    // FK -> Account.Code
	LineType       LineType        `json:"lineType"`       // debit or credit
	Amount         decimal.Decimal `json:"amount"`         // Always positive
	Timestamp      time.Time       `json:"timestamp"`      // Copied from the entry
}

// PostingLine is a requested (accountCode, amount) pair before it becomes a LedgerLine.
type PostingLine struct {
	AccountCode string
	Amount      decimal.Decimal
}
