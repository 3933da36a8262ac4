package domain

import (
	"github.com/shopspring/decimal"
)

// JournalEntry is one atomic, balanced business transaction composed of ledger lines.
type JournalEntry struct {
	JournalEntryID    string       `json:"journalEntryID"`            // Primary Key (UUID)
	Description       string       `json:"description"`               // Human readable
	RelatedDocumentID string       `json:"relatedDocumentID"`         // Opaque id of the originating order/trade/transfer
	ReversesEntryID   string       `json:"reversesEntryID,omitempty"` // Set only on reversal entries
	Lines             []LedgerLine `json:"lines"`
	AuditFields
}

// TotalDebits sums the amounts of all debit lines.
func (e JournalEntry) TotalDebits() decimal.Decimal {
	return e.total(Debit)
}

// TotalCredits sums the amounts of all credit lines.
func (e JournalEntry) TotalCredits() decimal.Decimal {
	return e.total(Credit)
}

// IsBalanced reports whether debits equal credits.
func (e JournalEntry) IsBalanced() bool {
	return e.TotalDebits().Equal(e.TotalCredits())
}

// IsReversal reports whether the entry offsets an earlier entry.
func (e JournalEntry) IsReversal() bool {
	return e.ReversesEntryID != ""
}

func (e JournalEntry) total(t LineType) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range e.Lines {
		if l.LineType == t {
			sum = sum.Add(l.Amount)
		}
	}
	return sum
}

// Clone returns a copy whose Lines slice does not alias the receiver's.
func (e JournalEntry) Clone() JournalEntry {
	c := e
	c.Lines = append([]LedgerLine(nil), e.Lines...)
	return c
}
