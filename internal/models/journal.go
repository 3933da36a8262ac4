package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineType is the stored form of a debit/credit marker.
type LineType string

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	JournalEntryID    string  `db:"journal_entry_id"`
	Description       string  `db:"description"`
	RelatedDocumentID string  `db:"related_document_id"`
	ReversesEntryID   *string `db:"reverses_entry_id"` // Nullable, unique when set
	AuditFields
}

// LedgerLine is a row of the ledger_lines table. Position keeps the posting order within an entry.
type LedgerLine struct {
	LineID         string          `db:"line_id"`
	JournalEntryID string          `db:"journal_entry_id"`
	Position       int             `db:"position"`
	AccountCode    string          `db:"account_code"`
	LineType       LineType        `db:"line_type"`
	Amount         decimal.Decimal `db:"amount"`
	Timestamp      time.Time       `db:"created_at"`
}
