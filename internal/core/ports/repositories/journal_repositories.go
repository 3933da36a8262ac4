package repositories

import (
	"context"

	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalEntryByID retrieves a specific journal entry with its lines.
	// Returns apperrors.ErrNotFound when no entry has the id.
	FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries returns every journal entry in insertion order, lines included.
	ListJournalEntries(ctx context.Context) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournalEntry appends the entry and its lines and applies the balance changes, all or nothing.
	// A second reversal of the same entry fails with apperrors.ErrDuplicate.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, balanceChanges map[string]decimal.Decimal) error
}

// LedgerLineReader defines read operations for the flat general ledger
type LedgerLineReader interface {
	// ListLedgerLines returns all lines in insertion order. An empty accountCode means no filter.
	ListLedgerLines(ctx context.Context, accountCode string) ([]domain.LedgerLine, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	LedgerLineReader
}
