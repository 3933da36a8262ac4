package services

import (
	"context"

	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	"github.com/SscSPs/travelpay_ledger/internal/dto"
)

// ChartOfAccountsReaderSvc defines read operations for the chart of accounts
type ChartOfAccountsReaderSvc interface {
	// GetChartOfAccounts returns the fixed list of accounts with current balances.
	GetChartOfAccounts(ctx context.Context) ([]domain.Account, error)
}

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalEntries returns all journal entries in insertion order, each with its lines.
	GetJournalEntries(ctx context.Context) ([]domain.JournalEntry, error)

	// GetJournalEntry retrieves a specific journal entry by its ID.
	GetJournalEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error)
}

// GeneralLedgerReaderSvc defines read operations for the flat general ledger
type GeneralLedgerReaderSvc interface {
	// GetGeneralLedger returns all ledger lines, optionally filtered by account code ("" means all).
	GetGeneralLedger(ctx context.Context, accountCode string) ([]domain.LedgerLine, error)

	// ListGeneralLedger returns one page of ledger lines with account names joined in.
	ListGeneralLedger(ctx context.Context, params dto.ListGeneralLedgerParams) (*dto.ListGeneralLedgerResponse, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// PostJournalEntry validates and atomically records a balanced journal entry.
	PostJournalEntry(ctx context.Context, req dto.PostJournalEntryRequest, postedBy string) (*domain.JournalEntry, error)

	// ReverseJournalEntry posts an offsetting entry for an existing one.
	ReverseJournalEntry(ctx context.Context, entryID string, postedBy string) (*domain.JournalEntry, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
// This is a facade for clients that need access to all operations
type LedgerSvcFacade interface {
	ChartOfAccountsReaderSvc
	JournalReaderSvc
	GeneralLedgerReaderSvc
	JournalWriterSvc
}
