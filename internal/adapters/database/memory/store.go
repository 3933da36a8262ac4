// Package memory provides the process-local ledger store.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/travelpay_ledger/internal/apperrors"
	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/travelpay_ledger/internal/core/ports/repositories"
)

// Store keeps the chart of accounts, the journal and the flat ledger in memory.
// Writers are serialized by mu; readers get copies and never observe a partially appended entry.
type Store struct {
	mu         sync.RWMutex
	accounts   map[string]*domain.Account
	order      []string // account codes, sorted
	journal    []domain.JournalEntry
	entryIndex map[string]int // journal entry id -> position in journal
	ledger     []domain.LedgerLine
	reversedBy map[string]string // original entry id -> reversal entry id
}

// NewStore creates a store seeded with accounts. It panics on an account with an unknown type.
func NewStore(accounts []domain.Account) *Store {
	s := &Store{
		accounts:   make(map[string]*domain.Account, len(accounts)),
		entryIndex: make(map[string]int),
		reversedBy: make(map[string]string),
	}
	if err := s.SeedAccounts(context.Background(), accounts); err != nil {
		panic(fmt.Sprintf("memory: invalid seed chart: %v", err))
	}
	return s
}

// NewRepositoryProvider returns a provider whose repositories share one store seeded with the default chart.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	store := NewStore(domain.DefaultChartOfAccounts())
	return portsrepo.RepositoryProvider{
		AccountRepo: store,
		JournalRepo: store,
	}
}

var (
	_ portsrepo.AccountRepositoryFacade = (*Store)(nil)
	_ portsrepo.JournalRepositoryFacade = (*Store)(nil)
)

// SeedAccounts inserts accounts that are not present yet. Nothing is inserted if any account is invalid.
func (s *Store) SeedAccounts(_ context.Context, accounts []domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range accounts {
		if !acc.AccountType.IsValid() {
			return fmt.Errorf("%w: account %s has invalid type %q", apperrors.ErrValidation, acc.Code, acc.AccountType)
		}
	}
	for _, acc := range accounts {
		if _, exists := s.accounts[acc.Code]; exists {
			continue
		}
		a := acc
		s.accounts[a.Code] = &a
		s.order = append(s.order, a.Code)
	}
	sort.Strings(s.order)
	return nil
}

// ListAccounts returns every account ordered by code.
func (s *Store) ListAccounts(_ context.Context) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(s.order))
	for _, code := range s.order {
		accounts = append(accounts, *s.accounts[code])
	}
	return accounts, nil
}

// FindAccountsByCodes returns the known accounts among codes.
func (s *Store) FindAccountsByCodes(_ context.Context, codes []string) (map[string]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[string]domain.Account, len(codes))
	for _, code := range codes {
		if acc, ok := s.accounts[code]; ok {
			found[code] = *acc
		}
	}
	return found, nil
}

// SaveJournalEntry appends the entry and its lines and applies balanceChanges as one critical section.
func (s *Store) SaveJournalEntry(_ context.Context, entry domain.JournalEntry, balanceChanges map[string]decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Check everything before mutating anything
	if _, exists := s.entryIndex[entry.JournalEntryID]; exists {
		return fmt.Errorf("%w: journal entry %s already exists", apperrors.ErrDuplicate, entry.JournalEntryID)
	}
	if entry.IsReversal() {
		if _, ok := s.entryIndex[entry.ReversesEntryID]; !ok {
			return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entry.ReversesEntryID)
		}
		if existing, reversed := s.reversedBy[entry.ReversesEntryID]; reversed {
			return fmt.Errorf("%w: journal entry %s is already reversed by %s", apperrors.ErrDuplicate, entry.ReversesEntryID, existing)
		}
	}
	for code := range balanceChanges {
		if _, ok := s.accounts[code]; !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, code)
		}
	}
	for _, line := range entry.Lines {
		if _, ok := s.accounts[line.AccountCode]; !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, line.AccountCode)
		}
	}

	for code, change := range balanceChanges {
		acc := s.accounts[code]
		acc.Balance = acc.Balance.Add(change)
	}

	stored := entry.Clone()
	s.ledger = append(s.ledger, stored.Lines...)
	s.entryIndex[stored.JournalEntryID] = len(s.journal)
	s.journal = append(s.journal, stored)
	if stored.IsReversal() {
		s.reversedBy[stored.ReversesEntryID] = stored.JournalEntryID
	}
	return nil
}

// FindJournalEntryByID retrieves a journal entry with its lines.
func (s *Store) FindJournalEntryByID(_ context.Context, entryID string) (*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.entryIndex[entryID]
	if !ok {
		return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	entry := s.journal[idx].Clone()
	return &entry, nil
}

// ListJournalEntries returns every journal entry in insertion order.
func (s *Store) ListJournalEntries(_ context.Context) ([]domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.JournalEntry, len(s.journal))
	for i := range s.journal {
		entries[i] = s.journal[i].Clone()
	}
	return entries, nil
}

// ListLedgerLines returns ledger lines in insertion order, filtered by accountCode when it is set.
func (s *Store) ListLedgerLines(_ context.Context, accountCode string) ([]domain.LedgerLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if accountCode == "" {
		lines := make([]domain.LedgerLine, len(s.ledger))
		copy(lines, s.ledger)
		return lines, nil
	}
	lines := make([]domain.LedgerLine, 0)
	for _, line := range s.ledger {
		if line.AccountCode == accountCode {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
