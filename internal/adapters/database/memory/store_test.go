package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/travelpay_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/travelpay_ledger/internal/apperrors"
	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
)

func newEntry(debitCode, creditCode string, amount string) domain.JournalEntry {
	id := uuid.NewString()
	now := time.Now().UTC()
	amt := decimal.RequireFromString(amount)
	return domain.JournalEntry{
		JournalEntryID: id,
		Description:    "test entry",
		Lines: []domain.LedgerLine{
			{LineID: uuid.NewString(), JournalEntryID: id, AccountCode: debitCode, LineType: domain.Debit, Amount: amt, Timestamp: now},
			{LineID: uuid.NewString(), JournalEntryID: id, AccountCode: creditCode, LineType: domain.Credit, Amount: amt, Timestamp: now},
		},
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: "tester"},
	}
}

func TestStore_SeedAndList(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(domain.DefaultChartOfAccounts())

	accounts, err := store.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, len(domain.DefaultChartOfAccounts()))
	assert.Equal(t, domain.AccountHouseCash, accounts[0].Code)
	for _, acc := range accounts {
		assert.True(t, acc.Balance.IsZero(), "seed balance of %s should be zero", acc.Code)
	}

	// Seeding again leaves existing accounts alone
	require.NoError(t, store.SeedAccounts(ctx, []domain.Account{{Code: domain.AccountHouseCash, Name: "Renamed", AccountType: domain.Asset}}))
	found, err := store.FindAccountsByCodes(ctx, []string{domain.AccountHouseCash, "9999"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "House Cash", found[domain.AccountHouseCash].Name)

	err = store.SeedAccounts(ctx, []domain.Account{{Code: "6000", Name: "Bad", AccountType: "INCOME"}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestStore_SaveJournalEntry(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(domain.DefaultChartOfAccounts())

	entry := newEntry(domain.AccountUserFunds, domain.AccountUserLiability, "100")
	changes := map[string]decimal.Decimal{
		domain.AccountUserFunds:     decimal.NewFromInt(100),
		domain.AccountUserLiability: decimal.NewFromInt(100),
	}
	require.NoError(t, store.SaveJournalEntry(ctx, entry, changes))

	found, err := store.FindAccountsByCodes(ctx, []string{domain.AccountUserFunds, domain.AccountUserLiability})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(found[domain.AccountUserFunds].Balance))
	assert.True(t, decimal.NewFromInt(100).Equal(found[domain.AccountUserLiability].Balance))

	got, err := store.FindJournalEntryByID(ctx, entry.JournalEntryID)
	require.NoError(t, err)
	assert.Equal(t, entry.JournalEntryID, got.JournalEntryID)
	assert.Len(t, got.Lines, 2)

	// Returned values are copies
	got.Lines[0].AccountCode = "mutated"
	again, err := store.FindJournalEntryByID(ctx, entry.JournalEntryID)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountUserFunds, again.Lines[0].AccountCode)

	// Same id twice is a duplicate
	err = store.SaveJournalEntry(ctx, entry, changes)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestStore_SaveJournalEntry_UnknownAccountWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(domain.DefaultChartOfAccounts())

	entry := newEntry(domain.AccountUserFunds, "9999", "10")
	err := store.SaveJournalEntry(ctx, entry, map[string]decimal.Decimal{
		domain.AccountUserFunds: decimal.NewFromInt(10),
		"9999":                  decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	entries, _ := store.ListJournalEntries(ctx)
	lines, _ := store.ListLedgerLines(ctx, "")
	assert.Empty(t, entries)
	assert.Empty(t, lines)
	found, _ := store.FindAccountsByCodes(ctx, []string{domain.AccountUserFunds})
	assert.True(t, found[domain.AccountUserFunds].Balance.IsZero())
}

func TestStore_Reversals(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(domain.DefaultChartOfAccounts())

	original := newEntry(domain.AccountUserFunds, domain.AccountUserLiability, "25")
	require.NoError(t, store.SaveJournalEntry(ctx, original, nil))

	first := newEntry(domain.AccountUserLiability, domain.AccountUserFunds, "25")
	first.ReversesEntryID = original.JournalEntryID
	require.NoError(t, store.SaveJournalEntry(ctx, first, nil))

	second := newEntry(domain.AccountUserLiability, domain.AccountUserFunds, "25")
	second.ReversesEntryID = original.JournalEntryID
	assert.ErrorIs(t, store.SaveJournalEntry(ctx, second, nil), apperrors.ErrDuplicate)

	orphan := newEntry(domain.AccountUserLiability, domain.AccountUserFunds, "25")
	orphan.ReversesEntryID = uuid.NewString()
	assert.ErrorIs(t, store.SaveJournalEntry(ctx, orphan, nil), apperrors.ErrNotFound)
}

func TestStore_ListLedgerLines(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(domain.DefaultChartOfAccounts())

	require.NoError(t, store.SaveJournalEntry(ctx, newEntry(domain.AccountUserFunds, domain.AccountUserLiability, "5"), nil))
	require.NoError(t, store.SaveJournalEntry(ctx, newEntry(domain.AccountUserLiability, domain.AccountFlightRevenue, "1"), nil))

	all, err := store.ListLedgerLines(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	revenue, err := store.ListLedgerLines(ctx, domain.AccountFlightRevenue)
	require.NoError(t, err)
	require.Len(t, revenue, 1)
	assert.Equal(t, domain.AccountFlightRevenue, revenue[0].AccountCode)

	none, err := store.ListLedgerLines(ctx, domain.AccountOwnerEquity)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = store.FindJournalEntryByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(domain.DefaultChartOfAccounts())

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entry := newEntry(domain.AccountUserFunds, domain.AccountUserLiability, "2")
			_ = store.SaveJournalEntry(ctx, entry, map[string]decimal.Decimal{
				domain.AccountUserFunds:     decimal.NewFromInt(2),
				domain.AccountUserLiability: decimal.NewFromInt(2),
			})
			_, _ = store.ListJournalEntries(ctx)
		}()
	}
	wg.Wait()

	entries, _ := store.ListJournalEntries(ctx)
	lines, _ := store.ListLedgerLines(ctx, "")
	assert.Len(t, entries, writers)
	assert.Len(t, lines, writers*2)
	found, _ := store.FindAccountsByCodes(ctx, []string{domain.AccountUserFunds})
	assert.True(t, decimal.NewFromInt(2*writers).Equal(found[domain.AccountUserFunds].Balance))
}

func TestNewStore_PanicsOnInvalidSeedChart(t *testing.T) {
	chart := []domain.Account{
		{Code: "1010", Name: "House Cash", AccountType: domain.Asset},
		{Code: "9000", Name: "Bogus", AccountType: "GOODWILL"},
	}
	assert.Panics(t, func() { memory.NewStore(chart) })
}

func TestStore_SeedAccountsIsAllOrNothing(t *testing.T) {
	store := memory.NewStore(nil)

	err := store.SeedAccounts(context.Background(), []domain.Account{
		{Code: "1010", Name: "House Cash", AccountType: domain.Asset},
		{Code: "9000", Name: "Bogus", AccountType: "GOODWILL"},
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)

	accounts, err := store.ListAccounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}
