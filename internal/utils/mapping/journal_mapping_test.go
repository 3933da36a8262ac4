package mapping

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	"github.com/SscSPs/travelpay_ledger/internal/models"
)

func TestToModelJournalEntry_NullableReversal(t *testing.T) {
	entry := domain.JournalEntry{JournalEntryID: "e1", Description: "d"}
	assert.Nil(t, ToModelJournalEntry(entry).ReversesEntryID, "ordinary entries store NULL")

	entry.ReversesEntryID = "e0"
	m := ToModelJournalEntry(entry)
	if assert.NotNil(t, m.ReversesEntryID) {
		assert.Equal(t, "e0", *m.ReversesEntryID)
	}
	assert.Equal(t, "e0", ToDomainJournalEntry(m, nil).ReversesEntryID)
}

func TestToDomainJournalEntry_KeepsLineOrder(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := []models.LedgerLine{
		{LineID: "l1", JournalEntryID: "e1", Position: 0, AccountCode: "1020", LineType: "debit", Amount: decimal.NewFromInt(500), Timestamp: now},
		{LineID: "l2", JournalEntryID: "e1", Position: 1, AccountCode: "2010", LineType: "credit", Amount: decimal.NewFromInt(500), Timestamp: now},
	}

	entry := ToDomainJournalEntry(models.JournalEntry{JournalEntryID: "e1"}, rows)

	assert.Len(t, entry.Lines, 2)
	assert.Equal(t, domain.Debit, entry.Lines[0].LineType)
	assert.Equal(t, domain.Credit, entry.Lines[1].LineType)
	assert.True(t, entry.IsBalanced())
	assert.Equal(t, 1, ToModelLedgerLine(entry.Lines[1], 1).Position)
}
