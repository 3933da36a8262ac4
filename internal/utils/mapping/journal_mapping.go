package mapping

import (
	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	"github.com/SscSPs/travelpay_ledger/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt: d.CreatedAt,
		CreatedBy: d.CreatedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
}

// ToModelJournalEntry converts a domain JournalEntry header to a model JournalEntry.
// An empty ReversesEntryID is stored as NULL.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	m := models.JournalEntry{
		JournalEntryID:    d.JournalEntryID,
		Description:       d.Description,
		RelatedDocumentID: d.RelatedDocumentID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
	if d.ReversesEntryID != "" {
		reverses := d.ReversesEntryID
		m.ReversesEntryID = &reverses
	}
	return m
}

// ToDomainJournalEntry converts a model JournalEntry and its lines to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry, lines []models.LedgerLine) domain.JournalEntry {
	d := domain.JournalEntry{
		JournalEntryID:    m.JournalEntryID,
		Description:       m.Description,
		RelatedDocumentID: m.RelatedDocumentID,
		Lines:             ToDomainLedgerLines(lines),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	if m.ReversesEntryID != nil {
		d.ReversesEntryID = *m.ReversesEntryID
	}
	return d
}

// ToModelLedgerLine converts a domain LedgerLine at the given position to a model LedgerLine
func ToModelLedgerLine(d domain.LedgerLine, position int) models.LedgerLine {
	return models.LedgerLine{
		LineID:         d.LineID,
		JournalEntryID: d.JournalEntryID,
		Position:       position,
		AccountCode:    d.AccountCode,
		LineType:       models.LineType(d.LineType),
		Amount:         d.Amount,
		Timestamp:      d.Timestamp,
	}
}

// ToDomainLedgerLine converts a model LedgerLine to a domain LedgerLine
func ToDomainLedgerLine(m models.LedgerLine) domain.LedgerLine {
	return domain.LedgerLine{
		LineID:         m.LineID,
		JournalEntryID: m.JournalEntryID,
		AccountCode:    m.AccountCode,
		LineType:       domain.LineType(m.LineType),
		Amount:         m.Amount,
		Timestamp:      m.Timestamp,
	}
}

// ToDomainLedgerLines converts a slice of model LedgerLine
func ToDomainLedgerLines(ms []models.LedgerLine) []domain.LedgerLine {
	lines := make([]domain.LedgerLine, len(ms))
	for i, m := range ms {
		lines[i] = ToDomainLedgerLine(m)
	}
	return lines
}
