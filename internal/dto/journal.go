package dto

import (
	"time"

	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostingLineRequest is one (accountCode, amount) pair of a posting request.
// Amount positivity is checked by the ledger service so that it reports InvalidAmountError.
type PostingLineRequest struct {
	AccountCode string          `json:"accountCode" binding:"required,account_code"`
	Amount      decimal.Decimal `json:"amount"`
}

// PostJournalEntryRequest defines the data needed to post a balanced journal entry.
type PostJournalEntryRequest struct {
	Description       string               `json:"description" binding:"required"`
	RelatedDocumentID string               `json:"relatedDocumentID"`
	Debits            []PostingLineRequest `json:"debits" binding:"required,min=1,dive"`
	Credits           []PostingLineRequest `json:"credits" binding:"required,min=1,dive"`
}

// ToPostingLines converts request lines into domain posting lines.
func ToPostingLines(lines []PostingLineRequest) []domain.PostingLine {
	out := make([]domain.PostingLine, len(lines))
	for i, l := range lines {
		out[i] = domain.PostingLine{AccountCode: l.AccountCode, Amount: l.Amount}
	}
	return out
}

// FromPostingLines converts domain posting lines into request lines.
func FromPostingLines(lines []domain.PostingLine) []PostingLineRequest {
	out := make([]PostingLineRequest, len(lines))
	for i, l := range lines {
		out[i] = PostingLineRequest{AccountCode: l.AccountCode, Amount: l.Amount}
	}
	return out
}

// LedgerLineResponse defines the data returned for a ledger line.
// AccountName is joined from the chart of accounts at presentation time.
type LedgerLineResponse struct {
	LineID         string          `json:"lineID"`
	JournalEntryID string          `json:"journalEntryID"`
	AccountCode    string          `json:"accountCode"`
	AccountName    string          `json:"accountName,omitempty"`
	LineType       domain.LineType `json:"lineType"`
	Amount         decimal.Decimal `json:"amount"`
	Timestamp      time.Time       `json:"timestamp"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	JournalEntryID    string               `json:"journalEntryID"`
	Description       string               `json:"description"`
	RelatedDocumentID string               `json:"relatedDocumentID"`
	ReversesEntryID   string               `json:"reversesEntryID,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
	CreatedBy         string               `json:"createdBy"`
	TotalDebits       decimal.Decimal      `json:"totalDebits"`
	TotalCredits      decimal.Decimal      `json:"totalCredits"`
	Lines             []LedgerLineResponse `json:"lines"`
}

// ListJournalEntriesResponse wraps the journal view.
type ListJournalEntriesResponse struct {
	JournalEntries []JournalEntryResponse `json:"journalEntries"`
}

// ListGeneralLedgerParams holds query parameters for the paginated general ledger.
type ListGeneralLedgerParams struct {
	AccountCode string `form:"accountCode"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken   string `form:"nextToken"`
}

// ListGeneralLedgerResponse is one page of the general ledger.
type ListGeneralLedgerResponse struct {
	Lines     []LedgerLineResponse `json:"lines"`
	NextToken *string              `json:"nextToken,omitempty"`
}

// ToLedgerLineResponse converts a domain.LedgerLine, naming the account when accountNames knows it.
func ToLedgerLineResponse(line *domain.LedgerLine, accountNames map[string]string) LedgerLineResponse {
	return LedgerLineResponse{
		LineID:         line.LineID,
		JournalEntryID: line.JournalEntryID,
		AccountCode:    line.AccountCode,
		AccountName:    accountNames[line.AccountCode],
		LineType:       line.LineType,
		Amount:         line.Amount,
		Timestamp:      line.Timestamp,
	}
}

// ToLedgerLineResponses converts a slice of domain.LedgerLine.
func ToLedgerLineResponses(lines []domain.LedgerLine, accountNames map[string]string) []LedgerLineResponse {
	responses := make([]LedgerLineResponse, len(lines))
	for i := range lines {
		responses[i] = ToLedgerLineResponse(&lines[i], accountNames)
	}
	return responses
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry, accountNames map[string]string) JournalEntryResponse {
	return JournalEntryResponse{
		JournalEntryID:    e.JournalEntryID,
		Description:       e.Description,
		RelatedDocumentID: e.RelatedDocumentID,
		ReversesEntryID:   e.ReversesEntryID,
		CreatedAt:         e.CreatedAt,
		CreatedBy:         e.CreatedBy,
		TotalDebits:       e.TotalDebits(),
		TotalCredits:      e.TotalCredits(),
		Lines:             ToLedgerLineResponses(e.Lines, accountNames),
	}
}

// ToListJournalEntriesResponse converts journal entries; newestFirst reverses insertion order.
func ToListJournalEntriesResponse(entries []domain.JournalEntry, accountNames map[string]string, newestFirst bool) ListJournalEntriesResponse {
	resp := ListJournalEntriesResponse{JournalEntries: make([]JournalEntryResponse, len(entries))}
	for i := range entries {
		idx := i
		if newestFirst {
			idx = len(entries) - 1 - i
		}
		resp.JournalEntries[i] = ToJournalEntryResponse(&entries[idx], accountNames)
	}
	return resp
}

// AccountNames builds the code -> name lookup used by the ledger views.
func AccountNames(accounts []domain.Account) map[string]string {
	names := make(map[string]string, len(accounts))
	for _, acc := range accounts {
		names[acc.Code] = acc.Name
	}
	return names
}
