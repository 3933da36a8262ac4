package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/travelpay_ledger/internal/apperrors"
	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/travelpay_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travelpay_ledger/internal/core/ports/services"
	"github.com/SscSPs/travelpay_ledger/internal/dto"
	"github.com/SscSPs/travelpay_ledger/internal/utils/accounting"
	"github.com/SscSPs/travelpay_ledger/internal/utils/pagination"
)

// ledgerService posts balanced journal entries and serves the ledger views.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	journalRepo portsrepo.JournalRepositoryFacade
	now         func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithClock overrides the time source used to stamp new entries.
func WithClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, journalRepo portsrepo.JournalRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		now:         time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// validatePosting checks a posting request in a fixed order and returns the first violation.
// It never touches the repositories.
func validatePosting(description string, debits, credits []domain.PostingLine) error {
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionMissing
	}
	if len(debits) == 0 {
		return ErrNoDebitLines
	}
	if len(credits) == 0 {
		return ErrNoCreditLines
	}

	for _, side := range [][]domain.PostingLine{debits, credits} {
		for _, line := range side {
			if !line.Amount.IsPositive() || !line.Amount.Equal(line.Amount.Truncate(domain.AmountScale)) {
				return &InvalidAmountError{AccountCode: line.AccountCode, Amount: line.Amount}
			}
		}
	}

	totalDebits := accounting.SumAmounts(debits)
	totalCredits := accounting.SumAmounts(credits)
	if !totalDebits.Equal(totalCredits) {
		return &UnbalancedEntryError{Debits: totalDebits, Credits: totalCredits}
	}
	return nil
}

// PostJournalEntry validates and atomically records a balanced journal entry.
func (s *ledgerService) PostJournalEntry(ctx context.Context, req dto.PostJournalEntryRequest, postedBy string) (*domain.JournalEntry, error) {
	debits := dto.ToPostingLines(req.Debits)
	credits := dto.ToPostingLines(req.Credits)

	if err := validatePosting(req.Description, debits, credits); err != nil {
		s.LogWarn(ctx, err, "Journal entry rejected", slog.String("related_document_id", req.RelatedDocumentID))
		return nil, err
	}

	entryID := uuid.NewString()
	now := s.now().UTC()

	lines := make([]domain.LedgerLine, 0, len(debits)+len(credits))
	appendLines := func(postings []domain.PostingLine, lineType domain.LineType) {
		for _, p := range postings {
			lines = append(lines, domain.LedgerLine{
				LineID:         uuid.NewString(),
				JournalEntryID: entryID,
				AccountCode:    p.AccountCode,
				LineType:       lineType,
				Amount:         p.Amount,
				Timestamp:      now,
			})
		}
	}
	appendLines(debits, domain.Debit)
	appendLines(credits, domain.Credit)

	entry := domain.JournalEntry{
		JournalEntryID:    entryID,
		Description:       strings.TrimSpace(req.Description),
		RelatedDocumentID: req.RelatedDocumentID,
		Lines:             lines,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: postedBy,
		},
	}

	if err := s.commit(ctx, entry); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("journal_entry_id", entry.JournalEntryID),
		slog.String("related_document_id", entry.RelatedDocumentID),
		slog.Int("line_count", len(entry.Lines)),
		slog.String("amount", entry.TotalDebits().String()))
	return &entry, nil
}

// commit resolves account types, computes balance changes and hands the entry to the repository.
func (s *ledgerService) commit(ctx context.Context, entry domain.JournalEntry) error {
	codes := make([]string, 0, len(entry.Lines))
	seen := make(map[string]struct{}, len(entry.Lines))
	for _, line := range entry.Lines {
		if _, ok := seen[line.AccountCode]; ok {
			continue
		}
		seen[line.AccountCode] = struct{}{}
		codes = append(codes, line.AccountCode)
	}

	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, codes)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up accounts for journal entry")
		return fmt.Errorf("failed to look up accounts: %w", err)
	}

	accountTypes := make(map[string]domain.AccountType, len(accounts))
	for _, code := range codes {
		acc, ok := accounts[code]
		if !ok {
			unknownErr := &UnknownAccountError{AccountCode: code}
			s.LogWarn(ctx, unknownErr, "Journal entry rejected", slog.String("related_document_id", entry.RelatedDocumentID))
			return unknownErr
		}
		accountTypes[code] = acc.AccountType
	}

	balanceChanges, err := accounting.CalculateBalanceChanges(entry.Lines, accountTypes)
	if err != nil {
		s.LogError(ctx, err, "Failed to calculate balance changes", slog.String("journal_entry_id", entry.JournalEntryID))
		return fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	if err := s.journalRepo.SaveJournalEntry(ctx, entry, balanceChanges); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("journal_entry_id", entry.JournalEntryID))
		return fmt.Errorf("failed to save journal entry: %w", err)
	}
	return nil
}

// ReverseJournalEntry posts an offsetting entry that swaps every line of the original.
func (s *ledgerService) ReverseJournalEntry(ctx context.Context, entryID string, postedBy string) (*domain.JournalEntry, error) {
	original, err := s.journalRepo.FindJournalEntryByID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find journal entry to reverse", slog.String("journal_entry_id", entryID))
		return nil, err
	}
	if original.IsReversal() {
		return nil, ErrReversalOfReversal
	}

	reversalID := uuid.NewString()
	now := s.now().UTC()

	lines := make([]domain.LedgerLine, len(original.Lines))
	for i, line := range original.Lines {
		lines[i] = domain.LedgerLine{
			LineID:         uuid.NewString(),
			JournalEntryID: reversalID,
			AccountCode:    line.AccountCode,
			LineType:       line.LineType.Opposite(),
			Amount:         line.Amount,
			Timestamp:      now,
		}
	}

	reversal := domain.JournalEntry{
		JournalEntryID:    reversalID,
		Description:       "Reversal of: " + original.Description,
		RelatedDocumentID: original.RelatedDocumentID,
		ReversesEntryID:   original.JournalEntryID,
		Lines:             lines,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: postedBy,
		},
	}

	if err := s.commit(ctx, reversal); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry reversed",
		slog.String("journal_entry_id", original.JournalEntryID),
		slog.String("reversal_entry_id", reversal.JournalEntryID))
	return &reversal, nil
}

// GetChartOfAccounts returns the fixed list of accounts with current balances.
func (s *ledgerService) GetChartOfAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// GetJournalEntries returns all journal entries in insertion order.
func (s *ledgerService) GetJournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListJournalEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

// GetJournalEntry retrieves a specific journal entry by its ID.
func (s *ledgerService) GetJournalEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find journal entry", slog.String("journal_entry_id", entryID))
		return nil, err
	}
	return entry, nil
}

// GetGeneralLedger returns all ledger lines, optionally filtered by account code.
func (s *ledgerService) GetGeneralLedger(ctx context.Context, accountCode string) ([]domain.LedgerLine, error) {
	lines, err := s.journalRepo.ListLedgerLines(ctx, accountCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger lines", slog.String("account_code", accountCode))
		return nil, fmt.Errorf("failed to list ledger lines: %w", err)
	}
	return lines, nil
}

// ListGeneralLedger returns one page of ledger lines with account names joined in.
func (s *ledgerService) ListGeneralLedger(ctx context.Context, params dto.ListGeneralLedgerParams) (*dto.ListGeneralLedgerResponse, error) {
	offset := 0
	if params.NextToken != "" {
		var err error
		offset, err = pagination.DecodeOffsetToken(params.NextToken, params.AccountCode)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}

	lines, err := s.GetGeneralLedger(ctx, params.AccountCode)
	if err != nil {
		return nil, err
	}
	accounts, err := s.GetChartOfAccounts(ctx)
	if err != nil {
		return nil, err
	}

	start, end, hasMore := pagination.Window(len(lines), offset, params.Limit)
	resp := &dto.ListGeneralLedgerResponse{
		Lines: dto.ToLedgerLineResponses(lines[start:end], dto.AccountNames(accounts)),
	}
	if hasMore {
		token := pagination.EncodeOffsetToken(end, params.AccountCode)
		resp.NextToken = &token
	}
	return resp, nil
}
