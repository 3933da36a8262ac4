package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/travelpay_ledger/internal/apperrors"
	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/travelpay_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/travelpay_ledger/internal/models"
	"github.com/SscSPs/travelpay_ledger/internal/utils/mapping"
)

// reversesEntryConstraint is the unique index that allows at most one reversal per entry.
const reversesEntryConstraint = "journal_entries_reverses_entry_id_key"

const lineColumns = `line_id, journal_entry_id, position, account_code, line_type, amount, created_at`

// PgxJournalRepository stores journal entries and the flat ledger in postgres.
type PgxJournalRepository struct {
	BaseRepository
	accountRepo *PgxAccountRepository
}

// newPgxJournalRepository creates a new repository for journal and ledger line data.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) *PgxJournalRepository {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveJournalEntry inserts the entry and its lines and applies the balance changes in one DB transaction.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored once the transaction is committed
	defer func() { _ = r.Rollback(ctx, tx) }()

	// 1. Lock every touched account so concurrent postings serialize on shared accounts
	codes := make([]string, 0, len(balanceChanges))
	for code := range balanceChanges {
		codes = append(codes, code)
	}
	for _, line := range entry.Lines {
		if _, ok := balanceChanges[line.AccountCode]; !ok {
			codes = append(codes, line.AccountCode)
		}
	}
	sort.Strings(codes)
	if _, err := r.accountRepo.lockAccountsForUpdate(ctx, tx, codes); err != nil {
		return err
	}

	// 2. Insert the entry header
	m := mapping.ToModelJournalEntry(entry)
	_, err = tx.Exec(ctx, `
		INSERT INTO journal_entries (journal_entry_id, description, related_document_id, reverses_entry_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, m.JournalEntryID, m.Description, m.RelatedDocumentID, m.ReversesEntryID, m.CreatedAt, m.CreatedBy)
	if err != nil {
		if isUniqueViolation(err, reversesEntryConstraint) {
			return fmt.Errorf("%w: journal entry %s is already reversed", apperrors.ErrDuplicate, entry.ReversesEntryID)
		}
		if isForeignKeyViolation(err, "") {
			return fmt.Errorf("%w: reversed journal entry %s", apperrors.ErrNotFound, entry.ReversesEntryID)
		}
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: journal entry %s already exists", apperrors.ErrDuplicate, entry.JournalEntryID)
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert journal entry "+entry.JournalEntryID, err)
	}

	// 3. Insert the lines, keeping their posting order
	batch := &pgx.Batch{}
	lineQuery := `INSERT INTO ledger_lines (` + lineColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	for i, line := range entry.Lines {
		ml := mapping.ToModelLedgerLine(line, i)
		batch.Queue(lineQuery, ml.LineID, ml.JournalEntryID, ml.Position, ml.AccountCode, ml.LineType, ml.Amount, ml.Timestamp)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert ledger lines for journal entry "+entry.JournalEntryID, err)
	}

	// 4. Apply the balance changes
	if err := r.accountRepo.applyBalanceChangesInTx(ctx, tx, balanceChanges); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func scanLines(rows pgx.Rows) ([]models.LedgerLine, error) {
	defer rows.Close()

	lines := make([]models.LedgerLine, 0)
	for rows.Next() {
		var l models.LedgerLine
		if err := rows.Scan(&l.LineID, &l.JournalEntryID, &l.Position, &l.AccountCode, &l.LineType, &l.Amount, &l.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan ledger line row: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger line rows: %w", err)
	}
	return lines, nil
}

// FindJournalEntryByID retrieves a journal entry with its lines.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, `
		SELECT journal_entry_id, description, related_document_id, reverses_entry_id, created_at, created_by
		FROM journal_entries
		WHERE journal_entry_id = $1;
	`, entryID).Scan(&m.JournalEntryID, &m.Description, &m.RelatedDocumentID, &m.ReversesEntryID, &m.CreatedAt, &m.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query journal entry "+entryID, err)
	}

	rows, err := r.Pool.Query(ctx, `SELECT `+lineColumns+` FROM ledger_lines WHERE journal_entry_id = $1 ORDER BY position;`, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query ledger lines for "+entryID, err)
	}
	lines, err := scanLines(rows)
	if err != nil {
		return nil, err
	}

	entry := mapping.ToDomainJournalEntry(m, lines)
	return &entry, nil
}

// ListJournalEntries returns every journal entry in insertion order, lines included.
func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT journal_entry_id, description, related_document_id, reverses_entry_id, created_at, created_by
		FROM journal_entries
		ORDER BY seq;
	`)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list journal entries", err)
	}
	defer rows.Close()

	headers := make([]models.JournalEntry, 0)
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(&m.JournalEntryID, &m.Description, &m.RelatedDocumentID, &m.ReversesEntryID, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}

	allLines, err := r.listModelLines(ctx, "")
	if err != nil {
		return nil, err
	}
	linesByEntry := make(map[string][]models.LedgerLine, len(headers))
	for _, l := range allLines {
		linesByEntry[l.JournalEntryID] = append(linesByEntry[l.JournalEntryID], l)
	}

	entries := make([]domain.JournalEntry, len(headers))
	for i, m := range headers {
		entries[i] = mapping.ToDomainJournalEntry(m, linesByEntry[m.JournalEntryID])
	}
	return entries, nil
}

// listModelLines loads lines in ledger order: entry insertion order, then position within the entry.
func (r *PgxJournalRepository) listModelLines(ctx context.Context, accountCode string) ([]models.LedgerLine, error) {
	query := `
		SELECT l.line_id, l.journal_entry_id, l.position, l.account_code, l.line_type, l.amount, l.created_at
		FROM ledger_lines l
		JOIN journal_entries e ON e.journal_entry_id = l.journal_entry_id
		WHERE ($1 = '' OR l.account_code = $1)
		ORDER BY e.seq, l.position;
	`
	rows, err := r.Pool.Query(ctx, query, accountCode)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list ledger lines", err)
	}
	return scanLines(rows)
}

// ListLedgerLines returns ledger lines in insertion order, filtered by accountCode when it is set.
func (r *PgxJournalRepository) ListLedgerLines(ctx context.Context, accountCode string) ([]domain.LedgerLine, error) {
	lines, err := r.listModelLines(ctx, accountCode)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainLedgerLines(lines), nil
}
