package pgsql

import (
	"context"
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

const accountColumns = `code, name, account_type, is_user_wallet, balance`

// PgxAccountRepository stores the chart of accounts in postgres.
type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccounts(rows pgx.Rows) (map[string]domain.Account, error) {
	defer rows.Close()

	accounts := make(map[string]domain.Account)
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.Code, &m.Name, &m.AccountType, &m.IsUserWallet, &m.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts[m.Code] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// ListAccounts returns every account ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY code;`)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list accounts", err)
	}
	byCode, err := scanAccounts(rows)
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(byCode))
	for _, acc := range byCode {
		accounts = append(accounts, acc)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
	return accounts, nil
}

// FindAccountsByCodes returns the known accounts among codes.
func (r *PgxAccountRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	if len(codes) == 0 {
		return map[string]domain.Account{}, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE code = ANY($1);`, codes)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query accounts by code", err)
	}
	return scanAccounts(rows)
}

// SeedAccounts inserts accounts that are not present yet. Existing rows and balances are untouched.
func (r *PgxAccountRepository) SeedAccounts(ctx context.Context, accounts []domain.Account) error {
	query := `
		INSERT INTO accounts (code, name, account_type, is_user_wallet, balance)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (code) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, acc := range accounts {
		if !acc.AccountType.IsValid() {
			return fmt.Errorf("%w: account %s has invalid type %q", apperrors.ErrValidation, acc.Code, acc.AccountType)
		}
		m := mapping.ToModelAccount(acc)
		batch.Queue(query, m.Code, m.Name, m.AccountType, m.IsUserWallet, m.Balance)
	}
	if batch.Len() == 0 {
		return nil
	}

	if err := r.Pool.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to seed accounts", err)
	}
	return nil
}

// lockAccountsForUpdate locks the rows of codes inside tx in code order, failing when any is missing.
// Must be called within a transaction.
func (r *PgxAccountRepository) lockAccountsForUpdate(ctx context.Context, tx pgx.Tx, codes []string) (map[string]domain.Account, error) {
	if len(codes) == 0 {
		return map[string]domain.Account{}, nil
	}
	rows, err := tx.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE code = ANY($1) ORDER BY code FOR UPDATE;`, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts for update: %w", err)
	}
	locked, err := scanAccounts(rows)
	if err != nil {
		return nil, err
	}
	for _, code := range codes {
		if _, ok := locked[code]; !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, code)
		}
	}
	return locked, nil
}

// applyBalanceChangesInTx adds each delta to the persisted balance of its account.
func (r *PgxAccountRepository) applyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal) error {
	query := `UPDATE accounts SET balance = balance + $2 WHERE code = $1;`

	batch := &pgx.Batch{}
	codes := make([]string, 0, len(balanceChanges))
	for code, delta := range balanceChanges {
		if delta.IsZero() {
			continue
		}
		batch.Queue(query, code, delta)
		codes = append(codes, code)
	}
	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update balance for account %s: %w", codes[i], err)
			}
		} else if ct.RowsAffected() == 0 && batchErr == nil {
			batchErr = fmt.Errorf("%w: account %s not found during balance update", apperrors.ErrNotFound, codes[i])
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close balance update batch: %w", err)
	}
	return batchErr
}
