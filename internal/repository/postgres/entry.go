package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pizzapos-backend/internal/domain"
	"pizzapos-backend/internal/repository"
)

type entryRepository struct {
	db *sql.DB
}

func NewEntryRepository(db *sql.DB) repository.EntryRepository {
	return &entryRepository{db: db}
}

const entryColumns = `id, amount, type, category, method, split_cash, split_wallet,
	description, actor_name, occurred_at, status, COALESCE(void_justification, ''), created_at`

func (r *entryRepository) Insert(ctx context.Context, e *domain.LedgerEntry) error {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()

	var splitCash, splitWallet decimal.NullDecimal
	if e.Split != nil {
		splitCash = decimal.NullDecimal{Decimal: e.Split.Cash, Valid: true}
		splitWallet = decimal.NullDecimal{Decimal: e.Split.Wallet, Valid: true}
	}

	query := `INSERT INTO ledger_entries
		(id, amount, type, category, method, split_cash, split_wallet,
		 description, actor_name, occurred_at, status, void_justification, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, ''), $13)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Amount, e.Type, e.Category, e.Method, splitCash, splitWallet,
		e.Description, e.ActorName, e.OccurredAt, e.Status, e.VoidJustification, e.CreatedAt)
	if err != nil {
		return &domain.StoreError{Op: "insert entry", Err: err}
	}
	return nil
}

func (r *entryRepository) ListAll(ctx context.Context) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries ORDER BY occurred_at DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &domain.StoreError{Op: "list entries", Err: err}
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, &domain.StoreError{Op: "scan entry", Err: err}
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "list entries", Err: err}
	}
	return entries, nil
}

func (r *entryRepository) GetByID(ctx context.Context, id string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE id = $1`
	e, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, &domain.StoreError{Op: "get entry", Err: err}
	}
	return e, nil
}

func (r *entryRepository) MarkVoided(ctx context.Context, id, justification string) error {
	query := `UPDATE ledger_entries SET status = $1, void_justification = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, domain.StatusVoided, justification, id)
	if err != nil {
		return &domain.StoreError{Op: "void entry", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *entryRepository) PurgeAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM ledger_entries`); err != nil {
		return &domain.StoreError{Op: "purge entries", Err: err}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.LedgerEntry, error) {
	var e domain.LedgerEntry
	var splitCash, splitWallet decimal.NullDecimal
	err := row.Scan(&e.ID, &e.Amount, &e.Type, &e.Category, &e.Method,
		&splitCash, &splitWallet, &e.Description, &e.ActorName,
		&e.OccurredAt, &e.Status, &e.VoidJustification, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	if splitCash.Valid || splitWallet.Valid {
		e.Split = &domain.MethodSplit{Cash: splitCash.Decimal, Wallet: splitWallet.Decimal}
	}
	return &e, nil
}
