package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Business-Ledger-Backend/internal/apperrors"
	"github.com/ndewijer/Business-Ledger-Backend/internal/model"
)

// TransactionRepository provides data access methods for the transactions table.
// It backs both transaction management and the ledger reads used by financial statements.
type TransactionRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// WithTx returns a new TransactionRepository scoped to the provided transaction.
func (r *TransactionRepository) WithTx(tx *sql.Tx) *TransactionRepository {
	return &TransactionRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *TransactionRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const transactionColumns = `id, company_id, date, account, description, amount, type, created_at, updated_at`

func scanTransaction(row rowScanner) (model.Transaction, error) {
	var t model.Transaction
	var dateStr, amountStr, createdAtStr string
	var description, updatedAt sql.NullString

	if err := row.Scan(
		&t.ID,
		&t.CompanyID,
		&dateStr,
		&t.Account,
		&description,
		&amountStr,
		&t.Type,
		&createdAtStr,
		&updatedAt,
	); err != nil {
		return model.Transaction{}, err
	}

	var err error
	t.Description = description.String
	if t.Date, err = ParseTime(dateStr); err != nil {
		return model.Transaction{}, err
	}
	if t.Amount, err = decimal.NewFromString(amountStr); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to parse amount %q: %w", amountStr, err)
	}
	if t.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return model.Transaction{}, err
	}
	if t.UpdatedAt, err = parseNullTime(updatedAt); err != nil {
		return model.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]model.Transaction, error) {
	rows, err := r.getQuerier().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transactions table results: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions table: %w", err)
	}

	return transactions, nil
}

// FetchTransactions returns the company's transactions dated between startDate and endDate,
// both inclusive, in ascending date order.
func (r *TransactionRepository) FetchTransactions(ctx context.Context, companyID string, startDate, endDate time.Time) ([]model.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE company_id = ?
		AND date >= ?
		AND date <= ?
		ORDER BY date ASC, id ASC
	`

	return r.queryTransactions(ctx, query,
		companyID,
		startDate.Format(dateLayout),
		endDate.Format(dateLayout),
	)
}

// GetTransactionsPerCompany lists every transaction of a company, newest first.
func (r *TransactionRepository) GetTransactionsPerCompany(ctx context.Context, companyID string) ([]model.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE company_id = ?
		ORDER BY date DESC, created_at DESC, id ASC
	`

	return r.queryTransactions(ctx, query, companyID)
}

// GetTransaction retrieves a single transaction by ID.
// Returns ErrTransactionNotFound if no transaction with the given ID exists.
func (r *TransactionRepository) GetTransaction(ctx context.Context, transactionID string) (model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?`

	t, err := scanTransaction(r.getQuerier().QueryRowContext(ctx, query, transactionID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to query transaction: %w", err)
	}
	return t, nil
}

// InsertTransaction stores a new transaction. ID and CreatedAt must already be set.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
		INSERT INTO transactions (id, company_id, date, account, description, amount, type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.getQuerier().ExecContext(ctx, query,
		t.ID,
		t.CompanyID,
		t.Date.Format(dateLayout),
		t.Account,
		nullString(t.Description),
		t.Amount.String(),
		string(t.Type),
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// UpdateTransaction overwrites every mutable column of an existing transaction.
// Returns ErrTransactionNotFound if no transaction with the given ID exists.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
		UPDATE transactions
		SET date = ?, account = ?, description = ?, amount = ?, type = ?, updated_at = ?
		WHERE id = ?
	`

	var updatedAt any
	if t.UpdatedAt != nil {
		updatedAt = t.UpdatedAt.UTC().Format(time.RFC3339)
	}

	result, err := r.getQuerier().ExecContext(ctx, query,
		t.Date.Format(dateLayout),
		t.Account,
		nullString(t.Description),
		t.Amount.String(),
		string(t.Type),
		updatedAt,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return checkRowsAffected(result, apperrors.ErrTransactionNotFound)
}

// DeleteTransaction removes a transaction by ID.
// Returns ErrTransactionNotFound if no transaction with the given ID exists.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	result, err := r.getQuerier().ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return checkRowsAffected(result, apperrors.ErrTransactionNotFound)
}
