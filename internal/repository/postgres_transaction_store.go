package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Business-Ledger-Backend/internal/model"
)

// PostgresTransactionStore reads ledger entries from a hosted Postgres transactions table.
// It is read-only; transaction management always goes through the local database.
type PostgresTransactionStore struct {
	pool *pgxpool.Pool
}

// NewPostgresTransactionStore wraps an open pgx pool.
func NewPostgresTransactionStore(pool *pgxpool.Pool) *PostgresTransactionStore {
	return &PostgresTransactionStore{pool: pool}
}

// FetchTransactions returns the company's transactions dated between startDate and endDate,
// both inclusive, in ascending date order.
func (s *PostgresTransactionStore) FetchTransactions(ctx context.Context, companyID string, startDate, endDate time.Time) ([]model.Transaction, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id::text, company_id::text, date, account, COALESCE(description, ''),
		       amount::text, type
		FROM transactions
		WHERE company_id = $1
		AND date >= $2::date
		AND date <= $3::date
		ORDER BY date ASC, id ASC
	`, companyID, startDate.Format(dateLayout), endDate.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query postgres transactions: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		var t model.Transaction
		var amount, txType string

		if err := rows.Scan(
			&t.ID,
			&t.CompanyID,
			&t.Date,
			&t.Account,
			&t.Description,
			&amount,
			&txType,
		); err != nil {
			return nil, fmt.Errorf("failed to scan postgres transaction: %w", err)
		}

		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse amount %q: %w", amount, err)
		}
		t.Date = t.Date.UTC()
		t.Type = model.TransactionType(txType)

		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating postgres transactions: %w", err)
	}

	return transactions, nil
}
