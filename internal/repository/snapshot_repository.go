package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Business-Ledger-Backend/internal/model"
)

// SnapshotRepository provides data access methods for the statement_snapshot table.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new repository instance.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// UpsertSnapshot stores the closing totals of a company for a period, replacing any
// previous snapshot of the same company and period.
func (r *SnapshotRepository) UpsertSnapshot(ctx context.Context, s model.StatementSnapshot) error {
	query := `
		INSERT INTO statement_snapshot (
			id, company_id, start_date, end_date,
			total_assets, total_liabilities, total_equity,
			total_revenue, total_expense, net_income,
			transaction_count, calculated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (company_id, start_date, end_date) DO UPDATE SET
			total_assets = excluded.total_assets,
			total_liabilities = excluded.total_liabilities,
			total_equity = excluded.total_equity,
			total_revenue = excluded.total_revenue,
			total_expense = excluded.total_expense,
			net_income = excluded.net_income,
			transaction_count = excluded.transaction_count,
			calculated_at = excluded.calculated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.CompanyID,
		s.StartDate,
		s.EndDate,
		s.TotalAssets.String(),
		s.TotalLiabilities.String(),
		s.TotalEquity.String(),
		s.TotalRevenue.String(),
		s.TotalExpense.String(),
		s.NetIncome.String(),
		s.TransactionCount,
		s.CalculatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert statement_snapshot: %w", err)
	}
	return nil
}

// GetSnapshots streams a company's snapshots, newest period first, to callback.
// Processing stops at the first error returned by callback.
func (r *SnapshotRepository) GetSnapshots(
	ctx context.Context,
	companyID string,
	callback func(snapshot model.StatementSnapshot) error,
) error {
	query := `
		SELECT id, company_id, start_date, end_date,
		       total_assets, total_liabilities, total_equity,
		       total_revenue, total_expense, net_income,
		       transaction_count, calculated_at
		FROM statement_snapshot
		WHERE company_id = ?
		ORDER BY start_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return fmt.Errorf("failed to query statement_snapshot: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s model.StatementSnapshot
		var startStr, endStr, calculatedAtStr string
		var amounts [6]string

		err := rows.Scan(
			&s.ID,
			&s.CompanyID,
			&startStr,
			&endStr,
			&amounts[0],
			&amounts[1],
			&amounts[2],
			&amounts[3],
			&amounts[4],
			&amounts[5],
			&s.TransactionCount,
			&calculatedAtStr,
		)
		if err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}

		targets := []*decimal.Decimal{
			&s.TotalAssets, &s.TotalLiabilities, &s.TotalEquity,
			&s.TotalRevenue, &s.TotalExpense, &s.NetIncome,
		}
		for i, target := range targets {
			if *target, err = decimal.NewFromString(amounts[i]); err != nil {
				return fmt.Errorf("failed to parse snapshot amount %q: %w", amounts[i], err)
			}
		}

		if s.StartDate, err = parseDateString(sql.NullString{String: startStr, Valid: true}); err != nil {
			return fmt.Errorf("failed to parse start_date: %w", err)
		}
		if s.EndDate, err = parseDateString(sql.NullString{String: endStr, Valid: true}); err != nil {
			return fmt.Errorf("failed to parse end_date: %w", err)
		}
		if s.CalculatedAt, err = ParseTime(calculatedAtStr); err != nil {
			return fmt.Errorf("failed to parse calculated_at: %w", err)
		}

		if err := callback(s); err != nil {
			return err
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating rows: %w", err)
	}

	return nil
}
