package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ndewijer/Business-Ledger-Backend/internal/apperrors"
	"github.com/ndewijer/Business-Ledger-Backend/internal/model"
)

// CompanyRepository provides data access methods for the companies table.
type CompanyRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewCompanyRepository creates a new CompanyRepository with the provided database connection.
func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// WithTx returns a new CompanyRepository scoped to the provided transaction.
func (r *CompanyRepository) WithTx(tx *sql.Tx) *CompanyRepository {
	return &CompanyRepository{
		db: r.db,
		tx: tx,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *CompanyRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const companyColumns = `id, name, business_type, established_date, representative, address, phone, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (model.Company, error) {
	var c model.Company
	var businessType, establishedDate, representative, address, phone, updatedAt sql.NullString
	var createdAt string

	if err := row.Scan(
		&c.ID,
		&c.Name,
		&businessType,
		&establishedDate,
		&representative,
		&address,
		&phone,
		&createdAt,
		&updatedAt,
	); err != nil {
		return model.Company{}, err
	}

	c.BusinessType = businessType.String
	c.Representative = representative.String
	c.Address = address.String
	c.Phone = phone.String

	var err error
	if c.EstablishedDate, err = parseDateString(establishedDate); err != nil {
		return model.Company{}, err
	}
	if c.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Company{}, err
	}
	if c.UpdatedAt, err = parseNullTime(updatedAt); err != nil {
		return model.Company{}, err
	}
	return c, nil
}

// GetCompanies returns all companies ordered by name.
func (r *CompanyRepository) GetCompanies(ctx context.Context) ([]model.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name ASC, id ASC`

	rows, err := r.getQuerier().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies table: %w", err)
	}
	defer rows.Close()

	companies := []model.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan companies table results: %w", err)
		}
		companies = append(companies, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating companies table: %w", err)
	}

	return companies, nil
}

// GetCompany retrieves a single company by ID.
// Returns ErrCompanyNotFound if no company with the given ID exists.
func (r *CompanyRepository) GetCompany(ctx context.Context, companyID string) (model.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = ?`

	c, err := scanCompany(r.getQuerier().QueryRowContext(ctx, query, companyID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Company{}, apperrors.ErrCompanyNotFound
	}
	if err != nil {
		return model.Company{}, fmt.Errorf("failed to query company: %w", err)
	}
	return c, nil
}

// InsertCompany stores a new company. ID and CreatedAt must already be set.
func (r *CompanyRepository) InsertCompany(ctx context.Context, c *model.Company) error {
	query := `
		INSERT INTO companies (id, name, business_type, established_date, representative, address, phone, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.getQuerier().ExecContext(ctx, query,
		c.ID,
		c.Name,
		nullString(c.BusinessType),
		nullString(c.EstablishedDate),
		nullString(c.Representative),
		nullString(c.Address),
		nullString(c.Phone),
		c.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert company: %w", err)
	}
	return nil
}

// UpdateCompany overwrites every mutable column of an existing company.
// Returns ErrCompanyNotFound if no company with the given ID exists.
func (r *CompanyRepository) UpdateCompany(ctx context.Context, c *model.Company) error {
	query := `
		UPDATE companies
		SET name = ?, business_type = ?, established_date = ?, representative = ?,
		    address = ?, phone = ?, updated_at = ?
		WHERE id = ?
	`

	var updatedAt any
	if c.UpdatedAt != nil {
		updatedAt = c.UpdatedAt.UTC().Format(time.RFC3339)
	}

	result, err := r.getQuerier().ExecContext(ctx, query,
		c.Name,
		nullString(c.BusinessType),
		nullString(c.EstablishedDate),
		nullString(c.Representative),
		nullString(c.Address),
		nullString(c.Phone),
		updatedAt,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	return checkRowsAffected(result, apperrors.ErrCompanyNotFound)
}

// DeleteCompany removes a company; its transactions and snapshots cascade.
// Returns ErrCompanyNotFound if no company with the given ID exists.
func (r *CompanyRepository) DeleteCompany(ctx context.Context, companyID string) error {
	result, err := r.getQuerier().ExecContext(ctx, `DELETE FROM companies WHERE id = ?`, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return checkRowsAffected(result, apperrors.ErrCompanyNotFound)
}
