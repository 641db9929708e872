package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Business-Ledger-Backend/internal/model"
)

// CompanyBuilder provides a fluent interface for creating test companies.
//
// Example usage:
//
//	// Simple creation with defaults
//	company := testutil.NewCompany().Build(t, db)
//
//	// Customized company
//	company := testutil.NewCompany().
//	    WithName("Acme Trading").
//	    WithBusinessType("Retail").
//	    Build(t, db)
type CompanyBuilder struct {
	ID              string
	Name            string
	BusinessType    string
	EstablishedDate string
	Representative  string
	CreatedAt       time.Time
}

// NewCompany creates a CompanyBuilder with sensible defaults.
func NewCompany() *CompanyBuilder {
	return &CompanyBuilder{
		ID:              MakeID(),
		Name:            MakeCompanyName("Test Company"),
		BusinessType:    "Services",
		EstablishedDate: "2020-01-01",
		Representative:  "Test Representative",
		CreatedAt:       time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

// WithID sets a custom ID.
func (b *CompanyBuilder) WithID(id string) *CompanyBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *CompanyBuilder) WithName(name string) *CompanyBuilder {
	b.Name = name
	return b
}

// WithBusinessType sets a custom business type.
func (b *CompanyBuilder) WithBusinessType(businessType string) *CompanyBuilder {
	b.BusinessType = businessType
	return b
}

// Build creates the company in the database and returns it.
func (b *CompanyBuilder) Build(t *testing.T, db *sql.DB) model.Company {
	t.Helper()

	query := `
		INSERT INTO companies (id, name, business_type, established_date, representative, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.BusinessType, b.EstablishedDate, b.Representative, b.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test company: %v", err)
	}

	return model.Company{
		ID:              b.ID,
		Name:            b.Name,
		BusinessType:    b.BusinessType,
		EstablishedDate: b.EstablishedDate,
		Representative:  b.Representative,
		CreatedAt:       b.CreatedAt,
	}
}

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	transaction := testutil.NewTransaction(company.ID).
//	    WithAccount("Sales").
//	    WithType(model.TransactionTypeIncome).
//	    WithAmount("1000").
//	    WithDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)).
//	    Build(t, db)
type TransactionBuilder struct {
	ID          string
	CompanyID   string
	Date        time.Time
	Account     string
	Description string
	Amount      decimal.Decimal
	Type        model.TransactionType
	CreatedAt   time.Time
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
// Requires a companyID since transactions must belong to a company.
func NewTransaction(companyID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:        MakeID(),
		CompanyID: companyID,
		Date:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Account:   "Sales",
		Amount:    decimal.NewFromInt(100),
		Type:      model.TransactionTypeIncome,
		CreatedAt: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithDate sets the transaction date.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	b.Date = date
	return b
}

// WithAccount sets the account label.
func (b *TransactionBuilder) WithAccount(account string) *TransactionBuilder {
	b.Account = account
	return b
}

// WithDescription sets the description.
func (b *TransactionBuilder) WithDescription(description string) *TransactionBuilder {
	b.Description = description
	return b
}

// WithAmount sets the amount from its decimal string form. Invalid strings panic.
func (b *TransactionBuilder) WithAmount(amount string) *TransactionBuilder {
	b.Amount = decimal.RequireFromString(amount)
	return b
}

// WithType sets the transaction type.
func (b *TransactionBuilder) WithType(txType model.TransactionType) *TransactionBuilder {
	b.Type = txType
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO transactions (id, company_id, date, account, description, amount, type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	var description any
	if b.Description != "" {
		description = b.Description
	}

	_, err := db.Exec(query,
		b.ID,
		b.CompanyID,
		b.Date.Format("2006-01-02"),
		b.Account,
		description,
		b.Amount.String(),
		string(b.Type),
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.Transaction{
		ID:          b.ID,
		CompanyID:   b.CompanyID,
		Date:        b.Date,
		Account:     b.Account,
		Description: b.Description,
		Amount:      b.Amount,
		Type:        b.Type,
		CreatedAt:   b.CreatedAt,
	}
}

// Convenience functions

// CreateCompany creates a company with the given name and default values.
//
// Example usage:
//
//	company := testutil.CreateCompany(t, db, "Acme")
func CreateCompany(t *testing.T, db *sql.DB, name string) model.Company {
	t.Helper()
	return NewCompany().WithName(name).Build(t, db)
}

// CreateLedger records a small ledger for a company dated in January 2024:
// 1000 sales and 300 rent (income statement), 5000 cash and 2000 loan (balance sheet).
func CreateLedger(t *testing.T, db *sql.DB, companyID string) []model.Transaction {
	t.Helper()

	jan := func(day int) time.Time { return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC) }

	return []model.Transaction{
		NewTransaction(companyID).WithDate(jan(5)).WithAccount("Sales").WithType(model.TransactionTypeIncome).WithAmount("600").Build(t, db),
		NewTransaction(companyID).WithDate(jan(20)).WithAccount("Sales").WithType(model.TransactionTypeIncome).WithAmount("400").Build(t, db),
		NewTransaction(companyID).WithDate(jan(10)).WithAccount("Rent").WithType(model.TransactionTypeExpense).WithAmount("300").Build(t, db),
		NewTransaction(companyID).WithDate(jan(2)).WithAccount("Cash").WithType(model.TransactionTypeAsset).WithAmount("5000").Build(t, db),
		NewTransaction(companyID).WithDate(jan(3)).WithAccount("Bank Loan").WithType(model.TransactionTypeLiability).WithAmount("2000").Build(t, db),
	}
}
