package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Business-Ledger-Backend/internal/apperrors"
	"github.com/ndewijer/Business-Ledger-Backend/internal/model"
	"github.com/ndewijer/Business-Ledger-Backend/internal/repository"
	"github.com/ndewijer/Business-Ledger-Backend/internal/testutil"
)

func date(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 0, 0, 0, 0, time.UTC)
}

// TestTransactionRepository_FetchTransactions tests the ledger query used by statements.
//
// WHY: Statement totals are only correct if both period boundaries are included and
// other companies' entries are never mixed in.
func TestTransactionRepository_FetchTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTransactionRepository(db)
	company := testutil.NewCompany().Build(t, db)
	other := testutil.NewCompany().Build(t, db)

	first := testutil.NewTransaction(company.ID).WithDate(date(time.January, 1)).Build(t, db)
	testutil.NewTransaction(company.ID).WithDate(date(time.January, 15)).Build(t, db)
	last := testutil.NewTransaction(company.ID).WithDate(date(time.January, 31)).Build(t, db)
	testutil.NewTransaction(company.ID).WithDate(date(time.February, 1)).Build(t, db)
	testutil.NewTransaction(other.ID).WithDate(date(time.January, 10)).Build(t, db)

	transactions, err := repo.FetchTransactions(context.Background(), company.ID, date(time.January, 1), date(time.January, 31))
	if err != nil {
		t.Fatalf("FetchTransactions() returned unexpected error: %v", err)
	}

	if len(transactions) != 3 {
		t.Fatalf("Expected 3 transactions, got %d", len(transactions))
	}
	if transactions[0].ID != first.ID || transactions[2].ID != last.ID {
		t.Errorf("Expected ascending date order")
	}
	for _, tx := range transactions {
		if tx.CompanyID != company.ID {
			t.Errorf("Transaction %s belongs to company %s", tx.ID, tx.CompanyID)
		}
	}
}

func TestTransactionRepository_PreservesDecimalAmounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTransactionRepository(db)
	company := testutil.NewCompany().Build(t, db)

	testutil.NewTransaction(company.ID).WithAmount("0.1").Build(t, db)
	testutil.NewTransaction(company.ID).WithAmount("0.2").Build(t, db)

	transactions, err := repo.GetTransactionsPerCompany(context.Background(), company.ID)
	if err != nil {
		t.Fatalf("GetTransactionsPerCompany() returned unexpected error: %v", err)
	}

	sum := decimal.Zero
	for _, tx := range transactions {
		sum = sum.Add(tx.Amount)
	}
	if sum.String() != "0.3" {
		t.Errorf("Expected sum 0.3, got %s", sum)
	}
}

func TestTransactionRepository_CRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTransactionRepository(db)
	company := testutil.NewCompany().Build(t, db)
	ctx := context.Background()

	tx := &model.Transaction{
		ID:          testutil.MakeID(),
		CompanyID:   company.ID,
		Date:        date(time.March, 3),
		Account:     "Equipment",
		Description: "Laptop",
		Amount:      decimal.RequireFromString("1499.99"),
		Type:        model.TransactionTypeAsset,
		CreatedAt:   date(time.March, 3),
	}
	if err := repo.InsertTransaction(ctx, tx); err != nil {
		t.Fatalf("InsertTransaction() returned unexpected error: %v", err)
	}

	got, err := repo.GetTransaction(ctx, tx.ID)
	if err != nil {
		t.Fatalf("GetTransaction() returned unexpected error: %v", err)
	}
	if !got.Date.Equal(tx.Date) || got.Description != "Laptop" || !got.Amount.Equal(tx.Amount) {
		t.Errorf("Unexpected transaction: %+v", got)
	}

	updatedAt := date(time.March, 4)
	got.Account = "Computers"
	got.UpdatedAt = &updatedAt
	if err := repo.UpdateTransaction(ctx, &got); err != nil {
		t.Fatalf("UpdateTransaction() returned unexpected error: %v", err)
	}

	got, err = repo.GetTransaction(ctx, tx.ID)
	if err != nil {
		t.Fatalf("GetTransaction() returned unexpected error: %v", err)
	}
	if got.Account != "Computers" || got.UpdatedAt == nil {
		t.Errorf("Expected update to be stored, got %+v", got)
	}

	if err := repo.DeleteTransaction(ctx, tx.ID); err != nil {
		t.Fatalf("DeleteTransaction() returned unexpected error: %v", err)
	}
	if _, err := repo.GetTransaction(ctx, tx.ID); !errors.Is(err, apperrors.ErrTransactionNotFound) {
		t.Errorf("Expected ErrTransactionNotFound after delete, got %v", err)
	}
	if err := repo.DeleteTransaction(ctx, tx.ID); !errors.Is(err, apperrors.ErrTransactionNotFound) {
		t.Errorf("Expected ErrTransactionNotFound for second delete, got %v", err)
	}
}

func TestTransactionRepository_WithTxRollsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTransactionRepository(db)
	company := testutil.NewCompany().Build(t, db)
	ctx := context.Background()

	sqlTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("BeginTx() returned unexpected error: %v", err)
	}

	tx := &model.Transaction{
		ID:        testutil.MakeID(),
		CompanyID: company.ID,
		Date:      date(time.March, 3),
		Account:   "Sales",
		Amount:    decimal.NewFromInt(10),
		Type:      model.TransactionTypeIncome,
		CreatedAt: date(time.March, 3),
	}
	if err := repo.WithTx(sqlTx).InsertTransaction(ctx, tx); err != nil {
		t.Fatalf("InsertTransaction() returned unexpected error: %v", err)
	}
	if err := sqlTx.Rollback(); err != nil {
		t.Fatalf("Rollback() returned unexpected error: %v", err)
	}

	if _, err := repo.GetTransaction(ctx, tx.ID); !errors.Is(err, apperrors.ErrTransactionNotFound) {
		t.Errorf("Expected rolled back insert to be absent, got %v", err)
	}
}

func TestCompanyRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCompanyRepository(db)
	ctx := context.Background()

	company := &model.Company{
		ID:              testutil.MakeID(),
		Name:            "Acme",
		EstablishedDate: "2015-06-01",
		CreatedAt:       date(time.January, 1),
	}
	if err := repo.InsertCompany(ctx, company); err != nil {
		t.Fatalf("InsertCompany() returned unexpected error: %v", err)
	}

	got, err := repo.GetCompany(ctx, company.ID)
	if err != nil {
		t.Fatalf("GetCompany() returned unexpected error: %v", err)
	}
	if got.EstablishedDate != "2015-06-01" || got.BusinessType != "" {
		t.Errorf("Unexpected company: %+v", got)
	}

	if _, err := repo.GetCompany(ctx, testutil.MakeID()); !errors.Is(err, apperrors.ErrCompanyNotFound) {
		t.Errorf("Expected ErrCompanyNotFound, got %v", err)
	}

	if err := repo.DeleteCompany(ctx, company.ID); err != nil {
		t.Fatalf("DeleteCompany() returned unexpected error: %v", err)
	}
	if err := repo.DeleteCompany(ctx, company.ID); !errors.Is(err, apperrors.ErrCompanyNotFound) {
		t.Errorf("Expected ErrCompanyNotFound for second delete, got %v", err)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-15", date(time.January, 15)},
		{"2024-01-15 10:30:00", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-01-15T10:30:00+02:00", time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := repository.ParseTime(tt.in)
		if err != nil {
			t.Errorf("ParseTime(%q) returned unexpected error: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseTime(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := repository.ParseTime("15/01/2024"); err == nil {
		t.Error("Expected error for unsupported layout")
	}
}
