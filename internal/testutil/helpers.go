package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/ndewijer/Business-Ledger-Backend/internal/config"
	"github.com/ndewijer/Business-Ledger-Backend/internal/repository"
	"github.com/ndewijer/Business-Ledger-Backend/internal/service"
)

func NewTestCompanyService(t *testing.T, db *sql.DB) *service.CompanyService {
	t.Helper()

	return service.NewCompanyService(db, repository.NewCompanyRepository(db))
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	return service.NewTransactionService(
		db,
		repository.NewTransactionRepository(db),
		repository.NewCompanyRepository(db),
	)
}

// NewTestFinancialService wires a FinancialService that reads the local transactions table.
func NewTestFinancialService(t *testing.T, db *sql.DB) *service.FinancialService {
	t.Helper()

	return service.NewFinancialService(
		repository.NewCompanyRepository(db),
		repository.NewTransactionRepository(db),
	)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	return service.NewSnapshotService(
		repository.NewSnapshotRepository(db),
		repository.NewCompanyRepository(db),
		repository.NewTransactionRepository(db),
		2,
		nil,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db, config.LedgerSourceSQLite)
}

// MakeID generates a unique UUID for testing.
func MakeID() string {
	return uuid.New().String()
}

// MakeCompanyName generates a unique company name for testing.
//
// Example usage:
//
//	name := testutil.MakeCompanyName("Acme")
//	// Returns: "Acme X7K9P2"
func MakeCompanyName(base string) string {
	if base == "" {
		base = "Company"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))] //nolint:gosec // Test data generation doesn't need crypto/rand
	}
	return string(b)
}
