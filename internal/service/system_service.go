package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndewijer/Business-Ledger-Backend/internal/config"
	"github.com/ndewijer/Business-Ledger-Backend/internal/database"
	"github.com/ndewijer/Business-Ledger-Backend/internal/model"
	"github.com/ndewijer/Business-Ledger-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db           *sql.DB
	ledgerSource string
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB, ledgerSource string) *SystemService {
	return &SystemService{
		db:           db,
		ledgerSource: ledgerSource,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth(ctx context.Context) error {
	return database.HealthCheck(ctx, s.db)
}

// GetVersionInfo reports the application version, the applied schema version and
// whether migrations are pending.
func (s *SystemService) GetVersionInfo(ctx context.Context) (model.VersionInfo, error) {
	status, err := database.Status(ctx, s.db)
	if err != nil {
		return model.VersionInfo{}, err
	}

	info := model.VersionInfo{
		AppVersion:      version.Version,
		Commit:          version.Commit,
		DbVersion:       fmt.Sprintf("%d", status.Current),
		LatestDbVersion: fmt.Sprintf("%d", status.Latest),
		LedgerSource:    s.ledgerSource,
		MigrationNeeded: status.Pending,
		Features: map[string]bool{
			"financial_statements": true,
			"financial_metrics":    true,
			"statement_snapshots":  true,
			"postgres_ledger":      s.ledgerSource == config.LedgerSourcePostgres,
		},
	}

	if status.Pending {
		msg := fmt.Sprintf("database schema is at version %d, latest is %d; run ledgerctl migrate", status.Current, status.Latest)
		info.MigrationMessage = &msg
	}

	return info, nil
}
