// Package app wires configuration, storage and services into a runnable ledger backend.
// It is shared by the HTTP server and the ledgerctl command line tool.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ndewijer/Business-Ledger-Backend/internal/api"
	"github.com/ndewijer/Business-Ledger-Backend/internal/config"
	"github.com/ndewijer/Business-Ledger-Backend/internal/database"
	"github.com/ndewijer/Business-Ledger-Backend/internal/model"
	"github.com/ndewijer/Business-Ledger-Backend/internal/repository"
	"github.com/ndewijer/Business-Ledger-Backend/internal/service"
)

// App holds the open connections and the services built on top of them.
type App struct {
	DB       *sql.DB
	Pool     *pgxpool.Pool
	Services api.Services
	Logger   *zap.Logger
}

// New switches decimal amounts to JSON numbers, opens the local database, applies
// pending migrations, connects the configured ledger source and builds every service.
//
// When cfg.Ledger.Source is postgres, statements and snapshots read transactions from
// the hosted ledger while companies stay in the local database.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	model.UseNumericAmounts()

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.Migrate(ctx, db, logger); err != nil {
		db.Close()
		return nil, err
	}

	a := &App{DB: db, Logger: logger}

	companyRepo := repository.NewCompanyRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	var ledger service.TransactionFetcher = transactionRepo
	if cfg.Ledger.Source == config.LedgerSourcePostgres {
		pool, err := database.ConnectPostgres(ctx, cfg.Ledger.PostgresURL, logger)
		if err != nil {
			db.Close()
			return nil, err
		}
		a.Pool = pool
		ledger = repository.NewPostgresTransactionStore(pool)
	}

	a.Services = api.Services{
		System:      service.NewSystemService(db, cfg.Ledger.Source),
		Company:     service.NewCompanyService(db, companyRepo),
		Transaction: service.NewTransactionService(db, transactionRepo, companyRepo),
		Financial:   service.NewFinancialService(companyRepo, ledger),
		Snapshot:    service.NewSnapshotService(snapshotRepo, companyRepo, ledger, cfg.Snapshot.Concurrency, logger),
	}

	logger.Info("ledger backend initialised",
		zap.String("database", cfg.Database.Path),
		zap.String("ledger_source", cfg.Ledger.Source),
	)
	return a, nil
}

// Close releases the postgres pool, if any, and the local database.
func (a *App) Close() error {
	if a.Pool != nil {
		a.Pool.Close()
	}
	return a.DB.Close()
}
