package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// MigrationStatus describes how far the database schema is behind the binary.
type MigrationStatus struct {
	Current int64
	Latest  int64
	Pending bool
}

func newProvider(db *sql.DB) (*goose.Provider, error) {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return provider, nil
}

// Migrate applies all pending migrations. A nil logger disables logging.
func Migrate(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	provider, err := newProvider(db)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, r := range results {
		logger.Info("applied migration",
			zap.Int64("version", r.Source.Version),
			zap.String("path", r.Source.Path),
			zap.Duration("duration", r.Duration),
		)
	}
	return nil
}

// Status reports the applied schema version against the newest embedded migration.
func Status(ctx context.Context, db *sql.DB) (MigrationStatus, error) {
	provider, err := newProvider(db)
	if err != nil {
		return MigrationStatus{}, err
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return MigrationStatus{}, fmt.Errorf("failed to read schema version: %w", err)
	}

	status := MigrationStatus{Current: current}
	for _, source := range provider.ListSources() {
		if source.Version > status.Latest {
			status.Latest = source.Version
		}
	}
	status.Pending = status.Current < status.Latest

	return status, nil
}
