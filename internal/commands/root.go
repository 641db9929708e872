// Package commands implements the ledgerctl command line tool.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ndewijer/Business-Ledger-Backend/internal/app"
	"github.com/ndewijer/Business-Ledger-Backend/internal/config"
	"github.com/ndewijer/Business-Ledger-Backend/internal/logging"
	"github.com/ndewijer/Business-Ledger-Backend/internal/version"
)

// globalOptions are the persistent flags shared by every subcommand.
// Empty values fall back to the environment configuration.
type globalOptions struct {
	dbPath   string
	logLevel string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "ledgerctl",
		Short:   "Maintenance tool for the business ledger backend",
		Version: fmt.Sprintf("%s (commit: %s)", version.Version, version.Commit),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "path to the SQLite database (overrides DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	rootCmd.AddCommand(newMigrateCommand(opts))
	rootCmd.AddCommand(newStatementCommand(opts))
	rootCmd.AddCommand(newSnapshotCommand(opts))

	return rootCmd
}

// loadConfig reads the environment configuration and applies flag overrides.
func (o *globalOptions) loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}
	if o.dbPath != "" {
		cfg.Database.Path = o.dbPath
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// openApp builds the full application for commands that need services.
func (o *globalOptions) openApp(ctx context.Context) (*app.App, error) {
	cfg, logger, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg, logger)
}
