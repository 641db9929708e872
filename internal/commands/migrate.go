package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndewijer/Business-Ledger-Backend/internal/database"
)

func newMigrateCommand(opts *globalOptions) *cobra.Command {
	var statusOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			if !statusOnly {
				if err := database.Migrate(cmd.Context(), db, logger); err != nil {
					return err
				}
			}

			status, err := database.Status(cmd.Context(), db)
			if err != nil {
				return err
			}

			state := "up to date"
			if status.Pending {
				state = "pending migrations"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d of %d (%s)\n", status.Current, status.Latest, state)
			return nil
		},
	}

	cmd.Flags().BoolVar(&statusOnly, "status", false, "only report the schema version")

	return cmd
}
