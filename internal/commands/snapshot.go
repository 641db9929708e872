package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ndewijer/Business-Ledger-Backend/internal/service"
)

const monthLayout = "2006-01"

// parseMonth resolves the --month flag. An empty value selects the month before now.
func parseMonth(value string, now time.Time) (time.Time, error) {
	if value == "" {
		start, _ := service.MonthRange(now)
		return start.AddDate(0, -1, 0), nil
	}

	month, err := time.Parse(monthLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: expected YYYY-MM", value)
	}
	return month, nil
}

func newSnapshotCommand(opts *globalOptions) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Store the closing statements of every company for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := parseMonth(month, time.Now())
			if err != nil {
				return err
			}

			a, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			written, err := a.Services.Snapshot.SnapshotMonth(cmd.Context(), target)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d snapshots for %s\n", written, target.Format(monthLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to snapshot, YYYY-MM (default previous month)")

	return cmd
}
