package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndewijer/Business-Ledger-Backend/internal/api/request"
	"github.com/ndewijer/Business-Ledger-Backend/internal/model"
	"github.com/ndewijer/Business-Ledger-Backend/internal/validation"
)

type statementReport struct {
	Statements model.FinancialStatements `json:"statements"`
	Metrics    model.FinancialMetrics    `json:"metrics"`
}

func newStatementCommand(opts *globalOptions) *cobra.Command {
	var companyID, startDate, endDate, previousStart, previousEnd, previous string

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Print the financial statements and metrics of a company as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validation.ValidateUUID(companyID); err != nil {
				return err
			}

			q, err := request.ParsePeriodQuery(startDate, endDate, previousStart, previousEnd, previous)
			if err != nil {
				return err
			}

			a, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			statements, err := a.Services.Financial.GetFinancialStatements(cmd.Context(), companyID, q.StartDate, q.EndDate)
			if err != nil {
				return err
			}
			metrics, err := a.Services.Financial.GetFinancialMetrics(cmd.Context(), companyID, q)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(statementReport{Statements: statements, Metrics: metrics}); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company ID (required)")
	_ = cmd.MarkFlagRequired("company")
	cmd.Flags().StringVar(&startDate, "start", "", "first day of the period, YYYY-MM-DD (default January 1st)")
	cmd.Flags().StringVar(&endDate, "end", "", "last day of the period, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&previousStart, "previous-start", "", "first day of the comparison period, YYYY-MM-DD")
	cmd.Flags().StringVar(&previousEnd, "previous-end", "", "last day of the comparison period, YYYY-MM-DD")
	cmd.Flags().StringVar(&previous, "previous", "", `set to "auto" to compare with the preceding period`)

	return cmd
}
