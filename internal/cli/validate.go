package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/IbtisamHemmo/Marketing-POC/domain/schema"
)

func newValidateCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate page content against the schema rules",
		Long: `Fetch the page documents and check them against the validation rule
table. Exits non-zero when any rule fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := contentService(appConfig(v), newLogger(cmd, v))
			if err != nil {
				return err
			}
			raw, err := svc.Raw(cmd.Context())
			if err != nil {
				return err
			}

			report := schema.NewValidationReport(schema.NewRegistry(), raw)
			out := cmd.OutOrStdout()

			if format := v.GetString("output"); format != formatText {
				if err := encode(out, format, report); err != nil {
					return err
				}
			} else if report.Valid {
				fmt.Fprintf(out, "%d document(s) checked, no violations.\n", len(report.Checked))
			} else {
				table := tablewriter.NewWriter(out)
				table.Header("Type", "Field", "Rule", "Message")
				for _, vi := range report.Violations {
					table.Append(vi.Type, vi.Field, string(vi.Rule), vi.Message)
				}
				if err := table.Render(); err != nil {
					return err
				}
				fmt.Fprintf(out, "%d document(s) checked, %d violation(s).\n", len(report.Checked), len(report.Violations))
			}

			if !report.Valid {
				return ErrInvalidContent
			}
			return nil
		},
	}
}
