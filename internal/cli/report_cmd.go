package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielgrim/tempora/internal/cli/formatter"
	"github.com/danielgrim/tempora/internal/report"
)

func newReportCmd(app *App) *cobra.Command {
	var from, to, csvPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize tracked time over a range",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			start, end, err := parseRangeFlags(from, to)
			if err != nil {
				return err
			}

			if csvPath != "" {
				out, err := app.Reports.ExportCSV(ctx, app.UserID, app.WorkspaceID, start, end)
				if err != nil {
					return err
				}
				if csvPath == "-" {
					fmt.Fprintln(cmd.OutOrStdout(), out)
					return nil
				}
				if err := os.WriteFile(csvPath, []byte(out+"\n"), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", csvPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", csvPath)
				return nil
			}

			rep, err := app.Reports.Generate(ctx, app.UserID, app.WorkspaceID, start, end)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, formatter.Header(fmt.Sprintf("Report %s – %s",
				start.Local().Format("Jan 02"), end.Local().Format("Jan 02"))))
			fmt.Fprintf(w, "Total        %s\n", formatter.Bold(report.FormatDuration(rep.Summary.TotalDuration)))
			fmt.Fprintf(w, "Billable     %s\n", report.FormatDuration(rep.Summary.BillableDuration))
			fmt.Fprintf(w, "Non-billable %s\n", report.FormatDuration(rep.Summary.NonBillableDuration))
			fmt.Fprintf(w, "Entries      %d\n", rep.Summary.TotalEntries)

			if len(rep.Summary.ProjectBreakdown) > 0 {
				fmt.Fprintln(w)
				headers := []string{"PROJECT", "DURATION", "SHARE"}
				rows := make([][]string, 0, len(rep.Summary.ProjectBreakdown))
				for _, slice := range rep.Summary.ProjectBreakdown {
					rows = append(rows, []string{
						formatter.ProjectLabel(slice.ProjectName, slice.ProjectColor),
						report.FormatDuration(slice.Duration),
						formatter.Percentage(slice.Percentage),
					})
				}
				fmt.Fprint(w, formatter.RenderTable(headers, rows))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start")
	cmd.Flags().StringVar(&to, "to", "", "Range end (inclusive)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Export CSV to a file, or - for stdout")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
