package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielgrim/tempora/internal/ingest"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <batch.json>",
		Short: "Import a JSON batch of time entries",
		Long: "Import reads a JSON array of time entries and loads them in a single\n" +
			"transaction: if any record is invalid or any insert fails, nothing is kept.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := ingest.LoadBatch(args[0])
			if err != nil {
				return err
			}

			result, err := app.Ingest.IngestBatch(context.Background(), batch)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries\n", result.Inserted)
			return nil
		},
	}
}
