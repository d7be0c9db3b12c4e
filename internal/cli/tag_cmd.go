package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/danielgrim/tempora/internal/cli/formatter"
	"github.com/danielgrim/tempora/internal/domain"
)

func newTagCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
	}

	cmd.AddCommand(newTagAddCmd(app), newTagListCmd(app))

	return cmd
}

func newTagAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now().UTC()
			tag := &domain.Tag{
				ID:          uuid.New().String(),
				WorkspaceID: app.WorkspaceID,
				Name:        args[0],
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := app.Tags.Create(context.Background(), tag); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created tag %s (%s)\n", tag.Name, formatter.TruncID(tag.ID))
			return nil
		},
	}
}

func newTagListCmd(app *App) *cobra.Command {
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := app.Tags.ListByWorkspace(context.Background(), app.WorkspaceID, includeArchived)
			if err != nil {
				return err
			}
			if len(tags) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tags found.")
				return nil
			}

			rows := make([][]string, 0, len(tags))
			for _, tag := range tags {
				rows = append(rows, []string{formatter.TruncID(tag.ID), tag.Name})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"ID", "NAME"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeArchived, "all", false, "Include archived tags")

	return cmd
}
