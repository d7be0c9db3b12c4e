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

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectArchiveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var color string
	var nonBillable bool

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now().UTC()
			p := &domain.Project{
				ID:          uuid.New().String(),
				WorkspaceID: app.WorkspaceID,
				Name:        args[0],
				Color:       domain.CoalesceStr(color, domain.DefaultProjectColor),
				Billable:    !nonBillable,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%s)\n",
				formatter.ProjectLabel(p.Name, p.Color), formatter.TruncID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "Hex color, e.g. #FF5722")
	cmd.Flags().BoolVar(&nonBillable, "non-billable", false, "Default new entries to non-billable")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.ListByWorkspace(context.Background(), app.WorkspaceID, includeArchived)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}

			headers := []string{"ID", "NAME", "$", "ARCHIVED"}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				archived := ""
				if p.Archived {
					archived = formatter.Dim("yes")
				}
				rows = append(rows, []string{
					formatter.TruncID(p.ID),
					formatter.ProjectLabel(p.Name, p.Color),
					formatter.BillableIndicator(p.Billable),
					archived,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeArchived, "all", false, "Include archived projects")

	return cmd
}

func newProjectArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <project-id>",
		Short: "Archive a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.Archive(context.Background(), app.WorkspaceID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived %s\n", formatter.TruncID(args[0]))
			return nil
		},
	}
}
