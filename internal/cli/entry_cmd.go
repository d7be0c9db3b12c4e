package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielgrim/tempora/internal/cli/formatter"
	"github.com/danielgrim/tempora/internal/service"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage time entries",
	}

	cmd.AddCommand(
		newEntryAddCmd(app),
		newEntryListCmd(app),
		newEntryEditCmd(app),
		newEntryDeleteCmd(app),
	)

	return cmd
}

func newEntryAddCmd(app *App) *cobra.Command {
	var from, to, projectID, taskID, description string
	var tagIDs []string
	var nonBillable, interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a historical entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if interactive {
				if !app.interactive() {
					return fmt.Errorf("-i needs an interactive terminal")
				}
				if err := runEntryForm(&from, &to, &description, &nonBillable); err != nil {
					return err
				}
			}
			if from == "" || to == "" {
				return fmt.Errorf("--from and --to are required (or use -i)")
			}

			start, err := parseTimeFlag(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			end, err := parseTimeFlag(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			manual := service.ManualEntry{
				Description: description,
				StartTime:   start,
				EndTime:     end,
				TagIDs:      tagIDs,
			}
			if projectID != "" {
				manual.ProjectID = &projectID
			}
			if taskID != "" {
				manual.TaskID = &taskID
			}
			if nonBillable {
				billable := false
				manual.Billable = &billable
			}

			entry, err := app.Entries.CreateManual(ctx, app.UserID, app.WorkspaceID, manual)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%s)\n",
				formatter.DurationCell(entry), formatter.TruncID(entry.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start time")
	cmd.Flags().StringVar(&to, "to", "", "End time")
	cmd.Flags().StringVar(&projectID, "project", "", "Project ID")
	cmd.Flags().StringVar(&taskID, "task", "", "Task ID")
	cmd.Flags().StringVar(&description, "description", "", "What the time was spent on")
	cmd.Flags().StringSliceVar(&tagIDs, "tag", nil, "Tag ID (repeatable)")
	cmd.Flags().BoolVar(&nonBillable, "non-billable", false, "Mark the entry non-billable")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the entry with a form")

	return cmd
}

func newEntryListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Entries.List(context.Background(), app.UserID, app.WorkspaceID, limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries found.")
				return nil
			}

			headers := []string{"ID", "DATE", "TIME", "DURATION", "PROJECT", "DESCRIPTION", "$"}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					formatter.TruncID(e.ID),
					e.StartTime.Local().Format("Jan 02"),
					formatter.TimeRange(&e.TimeEntry),
					formatter.DurationCell(&e.TimeEntry),
					formatter.ProjectLabel(e.ProjectName, e.ProjectColor),
					truncate(e.Description, 40),
					formatter.BillableIndicator(e.Billable),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum entries to show (default 100)")

	return cmd
}

func newEntryEditCmd(app *App) *cobra.Command {
	var from, to, projectID, description string
	var billable, nonBillable bool

	cmd := &cobra.Command{
		Use:   "edit <entry-id>",
		Short: "Edit an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if billable && nonBillable {
				return fmt.Errorf("--billable and --non-billable are mutually exclusive")
			}

			var changes service.EntryChanges
			if cmd.Flags().Changed("project") {
				changes.ProjectID = &projectID
			}
			if cmd.Flags().Changed("description") {
				changes.Description = &description
			}
			if from != "" {
				start, err := parseTimeFlag(from)
				if err != nil {
					return fmt.Errorf("--from: %w", err)
				}
				changes.StartTime = &start
			}
			if to != "" {
				end, err := parseTimeFlag(to)
				if err != nil {
					return fmt.Errorf("--to: %w", err)
				}
				changes.EndTime = &end
			}
			if billable || nonBillable {
				b := billable
				changes.Billable = &b
			}

			entry, err := app.Entries.Update(context.Background(), app.UserID, args[0], changes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n",
				formatter.TruncID(entry.ID), formatter.DurationCell(entry))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "New start time")
	cmd.Flags().StringVar(&to, "to", "", "New end time (closes an open entry)")
	cmd.Flags().StringVar(&projectID, "project", "", "New project ID (empty clears)")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().BoolVar(&billable, "billable", false, "Mark the entry billable")
	cmd.Flags().BoolVar(&nonBillable, "non-billable", false, "Mark the entry non-billable")

	return cmd
}

func newEntryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Entries.Delete(context.Background(), app.UserID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", formatter.TruncID(args[0]))
			return nil
		},
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
