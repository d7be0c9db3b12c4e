package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielgrim/tempora/internal/cli/formatter"
	"github.com/danielgrim/tempora/internal/domain"
	"github.com/danielgrim/tempora/internal/report"
	"github.com/danielgrim/tempora/internal/service"
)

func newStartCmd(app *App) *cobra.Command {
	var projectID, taskID, description string
	var nonBillable bool

	cmd := &cobra.Command{
		Use:   "start [description]",
		Short: "Start a timer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) > 0 {
				description = args[0]
			}

			attrs := service.StartAttrs{Description: description}
			if projectID != "" {
				attrs.ProjectID = &projectID
			}
			if taskID != "" {
				attrs.TaskID = &taskID
			}
			if nonBillable {
				billable := false
				attrs.Billable = &billable
			}

			entry, err := app.Timers.Start(ctx, app.UserID, app.WorkspaceID, attrs)
			if err != nil {
				if errors.Is(err, domain.ErrTimerConflict) {
					return fmt.Errorf("a timer is already running; stop it first with 'tempora stop'")
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Started timer %s at %s\n",
				formatter.TruncID(entry.ID), entry.StartTime.Local().Format("15:04:05"))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project ID")
	cmd.Flags().StringVar(&taskID, "task", "", "Task ID")
	cmd.Flags().StringVar(&description, "description", "", "What you are working on")
	cmd.Flags().BoolVar(&nonBillable, "non-billable", false, "Mark the entry non-billable")

	return cmd
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			active, err := app.Timers.Active(ctx, app.UserID, app.WorkspaceID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("no timer is running")
				}
				return err
			}

			stopped, err := app.Timers.Stop(ctx, active.ID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Stopped after %s\n",
				report.FormatDuration(stopped.DurationSeconds()))
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the running timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			active, err := app.Timers.Active(ctx, app.UserID, app.WorkspaceID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), "No timer running.")
					return nil
				}
				return err
			}

			elapsed := int(time.Since(active.StartTime).Seconds())
			desc := active.Description
			if desc == "" {
				desc = formatter.Dim("(no description)")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  started %s\n",
				formatter.RunningIndicator(),
				formatter.ElapsedClock(elapsed),
				desc,
				active.StartTime.Local().Format("15:04:05"))
			return nil
		},
	}
}
