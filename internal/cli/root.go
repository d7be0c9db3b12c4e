package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danielgrim/tempora/internal/repository"
	"github.com/danielgrim/tempora/internal/service"
)

// App holds the service interfaces and scope used by CLI commands.
type App struct {
	Timers   service.TimerService
	Entries  service.EntryService
	Reports  service.ReportService
	Ingest   service.IngestService
	Projects repository.ProjectRepo
	Tags     repository.TagRepo

	// Scope identifying whose time is tracked; set from config at startup.
	WorkspaceID string
	UserID      string

	// IsInteractive reports whether stdin is a terminal; gates forms and
	// the watch view.
	IsInteractive func() bool
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// NewRootCmd creates the top-level "tempora" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tempora",
		Short:         "Track time from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Accept snake_case spellings of flags, e.g. --non_billable.
	root.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newWatchCmd(app),
		newEntryCmd(app),
		newReportCmd(app),
		newProjectCmd(app),
		newTagCmd(app),
		newImportCmd(app),
	)

	return root
}
