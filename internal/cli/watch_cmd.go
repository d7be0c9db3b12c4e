package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/danielgrim/tempora/internal/cli/formatter"
	"github.com/danielgrim/tempora/internal/domain"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the running timer live",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("watch needs an interactive terminal")
			}

			active, err := app.Timers.Active(context.Background(), app.UserID, app.WorkspaceID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("no timer is running")
				}
				return err
			}

			model := newWatchModel(active)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

type watchTickMsg time.Time

type watchModel struct {
	entry *domain.TimeEntry
	now   time.Time
}

func newWatchModel(entry *domain.TimeEntry) watchModel {
	return watchModel{entry: entry, now: time.Now()}
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return watchTick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case watchTickMsg:
		m.now = time.Time(msg)
		return m, watchTick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

var watchBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(formatter.ColorDim).
	Padding(1, 3)

func (m watchModel) View() string {
	elapsed := int(m.now.Sub(m.entry.StartTime).Seconds())

	desc := m.entry.Description
	if desc == "" {
		desc = "(no description)"
	}

	body := fmt.Sprintf("%s\n\n%s\n%s\n\n%s",
		formatter.RunningIndicator(),
		formatter.StyleBold.Render(formatter.ElapsedClock(elapsed)),
		formatter.StyleFg.Render(desc),
		formatter.Dim("q to quit"))

	return watchBox.Render(body) + "\n"
}
