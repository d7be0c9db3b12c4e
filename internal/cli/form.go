package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

func validateTimeInput(value string) error {
	if value == "" {
		return fmt.Errorf("required")
	}
	if _, err := parseTimeFlag(value); err != nil {
		return err
	}
	return nil
}

// runEntryForm collects the manual-entry fields interactively. A billable
// confirm is inverted into the non-billable flag the command works with.
func runEntryForm(from, to, description *string, nonBillable *bool) error {
	billable := !*nonBillable

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Placeholder("sprint planning").
				Value(description),
			huh.NewInput().
				Title("Start (YYYY-MM-DD HH:MM)").
				Placeholder("2025-03-10 09:00").
				Value(from).
				Validate(validateTimeInput),
			huh.NewInput().
				Title("End (YYYY-MM-DD HH:MM)").
				Placeholder("2025-03-10 10:30").
				Value(to).
				Validate(validateTimeInput),
			huh.NewConfirm().
				Title("Billable?").
				Value(&billable),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}
	*nonBillable = !billable
	return nil
}
