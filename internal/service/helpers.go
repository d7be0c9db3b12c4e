package service

import (
	"errors"
	"fmt"

	"github.com/danielgrim/tempora/internal/domain"
)

// classify maps an error onto the service taxonomy. Errors already carrying a
// domain sentinel pass through unchanged; anything else is a store failure.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrTimerConflict) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrStore) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStore, err)
}

func requireScope(userID, workspaceID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	if workspaceID == "" {
		return fmt.Errorf("%w: workspace id is required", domain.ErrValidation)
	}
	return nil
}
