package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielgrim/tempora/internal/domain"
	"github.com/danielgrim/tempora/internal/repository"
)

type timerService struct {
	entries  repository.EntryRepo
	clock    Clock
	observer UseCaseObserver
}

// NewTimerService creates the timer guard over the given entry repository.
func NewTimerService(entries repository.EntryRepo, clock Clock, observers ...UseCaseObserver) TimerService {
	if clock == nil {
		clock = SystemClock()
	}
	return &timerService{
		entries:  entries,
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *timerService) Start(ctx context.Context, userID, workspaceID string, attrs StartAttrs) (entry *domain.TimeEntry, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "timer-start",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"user_id": userID, "workspace_id": workspaceID},
		})
	}()

	if err = requireScope(userID, workspaceID); err != nil {
		return nil, err
	}

	// Pre-check for a friendly error; the partial unique index on open
	// entries is the real arbiter under races.
	if _, activeErr := s.entries.GetActive(ctx, userID, workspaceID); activeErr == nil {
		err = fmt.Errorf("starting timer: %w", domain.ErrTimerConflict)
		return nil, err
	} else if !errors.Is(activeErr, domain.ErrNotFound) {
		err = classify(activeErr)
		return nil, err
	}

	now := s.clock.Now().UTC()
	e := &domain.TimeEntry{
		ID:          uuid.New().String(),
		WorkspaceID: workspaceID,
		UserID:      userID,
		ProjectID:   attrs.ProjectID,
		TaskID:      attrs.TaskID,
		Description: attrs.Description,
		StartTime:   now,
		Billable:    domain.BoolFromPtrWithDefault(true, attrs.Billable),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = e.Validate(); err != nil {
		return nil, err
	}
	if err = classify(s.entries.Create(ctx, e)); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *timerService) Stop(ctx context.Context, entryID string) (entry *domain.TimeEntry, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "timer-stop",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"entry_id": entryID},
		})
	}()

	if entryID == "" {
		err = fmt.Errorf("%w: entry id is required", domain.ErrValidation)
		return nil, err
	}

	entry, err = s.entries.Stop(ctx, entryID, s.clock.Now().UTC())
	if err != nil {
		err = classify(err)
		return nil, err
	}
	return entry, nil
}

func (s *timerService) Active(ctx context.Context, userID, workspaceID string) (*domain.TimeEntry, error) {
	if err := requireScope(userID, workspaceID); err != nil {
		return nil, err
	}
	entry, err := s.entries.GetActive(ctx, userID, workspaceID)
	if err != nil {
		return nil, classify(err)
	}
	return entry, nil
}
