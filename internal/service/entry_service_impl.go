package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielgrim/tempora/internal/domain"
	"github.com/danielgrim/tempora/internal/repository"
)

const defaultListLimit = 100

type entryService struct {
	entries  repository.EntryRepo
	clock    Clock
	observer UseCaseObserver
}

// NewEntryService creates the entry lifecycle service.
func NewEntryService(entries repository.EntryRepo, clock Clock, observers ...UseCaseObserver) EntryService {
	if clock == nil {
		clock = SystemClock()
	}
	return &entryService{
		entries:  entries,
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *entryService) CreateManual(ctx context.Context, userID, workspaceID string, manual ManualEntry) (entry *domain.TimeEntry, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "entry-create",
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
	if manual.StartTime.IsZero() || manual.EndTime.IsZero() {
		err = fmt.Errorf("%w: manual entries need both start and end times", domain.ErrValidation)
		return nil, err
	}

	now := s.clock.Now().UTC()
	end := manual.EndTime.UTC()
	e := &domain.TimeEntry{
		ID:          uuid.New().String(),
		WorkspaceID: workspaceID,
		UserID:      userID,
		ProjectID:   manual.ProjectID,
		TaskID:      manual.TaskID,
		Description: manual.Description,
		StartTime:   manual.StartTime.UTC(),
		EndTime:     &end,
		Billable:    domain.BoolFromPtrWithDefault(true, manual.Billable),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = e.Validate(); err != nil {
		return nil, err
	}
	if err = classify(s.entries.Create(ctx, e)); err != nil {
		return nil, err
	}
	if len(manual.TagIDs) > 0 {
		if err = classify(s.entries.AttachTags(ctx, e.ID, manual.TagIDs)); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (s *entryService) Update(ctx context.Context, userID, entryID string, changes EntryChanges) (entry *domain.TimeEntry, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "entry-update",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"user_id": userID, "entry_id": entryID},
		})
	}()

	if userID == "" || entryID == "" {
		err = fmt.Errorf("%w: user id and entry id are required", domain.ErrValidation)
		return nil, err
	}

	entry, err = s.entries.GetByID(ctx, entryID)
	if err != nil {
		err = classify(err)
		return nil, err
	}
	// An entry owned by someone else looks absent, not forbidden.
	if entry.UserID != userID {
		err = fmt.Errorf("time entry %s: %w", entryID, domain.ErrNotFound)
		return nil, err
	}

	applyChanges(entry, changes)
	entry.UpdatedAt = s.clock.Now().UTC()

	if err = entry.Validate(); err != nil {
		return nil, err
	}
	if err = classify(s.entries.Update(ctx, userID, entry)); err != nil {
		return nil, err
	}
	return entry, nil
}

func applyChanges(e *domain.TimeEntry, changes EntryChanges) {
	if changes.ProjectID != nil {
		if *changes.ProjectID == "" {
			e.ProjectID = nil
		} else {
			e.ProjectID = changes.ProjectID
		}
	}
	if changes.TaskID != nil {
		if *changes.TaskID == "" {
			e.TaskID = nil
		} else {
			e.TaskID = changes.TaskID
		}
	}
	if changes.Description != nil {
		e.Description = *changes.Description
	}
	if changes.StartTime != nil {
		e.StartTime = changes.StartTime.UTC()
	}
	if changes.EndTime != nil {
		end := changes.EndTime.UTC()
		e.EndTime = &end
	}
	if changes.Billable != nil {
		e.Billable = *changes.Billable
	}
}

func (s *entryService) Delete(ctx context.Context, userID, entryID string) (err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "entry-delete",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"user_id": userID, "entry_id": entryID},
		})
	}()

	if userID == "" || entryID == "" {
		err = fmt.Errorf("%w: user id and entry id are required", domain.ErrValidation)
		return err
	}
	err = classify(s.entries.Delete(ctx, userID, entryID))
	return err
}

func (s *entryService) List(ctx context.Context, userID, workspaceID string, limit int) ([]*domain.EntryDetail, error) {
	if err := requireScope(userID, workspaceID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	details, err := s.entries.ListByUser(ctx, userID, workspaceID, limit)
	if err != nil {
		return nil, classify(err)
	}
	return details, nil
}
