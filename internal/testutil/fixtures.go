package testutil

import (
	"time"

	"github.com/danielgrim/tempora/internal/domain"
	"github.com/google/uuid"
)

// Workspace and user ids shared by most tests. Tenancy tests add their own.
const (
	WorkspaceID = "b7f9d8a0-1111-4aaa-9bbb-000000000001"
	UserID      = "b7f9d8a0-2222-4aaa-9bbb-000000000002"
)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectColor(c string) ProjectOption {
	return func(p *domain.Project) {
		p.Color = c
	}
}

func WithProjectWorkspace(id string) ProjectOption {
	return func(p *domain.Project) {
		p.WorkspaceID = id
	}
}

func WithProjectBillable(b bool) ProjectOption {
	return func(p *domain.Project) {
		p.Billable = b
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:          uuid.New().String(),
		WorkspaceID: WorkspaceID,
		Name:        name,
		Color:       domain.DefaultProjectColor,
		Billable:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Entry options
type EntryOption func(*domain.TimeEntry)

func WithEntryWorkspace(id string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.WorkspaceID = id
	}
}

func WithEntryUser(id string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.UserID = id
	}
}

func WithProject(projectID string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.ProjectID = &projectID
	}
}

func WithTask(taskID string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.TaskID = &taskID
	}
}

func WithDescription(d string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Description = d
	}
}

func WithBillable(b bool) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Billable = b
	}
}

func WithStart(t time.Time) EntryOption {
	return func(e *domain.TimeEntry) {
		e.StartTime = t
	}
}

// Running clears the end time so the entry represents an open timer.
func Running() EntryOption {
	return func(e *domain.TimeEntry) {
		e.EndTime = nil
	}
}

// NewTestEntry builds a closed one-hour entry starting at start.
func NewTestEntry(start time.Time, opts ...EntryOption) *domain.TimeEntry {
	now := time.Now().UTC()
	end := start.Add(time.Hour)
	e := &domain.TimeEntry{
		ID:          uuid.New().String(),
		WorkspaceID: WorkspaceID,
		UserID:      UserID,
		StartTime:   start,
		EndTime:     &end,
		Billable:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ClosedAt sets an explicit end time.
func ClosedAt(end time.Time) EntryOption {
	return func(e *domain.TimeEntry) {
		e.EndTime = &end
	}
}

func NewTestTag(name string) *domain.Tag {
	now := time.Now().UTC()
	return &domain.Tag{
		ID:          uuid.New().String(),
		WorkspaceID: WorkspaceID,
		Name:        name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func NewTestTask(projectID, name string) *domain.Task {
	now := time.Now().UTC()
	return &domain.Task{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		Status:    domain.TaskActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
