package repository

import (
	"context"
	"time"

	"github.com/danielgrim/tempora/internal/domain"
)

// EntryRepo persists time entries. Every operation is scoped by workspace id
// and, where an owner exists, by user id; rows from other tenants are never
// visible through this interface.
type EntryRepo interface {
	Create(ctx context.Context, e *domain.TimeEntry) error
	GetByID(ctx context.Context, id string) (*domain.TimeEntry, error)

	// GetActive returns the running entry for the user in the workspace, or
	// ErrNotFound when no timer is open.
	GetActive(ctx context.Context, userID, workspaceID string) (*domain.TimeEntry, error)

	// Stop closes the entry in a single conditional update: the end time is
	// written only if the row is still open. Returns ErrNotFound when the
	// entry is missing or already stopped.
	Stop(ctx context.Context, id string, end time.Time) (*domain.TimeEntry, error)

	// ListClosedInRange returns closed entries whose start time falls within
	// [start, end] inclusive, newest first, joined with project and task
	// context.
	ListClosedInRange(ctx context.Context, userID, workspaceID string, start, end time.Time) ([]*domain.EntryDetail, error)

	// ListByUser returns the user's entries in the workspace, newest first,
	// capped at limit when limit > 0.
	ListByUser(ctx context.Context, userID, workspaceID string, limit int) ([]*domain.EntryDetail, error)

	Update(ctx context.Context, userID string, e *domain.TimeEntry) error
	Delete(ctx context.Context, userID, id string) error

	// AttachTags links the entry to the given tags.
	AttachTags(ctx context.Context, entryID string, tagIDs []string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListByWorkspace(ctx context.Context, workspaceID string, includeArchived bool) ([]*domain.Project, error)
	Archive(ctx context.Context, workspaceID, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
}

type TagRepo interface {
	Create(ctx context.Context, t *domain.Tag) error
	GetByID(ctx context.Context, id string) (*domain.Tag, error)
	ListByWorkspace(ctx context.Context, workspaceID string, includeArchived bool) ([]*domain.Tag, error)
	// ListByEntry returns the tags linked to a time entry.
	ListByEntry(ctx context.Context, entryID string) ([]*domain.Tag, error)
}
