package service

import (
	"context"
	"time"

	"github.com/danielgrim/tempora/internal/domain"
	"github.com/danielgrim/tempora/internal/ingest"
)

// StartAttrs are the optional attributes of a new timer. A nil Billable
// defaults to true.
type StartAttrs struct {
	ProjectID   *string
	TaskID      *string
	Description string
	Billable    *bool
}

// TimerService guards the single-running-timer invariant: at most one open
// entry per (user, workspace) at any moment.
type TimerService interface {
	// Start opens a timer at the current clock time. Returns ErrTimerConflict
	// when the user already has a running entry in the workspace.
	Start(ctx context.Context, userID, workspaceID string, attrs StartAttrs) (*domain.TimeEntry, error)

	// Stop closes the entry in one conditional update. Returns ErrNotFound
	// when the entry does not exist or was already stopped.
	Stop(ctx context.Context, entryID string) (*domain.TimeEntry, error)

	// Active returns the running entry, or ErrNotFound when no timer is open.
	Active(ctx context.Context, userID, workspaceID string) (*domain.TimeEntry, error)
}

// ManualEntry describes a historical entry logged after the fact. Start and
// end are both required and the entry must be well ordered.
type ManualEntry struct {
	ProjectID   *string
	TaskID      *string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Billable    *bool
	TagIDs      []string
}

// EntryChanges carries the mutable fields of an entry update. Nil pointers
// leave the stored value untouched; an empty ProjectID or TaskID clears the
// association. Setting EndTime on an open entry closes it.
type EntryChanges struct {
	ProjectID   *string
	TaskID      *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Billable    *bool
}

// EntryService manages the lifecycle of entries outside the running timer.
type EntryService interface {
	CreateManual(ctx context.Context, userID, workspaceID string, entry ManualEntry) (*domain.TimeEntry, error)
	Update(ctx context.Context, userID, entryID string, changes EntryChanges) (*domain.TimeEntry, error)
	Delete(ctx context.Context, userID, entryID string) error

	// List returns the user's entries, newest first, capped at limit
	// (default 100 when limit <= 0).
	List(ctx context.Context, userID, workspaceID string, limit int) ([]*domain.EntryDetail, error)
}

// Report pairs the fetched entries with their aggregate summary.
type Report struct {
	Entries []*domain.EntryDetail
	Summary domain.ReportSummary
}

// ReportService aggregates closed entries over an inclusive time range.
type ReportService interface {
	Generate(ctx context.Context, userID, workspaceID string, start, end time.Time) (*Report, error)
	ExportCSV(ctx context.Context, userID, workspaceID string, start, end time.Time) (string, error)
}

// IngestResult reports what a successful batch insert produced.
type IngestResult struct {
	Inserted int
	EntryIDs []string
}

// IngestService loads validated batches of external entries atomically.
type IngestService interface {
	// IngestBatch validates the whole batch, then inserts every entry and
	// its tag links in a single transaction. Any validation or insert
	// failure leaves the store untouched.
	IngestBatch(ctx context.Context, batch ingest.Batch) (*IngestResult, error)
}
