package domain

import (
	"fmt"
	"time"
)

// TimeEntry is the central fact record: one tracked span of work, owned by a
// user inside a workspace. A nil EndTime means the timer is still running.
type TimeEntry struct {
	ID          string
	WorkspaceID string
	UserID      string
	ProjectID   *string
	TaskID      *string
	Description string
	StartTime   time.Time
	EndTime     *time.Time
	Billable    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Running reports whether the entry is an open timer (no end time yet).
func (e *TimeEntry) Running() bool {
	return e.EndTime == nil
}

// DurationSeconds returns the entry duration in whole seconds, computed as the
// floor of the millisecond difference. A running entry has duration 0.
func (e *TimeEntry) DurationSeconds() int {
	if e.EndTime == nil {
		return 0
	}
	return int(e.EndTime.Sub(e.StartTime).Milliseconds() / 1000)
}

// Validate checks the ordering invariant: when both timestamps are present,
// the end must be strictly after the start.
func (e *TimeEntry) Validate() error {
	if e.WorkspaceID == "" {
		return fmt.Errorf("%w: workspace id is required", ErrValidation)
	}
	if e.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if e.StartTime.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrValidation)
	}
	if e.EndTime != nil && !e.EndTime.After(e.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}
	return nil
}

// EntryDetail is a joined view of a time entry with its resolved project and
// task context, as fetched for reports and exports.
type EntryDetail struct {
	TimeEntry
	ProjectName  string
	ProjectColor string
	TaskName     string
}
