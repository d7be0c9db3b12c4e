package domain

import "time"

// DefaultProjectColor is the display color assigned when a project is created
// without one, and the fallback used by reports when a project join fails to
// resolve.
const DefaultProjectColor = "#4CAF50"

// UnknownProjectName is the defensive default used by reports when an entry
// references a project that cannot be resolved.
const UnknownProjectName = "Unknown"

type Project struct {
	ID          string
	WorkspaceID string
	ClientID    *string
	Name        string
	Color       string
	Billable    bool
	Archived    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
