package domain

import "time"

type Tag struct {
	ID          string
	WorkspaceID string
	Name        string
	Archived    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
