package domain

import "time"

type TaskStatus string

const (
	TaskActive TaskStatus = "active"
	TaskDone   TaskStatus = "done"
)

// Task is a sub-division of a project. The store guarantees its project
// association; entries referencing a task must reference its project.
type Task struct {
	ID        string
	ProjectID string
	Name      string
	Status    TaskStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
