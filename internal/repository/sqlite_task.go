package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/danielgrim/tempora/internal/db"
	"github.com/danielgrim/tempora/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo against SQLite.
type SQLiteTaskRepo struct {
	conn db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{conn: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	if t.Status == "" {
		t.Status = domain.TaskActive
	}
	query := `INSERT INTO tasks (id, project_id, name, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		t.Name,
		string(t.Status),
		t.CreatedAt.UTC().Format(time.RFC3339),
		t.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	query := `SELECT id, project_id, name, status, created_at, updated_at
		FROM tasks WHERE project_id = ? ORDER BY name ASC`
	rows, err := r.conn.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var status, createdStr, updatedStr string
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Name, &status, &createdStr, &updatedStr); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		t.Status = domain.TaskStatus(status)
		if t.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}
