package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielgrim/tempora/internal/db"
	"github.com/danielgrim/tempora/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo against SQLite.
type SQLiteProjectRepo struct {
	conn db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{conn: conn}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	if p.Color == "" {
		p.Color = domain.DefaultProjectColor
	}
	query := `INSERT INTO projects (id, workspace_id, client_id, name, color, billable, archived, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		p.ID,
		p.WorkspaceID,
		nullableStr(p.ClientID),
		p.Name,
		p.Color,
		boolToInt(p.Billable),
		boolToInt(p.Archived),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT id, workspace_id, client_id, name, color, billable, archived, created_at, updated_at
		FROM projects WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)

	var p domain.Project
	var clientID sql.NullString
	var billable, archived int
	var createdStr, updatedStr string

	err := row.Scan(&p.ID, &p.WorkspaceID, &clientID, &p.Name, &p.Color,
		&billable, &archived, &createdStr, &updatedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.ClientID = strFromNull(clientID)
	p.Billable = intToBool(billable)
	p.Archived = intToBool(archived)
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProjectRepo) ListByWorkspace(ctx context.Context, workspaceID string, includeArchived bool) ([]*domain.Project, error) {
	query := `SELECT id, workspace_id, client_id, name, color, billable, archived, created_at, updated_at
		FROM projects WHERE workspace_id = ?`
	if !includeArchived {
		query += ` AND archived = 0`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.conn.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		var p domain.Project
		var clientID sql.NullString
		var billable, archived int
		var createdStr, updatedStr string

		if err := rows.Scan(&p.ID, &p.WorkspaceID, &clientID, &p.Name, &p.Color,
			&billable, &archived, &createdStr, &updatedStr); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		p.ClientID = strFromNull(clientID)
		p.Billable = intToBool(billable)
		p.Archived = intToBool(archived)
		if p.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		projects = append(projects, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Archive(ctx context.Context, workspaceID, id string) error {
	res, err := r.conn.ExecContext(ctx,
		`UPDATE projects SET archived = 1, updated_at = ? WHERE id = ? AND workspace_id = ?`,
		time.Now().UTC().Format(time.RFC3339), id, workspaceID)
	if err != nil {
		return fmt.Errorf("archiving project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("archiving project: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("project: %w", domain.ErrNotFound)
	}
	return nil
}
