package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielgrim/tempora/internal/db"
	"github.com/danielgrim/tempora/internal/domain"
)

// SQLiteTagRepo implements TagRepo against SQLite.
type SQLiteTagRepo struct {
	conn db.DBTX
}

// NewSQLiteTagRepo creates a new SQLiteTagRepo.
func NewSQLiteTagRepo(conn db.DBTX) *SQLiteTagRepo {
	return &SQLiteTagRepo{conn: conn}
}

func (r *SQLiteTagRepo) Create(ctx context.Context, t *domain.Tag) error {
	query := `INSERT INTO tags (id, workspace_id, name, archived, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		t.ID,
		t.WorkspaceID,
		t.Name,
		boolToInt(t.Archived),
		t.CreatedAt.UTC().Format(time.RFC3339),
		t.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting tag: %w", err)
	}
	return nil
}

func (r *SQLiteTagRepo) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	row := r.conn.QueryRowContext(ctx,
		`SELECT id, workspace_id, name, archived, created_at, updated_at FROM tags WHERE id = ?`, id)
	return scanTag(row.Scan)
}

func (r *SQLiteTagRepo) ListByWorkspace(ctx context.Context, workspaceID string, includeArchived bool) ([]*domain.Tag, error) {
	query := `SELECT id, workspace_id, name, archived, created_at, updated_at
		FROM tags WHERE workspace_id = ?`
	if !includeArchived {
		query += ` AND archived = 0`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.conn.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer rows.Close()
	return scanTags(rows)
}

func (r *SQLiteTagRepo) ListByEntry(ctx context.Context, entryID string) ([]*domain.Tag, error) {
	query := `SELECT t.id, t.workspace_id, t.name, t.archived, t.created_at, t.updated_at
		FROM tags t
		JOIN time_entry_tags et ON et.tag_id = t.id
		WHERE et.time_entry_id = ?
		ORDER BY t.name ASC`
	rows, err := r.conn.QueryContext(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("listing entry tags: %w", err)
	}
	defer rows.Close()
	return scanTags(rows)
}

func scanTag(scan func(dest ...any) error) (*domain.Tag, error) {
	var t domain.Tag
	var archived int
	var createdStr, updatedStr string

	err := scan(&t.ID, &t.WorkspaceID, &t.Name, &archived, &createdStr, &updatedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("tag: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning tag: %w", err)
	}

	t.Archived = intToBool(archived)
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}

func scanTags(rows *sql.Rows) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	for rows.Next() {
		t, err := scanTag(rows.Scan)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}
	return tags, nil
}
