package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielgrim/tempora/internal/db"
	"github.com/danielgrim/tempora/internal/domain"
)

const entryColumns = `id, workspace_id, user_id, project_id, task_id, description,
	start_time, end_time, billable, created_at, updated_at`

// SQLiteEntryRepo implements EntryRepo against SQLite.
type SQLiteEntryRepo struct {
	conn db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo. Accepting DBTX lets the
// ingest service run the same repository inside a transaction.
func NewSQLiteEntryRepo(conn db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{conn: conn}
}

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.TimeEntry) error {
	query := `INSERT INTO time_entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		e.ID,
		e.WorkspaceID,
		e.UserID,
		nullableStr(e.ProjectID),
		nullableStr(e.TaskID),
		e.Description,
		e.StartTime.UTC().Format(time.RFC3339),
		nullableTimeToString(e.EndTime, time.RFC3339),
		boolToInt(e.Billable),
		e.CreatedAt.UTC().Format(time.RFC3339),
		e.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isRunningTimerConflict(err) {
			return fmt.Errorf("inserting time entry: %w", domain.ErrTimerConflict)
		}
		return fmt.Errorf("inserting time entry: %w", err)
	}
	return nil
}

func (r *SQLiteEntryRepo) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)
	return r.scanEntry(row)
}

func (r *SQLiteEntryRepo) GetActive(ctx context.Context, userID, workspaceID string) (*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries
		WHERE user_id = ? AND workspace_id = ? AND end_time IS NULL
		ORDER BY start_time DESC
		LIMIT 1`
	row := r.conn.QueryRowContext(ctx, query, userID, workspaceID)
	return r.scanEntry(row)
}

func (r *SQLiteEntryRepo) Stop(ctx context.Context, id string, end time.Time) (*domain.TimeEntry, error) {
	// Conditional update, not read-then-write: a concurrent stop of the same
	// entry matches zero rows on the losing side.
	query := `UPDATE time_entries SET end_time = ?, updated_at = ?
		WHERE id = ? AND end_time IS NULL`
	res, err := r.conn.ExecContext(ctx, query,
		end.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("stopping time entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("stopping time entry: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("time entry missing or already stopped: %w", domain.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

func (r *SQLiteEntryRepo) ListClosedInRange(ctx context.Context, userID, workspaceID string, start, end time.Time) ([]*domain.EntryDetail, error) {
	query := `SELECT te.id, te.workspace_id, te.user_id, te.project_id, te.task_id,
			te.description, te.start_time, te.end_time, te.billable,
			te.created_at, te.updated_at,
			p.name, p.color, t.name
		FROM time_entries te
		LEFT JOIN projects p ON te.project_id = p.id
		LEFT JOIN tasks t ON te.task_id = t.id
		WHERE te.user_id = ?
		  AND te.workspace_id = ?
		  AND te.start_time >= ?
		  AND te.start_time <= ?
		  AND te.end_time IS NOT NULL
		ORDER BY te.start_time DESC`
	rows, err := r.conn.QueryContext(ctx, query,
		userID, workspaceID,
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("listing entries in range: %w", err)
	}
	defer rows.Close()
	return r.scanDetails(rows)
}

func (r *SQLiteEntryRepo) ListByUser(ctx context.Context, userID, workspaceID string, limit int) ([]*domain.EntryDetail, error) {
	query := `SELECT te.id, te.workspace_id, te.user_id, te.project_id, te.task_id,
			te.description, te.start_time, te.end_time, te.billable,
			te.created_at, te.updated_at,
			p.name, p.color, t.name
		FROM time_entries te
		LEFT JOIN projects p ON te.project_id = p.id
		LEFT JOIN tasks t ON te.task_id = t.id
		WHERE te.user_id = ? AND te.workspace_id = ?
		ORDER BY te.start_time DESC`
	args := []any{userID, workspaceID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()
	return r.scanDetails(rows)
}

func (r *SQLiteEntryRepo) Update(ctx context.Context, userID string, e *domain.TimeEntry) error {
	query := `UPDATE time_entries SET
			project_id = ?, task_id = ?, description = ?,
			start_time = ?, end_time = ?, billable = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`
	res, err := r.conn.ExecContext(ctx, query,
		nullableStr(e.ProjectID),
		nullableStr(e.TaskID),
		e.Description,
		e.StartTime.UTC().Format(time.RFC3339),
		nullableTimeToString(e.EndTime, time.RFC3339),
		boolToInt(e.Billable),
		e.UpdatedAt.UTC().Format(time.RFC3339),
		e.ID,
		userID,
	)
	if err != nil {
		if isRunningTimerConflict(err) {
			return fmt.Errorf("updating time entry: %w", domain.ErrTimerConflict)
		}
		return fmt.Errorf("updating time entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating time entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("time entry: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *SQLiteEntryRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.conn.ExecContext(ctx,
		`DELETE FROM time_entries WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting time entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting time entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("time entry: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *SQLiteEntryRepo) AttachTags(ctx context.Context, entryID string, tagIDs []string) error {
	for _, tagID := range tagIDs {
		_, err := r.conn.ExecContext(ctx,
			`INSERT INTO time_entry_tags (time_entry_id, tag_id) VALUES (?, ?)`,
			entryID, tagID)
		if err != nil {
			return fmt.Errorf("linking tag %s: %w", tagID, err)
		}
	}
	return nil
}

// scanEntry scans a single entry from a *sql.Row.
func (r *SQLiteEntryRepo) scanEntry(row *sql.Row) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	var projectID, taskID, endStr sql.NullString
	var startStr, createdStr, updatedStr string
	var billable int

	err := row.Scan(
		&e.ID, &e.WorkspaceID, &e.UserID, &projectID, &taskID, &e.Description,
		&startStr, &endStr, &billable, &createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("time entry: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning time entry: %w", err)
	}

	e.ProjectID = strFromNull(projectID)
	e.TaskID = strFromNull(taskID)
	e.Billable = intToBool(billable)
	e.EndTime = parseNullableTime(endStr, time.RFC3339)
	if err := parseEntryTimes(&e, startStr, createdStr, updatedStr); err != nil {
		return nil, err
	}
	return &e, nil
}

// scanDetails scans joined entry rows into EntryDetail views.
func (r *SQLiteEntryRepo) scanDetails(rows *sql.Rows) ([]*domain.EntryDetail, error) {
	var details []*domain.EntryDetail
	for rows.Next() {
		var d domain.EntryDetail
		var projectID, taskID, endStr sql.NullString
		var projectName, projectColor, taskName sql.NullString
		var startStr, createdStr, updatedStr string
		var billable int

		err := rows.Scan(
			&d.ID, &d.WorkspaceID, &d.UserID, &projectID, &taskID, &d.Description,
			&startStr, &endStr, &billable, &createdStr, &updatedStr,
			&projectName, &projectColor, &taskName,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning entry row: %w", err)
		}

		d.ProjectID = strFromNull(projectID)
		d.TaskID = strFromNull(taskID)
		d.Billable = intToBool(billable)
		d.EndTime = parseNullableTime(endStr, time.RFC3339)
		d.ProjectName = projectName.String
		d.ProjectColor = projectColor.String
		d.TaskName = taskName.String
		if err := parseEntryTimes(&d.TimeEntry, startStr, createdStr, updatedStr); err != nil {
			return nil, err
		}

		details = append(details, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return details, nil
}

// parseEntryTimes fills in parsed timestamp fields after scanning raw strings.
func parseEntryTimes(e *domain.TimeEntry, startStr, createdStr, updatedStr string) error {
	var err error
	e.StartTime, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		return fmt.Errorf("parsing start_time: %w", err)
	}
	e.CreatedAt, err = time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	e.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr)
	if err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}
