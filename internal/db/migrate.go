package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations is the ordered list of schema statements. Every statement must be
// safe to re-run: CREATE ... IF NOT EXISTS, or an ALTER TABLE whose duplicate
// failure is tolerated by Migrate.
//
// Workspaces, users and clients are owned by the surrounding application;
// their ids are stored as opaque text with no foreign key.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id           TEXT PRIMARY KEY,
		workspace_id TEXT NOT NULL,
		client_id    TEXT,
		name         TEXT NOT NULL,
		color        TEXT NOT NULL DEFAULT '#4CAF50',
		billable     INTEGER NOT NULL DEFAULT 1,
		archived     INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_workspace ON projects(workspace_id)`,

	`CREATE TABLE IF NOT EXISTS tags (
		id           TEXT PRIMARY KEY,
		workspace_id TEXT NOT NULL,
		name         TEXT NOT NULL,
		archived     INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tags_workspace ON tags(workspace_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'active',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,

	`CREATE TABLE IF NOT EXISTS time_entries (
		id           TEXT PRIMARY KEY,
		workspace_id TEXT NOT NULL,
		user_id      TEXT NOT NULL,
		project_id   TEXT REFERENCES projects(id) ON DELETE SET NULL,
		task_id      TEXT REFERENCES tasks(id) ON DELETE SET NULL,
		description  TEXT NOT NULL DEFAULT '',
		start_time   TEXT NOT NULL,
		end_time     TEXT,
		billable     INTEGER NOT NULL DEFAULT 1,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_entries_user_workspace
		ON time_entries(user_id, workspace_id)`,

	`CREATE INDEX IF NOT EXISTS idx_time_entries_start
		ON time_entries(workspace_id, start_time)`,

	// One running timer per (user, workspace). The timer guard's pre-check is
	// a fast-fail; this partial index is the source of truth under concurrent
	// starts.
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_time_entries_running
		ON time_entries(user_id, workspace_id) WHERE end_time IS NULL`,

	`CREATE TABLE IF NOT EXISTS time_entry_tags (
		time_entry_id TEXT NOT NULL REFERENCES time_entries(id) ON DELETE CASCADE,
		tag_id        TEXT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
		PRIMARY KEY (time_entry_id, tag_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_entry_tags_tag ON time_entry_tags(tag_id)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
