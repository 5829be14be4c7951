package database

import (
	"context"
	"database/sql"
)

// The six tables mirror the entity set one to one. kpis, content and data
// are JSONB so the open-ended parts of the model stay schemaless, and each
// commonly filtered column gets its own secondary index.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS reports (
		id              TEXT PRIMARY KEY,
		week            TEXT NOT NULL,
		department      TEXT NOT NULL,
		status          TEXT NOT NULL DEFAULT 'green',
		kpis            JSONB NOT NULL DEFAULT '{}',
		achievements    TEXT NOT NULL DEFAULT '',
		challenges      TEXT NOT NULL DEFAULT '',
		next_week_plans TEXT NOT NULL DEFAULT '',
		notes           TEXT NOT NULL DEFAULT '',
		created_by      TEXT NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_department ON reports (department)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_week ON reports (week)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_status ON reports (status)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports (created_at)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'todo',
		priority     TEXT NOT NULL DEFAULT 'medium',
		assignee     TEXT NOT NULL DEFAULT '',
		department   TEXT NOT NULL DEFAULT '',
		due_date     TIMESTAMPTZ,
		completed_at TIMESTAMPTZ,
		report_id    TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks (status)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks (assignee)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks (due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_report_id ON tasks (report_id)`,

	`CREATE TABLE IF NOT EXISTS comments (
		id           TEXT PRIMARY KEY,
		report_id    TEXT NOT NULL,
		text         TEXT NOT NULL,
		author       TEXT NOT NULL DEFAULT '',
		author_email TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_report_id ON comments (report_id)`,

	`CREATE TABLE IF NOT EXISTS templates (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		department  TEXT NOT NULL DEFAULT '',
		content     JSONB NOT NULL DEFAULT '{}',
		is_default  BOOLEAN NOT NULL DEFAULT FALSE,
		created_by  TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS archive (
		id          TEXT PRIMARY KEY,
		original_id TEXT NOT NULL,
		week        TEXT NOT NULL,
		department  TEXT NOT NULL,
		data        JSONB NOT NULL,
		archived_at TIMESTAMPTZ NOT NULL,
		archived_by TEXT NOT NULL DEFAULT 'system'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_archive_archived_at ON archive (archived_at)`,

	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		email      TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL DEFAULT '',
		department TEXT NOT NULL DEFAULT '',
		role       TEXT NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL,
		last_login TIMESTAMPTZ
	)`,
}

func bootstrapSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
