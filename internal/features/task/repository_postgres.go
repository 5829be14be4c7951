package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"ews-reports/internal/database"
)

type postgresRepository struct {
	db *sql.DB
}

func newPostgresRepository(db *database.Database) *postgresRepository {
	return &postgresRepository{db: db.SQL}
}

const taskColumns = `id, title, description, status, priority, assignee,
	department, due_date, completed_at, report_id, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, task *Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		task.ID, task.Title, task.Description, task.Status, task.Priority,
		task.Assignee, task.Department, task.DueDate, task.CompletedAt,
		task.ReportID, task.CreatedAt, task.UpdatedAt,
	)
	return err
}

func (r *postgresRepository) Get(ctx context.Context, id string) (*Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	return scanTask(row)
}

func (r *postgresRepository) List(ctx context.Context, filter Filter) ([]Task, error) {
	var (
		conditions []string
		args       []any
	)
	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.Status != "" {
		addCondition("status = $%d", filter.Status)
	}
	if filter.Assignee != "" {
		addCondition("assignee = $%d", filter.Assignee)
	}
	if filter.Priority != "" {
		addCondition("priority = $%d", filter.Priority)
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, id string, upd *Update) (*Task, error) {
	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		set("title", *upd.Title)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.Status != nil {
		set("status", *upd.Status)
	}
	if upd.Priority != nil {
		set("priority", *upd.Priority)
	}
	if upd.Assignee != nil {
		set("assignee", *upd.Assignee)
	}
	if upd.Department != nil {
		set("department", *upd.Department)
	}
	if upd.DueDate != nil {
		set("due_date", *upd.DueDate)
	}
	if upd.ReportID != nil {
		set("report_id", *upd.ReportID)
	}
	if upd.completedAt != nil {
		set("completed_at", *upd.completedAt)
	}
	set("updated_at", time.Now())

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = $%d RETURNING `+taskColumns,
		strings.Join(sets, ", "), len(args))

	return scanTask(r.db.QueryRowContext(ctx, query, args...))
}

func (r *postgresRepository) Delete(ctx context.Context, id string) (*Task, error) {
	row := r.db.QueryRowContext(ctx,
		`DELETE FROM tasks WHERE id = $1 RETURNING `+taskColumns, id)
	return scanTask(row)
}

func (r *postgresRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*Task, error) {
	var (
		task        Task
		dueDate     sql.NullTime
		completedAt sql.NullTime
	)
	err := row.Scan(
		&task.ID, &task.Title, &task.Description, &task.Status, &task.Priority,
		&task.Assignee, &task.Department, &dueDate, &completedAt,
		&task.ReportID, &task.CreatedAt, &task.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if dueDate.Valid {
		task.DueDate = &dueDate.Time
	}
	if completedAt.Valid {
		task.CompletedAt = &completedAt.Time
	}
	return &task, nil
}
