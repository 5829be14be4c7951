package report

import (
	"context"
	"database/sql"
	"encoding/json"
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

const reportColumns = `id, week, department, status, kpis, achievements,
	challenges, next_week_plans, notes, created_by, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, report *Report) error {
	kpis, err := json.Marshal(report.KPIs)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO reports (`+reportColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		report.ID, report.Week, report.Department, report.Status, kpis,
		report.Achievements, report.Challenges, report.NextWeekPlans,
		report.Notes, report.CreatedBy, report.CreatedAt, report.UpdatedAt,
	)
	return err
}

func (r *postgresRepository) Get(ctx context.Context, id string) (*Report, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE id = $1`, id)
	return scanReport(row)
}

func (r *postgresRepository) List(ctx context.Context, filter Filter) ([]Report, error) {
	var (
		conditions []string
		args       []any
	)
	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.Department != "" {
		addCondition("department = $%d", filter.Department)
	}
	if filter.Week != "" {
		addCondition("week = $%d", filter.Week)
	}
	if filter.Status != "" {
		addCondition("status = $%d", filter.Status)
	}
	if filter.CreatedBefore != nil {
		addCondition("created_at < $%d", *filter.CreatedBefore)
	}

	query := `SELECT ` + reportColumns + ` FROM reports`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []Report{}
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, id string, upd *Update) (*Report, error) {
	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Week != nil {
		set("week", *upd.Week)
	}
	if upd.Department != nil {
		set("department", *upd.Department)
	}
	if upd.Status != nil {
		set("status", *upd.Status)
	}
	if upd.KPIs != nil {
		kpis, err := json.Marshal(*upd.KPIs)
		if err != nil {
			return nil, err
		}
		set("kpis", kpis)
	}
	if upd.Achievements != nil {
		set("achievements", *upd.Achievements)
	}
	if upd.Challenges != nil {
		set("challenges", *upd.Challenges)
	}
	if upd.NextWeekPlans != nil {
		set("next_week_plans", *upd.NextWeekPlans)
	}
	if upd.Notes != nil {
		set("notes", *upd.Notes)
	}
	if upd.CreatedBy != nil {
		set("created_by", *upd.CreatedBy)
	}
	set("updated_at", time.Now())

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE reports SET %s WHERE id = $%d RETURNING `+reportColumns,
		strings.Join(sets, ", "), len(args))

	return scanReport(r.db.QueryRowContext(ctx, query, args...))
}

func (r *postgresRepository) Delete(ctx context.Context, id string) (*Report, error) {
	row := r.db.QueryRowContext(ctx,
		`DELETE FROM reports WHERE id = $1 RETURNING `+reportColumns, id)
	return scanReport(row)
}

// Indexes are created by the schema bootstrap.
func (r *postgresRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*Report, error) {
	var (
		report Report
		kpis   []byte
	)
	err := row.Scan(
		&report.ID, &report.Week, &report.Department, &report.Status, &kpis,
		&report.Achievements, &report.Challenges, &report.NextWeekPlans,
		&report.Notes, &report.CreatedBy, &report.CreatedAt, &report.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(kpis, &report.KPIs); err != nil {
		return nil, err
	}
	return &report, nil
}
