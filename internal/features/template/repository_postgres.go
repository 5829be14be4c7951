package template

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

const templateColumns = `id, name, description, department, content,
	is_default, created_by, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, template *Template) error {
	content, err := json.Marshal(template.Content)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO templates (`+templateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		template.ID, template.Name, template.Description, template.Department,
		content, template.IsDefault, template.CreatedBy,
		template.CreatedAt, template.UpdatedAt,
	)
	return err
}

func (r *postgresRepository) List(ctx context.Context) ([]Template, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+templateColumns+` FROM templates`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []Template{}
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, *template)
	}
	return templates, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, id string, upd *Update) (*Template, error) {
	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		set("name", *upd.Name)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.Department != nil {
		set("department", *upd.Department)
	}
	if upd.Content != nil {
		content, err := json.Marshal(*upd.Content)
		if err != nil {
			return nil, err
		}
		set("content", content)
	}
	if upd.IsDefault != nil {
		set("is_default", *upd.IsDefault)
	}
	set("updated_at", time.Now())

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE templates SET %s WHERE id = $%d RETURNING `+templateColumns,
		strings.Join(sets, ", "), len(args))

	return scanTemplate(r.db.QueryRowContext(ctx, query, args...))
}

func (r *postgresRepository) Delete(ctx context.Context, id string) (*Template, error) {
	row := r.db.QueryRowContext(ctx,
		`DELETE FROM templates WHERE id = $1 RETURNING `+templateColumns, id)
	return scanTemplate(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (*Template, error) {
	var (
		template Template
		content  []byte
	)
	err := row.Scan(
		&template.ID, &template.Name, &template.Description, &template.Department,
		&content, &template.IsDefault, &template.CreatedBy,
		&template.CreatedAt, &template.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(content, &template.Content); err != nil {
		return nil, err
	}
	return &template, nil
}
