package comment

import (
	"context"
	"database/sql"

	"ews-reports/internal/database"
)

type postgresRepository struct {
	db *sql.DB
}

func newPostgresRepository(db *database.Database) *postgresRepository {
	return &postgresRepository{db: db.SQL}
}

const commentColumns = `id, report_id, text, author, author_email, created_at`

func (r *postgresRepository) Create(ctx context.Context, comment *Comment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO comments (`+commentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		comment.ID, comment.ReportID, comment.Text,
		comment.Author, comment.AuthorEmail, comment.CreatedAt,
	)
	return err
}

func (r *postgresRepository) ListByReport(ctx context.Context, reportID string) ([]Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+commentColumns+` FROM comments
		WHERE report_id = $1 ORDER BY created_at ASC`, reportID)
	if err != nil {
		return nil, err
	}
	return collectComments(rows)
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]Comment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+commentColumns+` FROM comments`)
	if err != nil {
		return nil, err
	}
	return collectComments(rows)
}

func (r *postgresRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}

func collectComments(rows *sql.Rows) ([]Comment, error) {
	defer rows.Close()
	comments := []Comment{}
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.ReportID, &c.Text, &c.Author, &c.AuthorEmail, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
