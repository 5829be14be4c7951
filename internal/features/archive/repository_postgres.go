package archive

import (
	"context"
	"database/sql"
	"encoding/json"

	"ews-reports/internal/database"
)

type postgresRepository struct {
	db *sql.DB
}

func newPostgresRepository(db *database.Database) *postgresRepository {
	return &postgresRepository{db: db.SQL}
}

const archiveColumns = `id, original_id, week, department, data, archived_at, archived_by`

func (r *postgresRepository) Create(ctx context.Context, record *Record) error {
	data, err := json.Marshal(record.Data)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO archive (`+archiveColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		record.ID, record.OriginalID, record.Week, record.Department,
		data, record.ArchivedAt, record.ArchivedBy,
	)
	return err
}

func (r *postgresRepository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+archiveColumns+` FROM archive ORDER BY archived_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var (
			record Record
			data   []byte
		)
		err := rows.Scan(
			&record.ID, &record.OriginalID, &record.Week, &record.Department,
			&data, &record.ArchivedAt, &record.ArchivedBy,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &record.Data); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *postgresRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}
