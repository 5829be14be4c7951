package report

import (
	"context"
	"fmt"

	"ews-reports/internal/database"
)

type ReportRepository interface {
	Create(ctx context.Context, report *Report) error
	Get(ctx context.Context, id string) (*Report, error)
	List(ctx context.Context, filter Filter) ([]Report, error)
	Update(ctx context.Context, id string, upd *Update) (*Report, error)
	Delete(ctx context.Context, id string) (*Report, error)
	EnsureIndexes(ctx context.Context) error
}

func NewReportRepository(db *database.Database) (ReportRepository, error) {
	switch db.Backend {
	case database.BackendMemory:
		return newMemoryRepository(), nil
	case database.BackendMongo:
		return newMongoRepository(db), nil
	case database.BackendPostgres:
		return newPostgresRepository(db), nil
	default:
		return nil, fmt.Errorf("report repository: unsupported backend %q", db.Backend)
	}
}
