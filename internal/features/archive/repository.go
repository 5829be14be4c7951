package archive

import (
	"context"
	"fmt"

	"ews-reports/internal/database"
)

type ArchiveRepository interface {
	Create(ctx context.Context, record *Record) error
	// List returns archive records newest first.
	List(ctx context.Context) ([]Record, error)
	EnsureIndexes(ctx context.Context) error
}

func NewArchiveRepository(db *database.Database) (ArchiveRepository, error) {
	switch db.Backend {
	case database.BackendMemory:
		return newMemoryRepository(), nil
	case database.BackendMongo:
		return newMongoRepository(db), nil
	case database.BackendPostgres:
		return newPostgresRepository(db), nil
	default:
		return nil, fmt.Errorf("archive repository: unsupported backend %q", db.Backend)
	}
}
