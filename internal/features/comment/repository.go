package comment

import (
	"context"
	"fmt"

	"ews-reports/internal/database"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	// ListByReport returns the report's comments oldest first.
	ListByReport(ctx context.Context, reportID string) ([]Comment, error)
	ListAll(ctx context.Context) ([]Comment, error)
	EnsureIndexes(ctx context.Context) error
}

func NewCommentRepository(db *database.Database) (CommentRepository, error) {
	switch db.Backend {
	case database.BackendMemory:
		return newMemoryRepository(), nil
	case database.BackendMongo:
		return newMongoRepository(db), nil
	case database.BackendPostgres:
		return newPostgresRepository(db), nil
	default:
		return nil, fmt.Errorf("comment repository: unsupported backend %q", db.Backend)
	}
}
