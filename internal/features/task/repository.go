package task

import (
	"context"
	"fmt"

	"ews-reports/internal/database"
)

type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	Get(ctx context.Context, id string) (*Task, error)
	List(ctx context.Context, filter Filter) ([]Task, error)
	Update(ctx context.Context, id string, upd *Update) (*Task, error)
	Delete(ctx context.Context, id string) (*Task, error)
	EnsureIndexes(ctx context.Context) error
}

func NewTaskRepository(db *database.Database) (TaskRepository, error) {
	switch db.Backend {
	case database.BackendMemory:
		return newMemoryRepository(), nil
	case database.BackendMongo:
		return newMongoRepository(db), nil
	case database.BackendPostgres:
		return newPostgresRepository(db), nil
	default:
		return nil, fmt.Errorf("task repository: unsupported backend %q", db.Backend)
	}
}
