package template

import (
	"context"
	"fmt"

	"ews-reports/internal/database"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *Template) error
	List(ctx context.Context) ([]Template, error)
	Update(ctx context.Context, id string, upd *Update) (*Template, error)
	Delete(ctx context.Context, id string) (*Template, error)
}

func NewTemplateRepository(db *database.Database) (TemplateRepository, error) {
	switch db.Backend {
	case database.BackendMemory:
		return newMemoryRepository(), nil
	case database.BackendMongo:
		return newMongoRepository(db), nil
	case database.BackendPostgres:
		return newPostgresRepository(db), nil
	default:
		return nil, fmt.Errorf("template repository: unsupported backend %q", db.Backend)
	}
}
