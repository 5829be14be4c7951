package user

import (
	"context"
	"fmt"

	"ews-reports/internal/database"
)

type UserRepository interface {
	// Create fails with database.ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, user *User) error
	Get(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id string, upd *Update) (*User, error)
	Delete(ctx context.Context, id string) (*User, error)
	EnsureIndexes(ctx context.Context) error
}

func NewUserRepository(db *database.Database) (UserRepository, error) {
	switch db.Backend {
	case database.BackendMemory:
		return newMemoryRepository(), nil
	case database.BackendMongo:
		return newMongoRepository(db), nil
	case database.BackendPostgres:
		return newPostgresRepository(db), nil
	default:
		return nil, fmt.Errorf("user repository: unsupported backend %q", db.Backend)
	}
}
