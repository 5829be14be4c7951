package user

import (
	"context"
	"errors"
	"testing"

	"ews-reports/internal/database"
)

func TestMemoryRepositoryEmailUniqueness(t *testing.T) {
	repo := newMemoryRepository()
	ctx := context.Background()

	first := &User{ID: "u1", Email: "anna@example.com", Name: "Anna"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	dup := &User{ID: "u2", Email: "anna@example.com", Name: "Other Anna"}
	if err := repo.Create(ctx, dup); !errors.Is(err, database.ErrDuplicateEmail) {
		t.Errorf("Create() duplicate error = %v, want ErrDuplicateEmail", err)
	}

	// The email frees up once its owner is deleted.
	if _, err := repo.Delete(ctx, "u1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Create(ctx, dup); err != nil {
		t.Errorf("Create() after delete error = %v", err)
	}
}

func TestMemoryRepositoryUpdate(t *testing.T) {
	repo := newMemoryRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, &User{ID: "u1", Email: "anna@example.com", Name: "Anna", Role: RoleUser}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	name := "Anna M."
	role := RoleAdmin
	got, err := repo.Update(ctx, "u1", &Update{Name: &name, Role: &role})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Name != "Anna M." || got.Role != RoleAdmin {
		t.Errorf("Update() = %+v", got)
	}
	if got.Email != "anna@example.com" {
		t.Errorf("Email changed to %s", got.Email)
	}

	if _, err := repo.Update(ctx, "missing", &Update{Name: &name}); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Update() missing error = %v, want ErrNotFound", err)
	}
}
