package user

import (
	"context"
	"sync"

	"ews-reports/internal/database"
)

type memoryRepository struct {
	mu    sync.RWMutex
	users []User
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Email == user.Email {
			return database.ErrDuplicateEmail
		}
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *memoryRepository) Get(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *memoryRepository) List(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]User, len(r.users))
	copy(all, r.users)
	return all, nil
}

func (r *memoryRepository) Update(ctx context.Context, id string, upd *Update) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			upd.apply(&r.users[i])
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *memoryRepository) Delete(ctx context.Context, id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			r.users = append(r.users[:i], r.users[i+1:]...)
			return &u, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *memoryRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}
