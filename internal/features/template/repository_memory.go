package template

import (
	"context"
	"sync"
	"time"

	"ews-reports/internal/database"
)

type memoryRepository struct {
	mu        sync.RWMutex
	templates []Template
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(ctx context.Context, template *Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates = append(r.templates, *template)
	return nil
}

func (r *memoryRepository) List(ctx context.Context) ([]Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Template, len(r.templates))
	copy(all, r.templates)
	return all, nil
}

func (r *memoryRepository) Update(ctx context.Context, id string, upd *Update) (*Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.templates {
		if r.templates[i].ID == id {
			upd.apply(&r.templates[i])
			r.templates[i].UpdatedAt = time.Now()
			t := r.templates[i]
			return &t, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *memoryRepository) Delete(ctx context.Context, id string) (*Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.templates {
		if r.templates[i].ID == id {
			t := r.templates[i]
			r.templates = append(r.templates[:i], r.templates[i+1:]...)
			return &t, nil
		}
	}
	return nil, database.ErrNotFound
}
