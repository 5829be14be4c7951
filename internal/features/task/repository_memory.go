package task

import (
	"context"
	"sync"
	"time"

	"ews-reports/internal/database"
)

type memoryRepository struct {
	mu    sync.RWMutex
	tasks []Task
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(ctx context.Context, task *Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, *task)
	return nil
}

func (r *memoryRepository) Get(ctx context.Context, id string) (*Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			t := r.tasks[i]
			return &t, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *memoryRepository) List(ctx context.Context, filter Filter) ([]Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []Task{}
	for _, t := range r.tasks {
		if filter.Status != "" && string(t.Status) != filter.Status {
			continue
		}
		if filter.Assignee != "" && t.Assignee != filter.Assignee {
			continue
		}
		if filter.Priority != "" && string(t.Priority) != filter.Priority {
			continue
		}
		matched = append(matched, t)
	}
	return matched, nil
}

func (r *memoryRepository) Update(ctx context.Context, id string, upd *Update) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			upd.apply(&r.tasks[i])
			r.tasks[i].UpdatedAt = time.Now()
			t := r.tasks[i]
			return &t, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *memoryRepository) Delete(ctx context.Context, id string) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			t := r.tasks[i]
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return &t, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *memoryRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}
