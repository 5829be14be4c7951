package report

import (
	"context"
	"sort"
	"sync"
	"time"

	"ews-reports/internal/database"
)

// memoryRepository keeps reports in a process-lifetime slice. Fiber runs
// handlers concurrently, so access is guarded by an RWMutex.
type memoryRepository struct {
	mu      sync.RWMutex
	reports []Report
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(ctx context.Context, report *Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, *report)
	return nil
}

func (r *memoryRepository) Get(ctx context.Context, id string) (*Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.reports {
		if r.reports[i].ID == id {
			rep := r.reports[i]
			return &rep, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *memoryRepository) List(ctx context.Context, filter Filter) ([]Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Report, 0, len(r.reports))
	for _, rep := range r.reports {
		if matches(rep, filter) {
			matched = append(matched, rep)
		}
	}

	// Newest first.
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *memoryRepository) Update(ctx context.Context, id string, upd *Update) (*Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reports {
		if r.reports[i].ID == id {
			upd.apply(&r.reports[i])
			r.reports[i].UpdatedAt = time.Now()
			rep := r.reports[i]
			return &rep, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *memoryRepository) Delete(ctx context.Context, id string) (*Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reports {
		if r.reports[i].ID == id {
			rep := r.reports[i]
			r.reports = append(r.reports[:i], r.reports[i+1:]...)
			return &rep, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *memoryRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}

func matches(rep Report, filter Filter) bool {
	if filter.Department != "" && rep.Department != filter.Department {
		return false
	}
	if filter.Week != "" && rep.Week != filter.Week {
		return false
	}
	if filter.Status != "" && string(rep.Status) != filter.Status {
		return false
	}
	if filter.CreatedBefore != nil && !rep.CreatedAt.Before(*filter.CreatedBefore) {
		return false
	}
	return true
}
