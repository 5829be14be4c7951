package archive

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	records []Record
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(ctx context.Context, record *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *record)
	return nil
}

func (r *memoryRepository) List(ctx context.Context) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Record, len(r.records))
	copy(all, r.records)
	sort.Slice(all, func(i, j int) bool {
		return all[i].ArchivedAt.After(all[j].ArchivedAt)
	})
	return all, nil
}

func (r *memoryRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}
