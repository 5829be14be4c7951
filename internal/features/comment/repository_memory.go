package comment

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	comments []Comment
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(ctx context.Context, comment *Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments = append(r.comments, *comment)
	return nil
}

// Append-only storage, so insertion order is already ascending creation time.
func (r *memoryRepository) ListByReport(ctx context.Context, reportID string) ([]Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := []Comment{}
	for _, c := range r.comments {
		if c.ReportID == reportID {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (r *memoryRepository) ListAll(ctx context.Context) ([]Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Comment, len(r.comments))
	copy(all, r.comments)
	return all, nil
}

func (r *memoryRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}
