package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"ews-reports/internal/database"
)

func seedRepository(t *testing.T, reports []Report) *memoryRepository {
	t.Helper()
	repo := newMemoryRepository()
	for i := range reports {
		if err := repo.Create(context.Background(), &reports[i]); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	return repo
}

func TestMemoryRepositoryListFilters(t *testing.T) {
	base := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	seed := []Report{
		{ID: "r1", Week: "2026-W32", Department: "Vertrieb", Status: StatusGreen, CreatedAt: base},
		{ID: "r2", Week: "2026-W32", Department: "Lager", Status: StatusRed, CreatedAt: base.Add(time.Hour)},
		{ID: "r3", Week: "2026-W33", Department: "Vertrieb", Status: StatusYellow, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "r4", Week: "2026-W33", Department: "Kundenservice", Status: StatusGreen, CreatedAt: base.Add(3 * time.Hour)},
	}

	cutoff := base.Add(time.Hour)

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{
			name:    "no filter returns all newest first",
			filter:  Filter{},
			wantIDs: []string{"r4", "r3", "r2", "r1"},
		},
		{
			name:    "by department",
			filter:  Filter{Department: "Vertrieb"},
			wantIDs: []string{"r3", "r1"},
		},
		{
			name:    "by week",
			filter:  Filter{Week: "2026-W33"},
			wantIDs: []string{"r4", "r3"},
		},
		{
			name:    "by status",
			filter:  Filter{Status: "red"},
			wantIDs: []string{"r2"},
		},
		{
			name:    "department and week combined",
			filter:  Filter{Department: "Vertrieb", Week: "2026-W33"},
			wantIDs: []string{"r3"},
		},
		{
			name:    "limit truncates after sorting",
			filter:  Filter{Limit: 2},
			wantIDs: []string{"r4", "r3"},
		},
		{
			name:    "created before is strict",
			filter:  Filter{CreatedBefore: &cutoff},
			wantIDs: []string{"r1"},
		},
		{
			name:    "no match yields empty slice",
			filter:  Filter{Department: "Auftragsabwicklung"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := seedRepository(t, seed)
			got, err := repo.List(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("List() returned %d reports, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("List()[%d].ID = %s, want %s", i, got[i].ID, want)
				}
			}
		})
	}
}

func TestMemoryRepositoryUpdate(t *testing.T) {
	created := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	repo := seedRepository(t, []Report{
		{ID: "r1", Week: "2026-W32", Department: "Vertrieb", Status: StatusGreen, CreatedAt: created, UpdatedAt: created},
	})

	status := StatusRed
	notes := "escalated"
	got, err := repo.Update(context.Background(), "r1", &Update{Status: &status, Notes: &notes})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if got.Status != StatusRed {
		t.Errorf("Status = %s, want red", got.Status)
	}
	if got.Notes != "escalated" {
		t.Errorf("Notes = %q, want %q", got.Notes, "escalated")
	}
	// Untouched fields survive a partial update.
	if got.Week != "2026-W32" || got.Department != "Vertrieb" {
		t.Errorf("partial update clobbered untouched fields: %+v", got)
	}
	if got.ID != "r1" || !got.CreatedAt.Equal(created) {
		t.Errorf("update changed immutable fields: id=%s createdAt=%v", got.ID, got.CreatedAt)
	}
	if !got.UpdatedAt.After(created) {
		t.Errorf("UpdatedAt = %v, want later than %v", got.UpdatedAt, created)
	}
}

func TestMemoryRepositoryNotFound(t *testing.T) {
	repo := newMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
	if _, err := repo.Update(ctx, "missing", &Update{}); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
	if _, err := repo.Delete(ctx, "missing"); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepositoryDelete(t *testing.T) {
	repo := seedRepository(t, []Report{
		{ID: "r1", Week: "2026-W32", Department: "Vertrieb"},
	})
	ctx := context.Background()

	deleted, err := repo.Delete(ctx, "r1")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted.ID != "r1" {
		t.Errorf("Delete() returned %s, want r1", deleted.ID)
	}
	if _, err := repo.Get(ctx, "r1"); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}
