package archive

import (
	"context"
	"errors"
	"testing"
	"time"

	"ews-reports/internal/database"
	"ews-reports/internal/features/report"

	"go.uber.org/zap"
)

func newTestService(t *testing.T) (ArchiveService, report.ReportRepository, ArchiveRepository) {
	t.Helper()
	db := &database.Database{Backend: database.BackendMemory}

	reportRepo, err := report.NewReportRepository(db)
	if err != nil {
		t.Fatalf("NewReportRepository() error = %v", err)
	}
	archiveRepo, err := NewArchiveRepository(db)
	if err != nil {
		t.Fatalf("NewArchiveRepository() error = %v", err)
	}
	return NewArchiveService(archiveRepo, reportRepo, zap.NewNop()), reportRepo, archiveRepo
}

func TestSweep(t *testing.T) {
	svc, reportRepo, archiveRepo := newTestService(t)
	ctx := context.Background()

	expired := report.Report{
		ID:         "old",
		Week:       "2026-W22",
		Department: "Lager",
		Status:     report.StatusYellow,
		KPIs:       map[string]float64{"bestand": 420},
		CreatedAt:  time.Now().AddDate(0, 0, -(RetentionDays + 1)),
	}
	fresh := report.Report{
		ID:         "recent",
		Week:       "2026-W34",
		Department: "Lager",
		CreatedAt:  time.Now().AddDate(0, 0, -(RetentionDays - 1)),
	}
	for _, rep := range []report.Report{expired, fresh} {
		r := rep
		if err := reportRepo.Create(ctx, &r); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	archived, err := svc.Sweep(ctx, "")
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if archived != 1 {
		t.Fatalf("Sweep() archived %d reports, want 1", archived)
	}

	// The expired report is gone from the live collection.
	if _, err := reportRepo.Get(ctx, "old"); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("expired report still live, Get() error = %v", err)
	}
	if _, err := reportRepo.Get(ctx, "recent"); err != nil {
		t.Errorf("recent report was swept: %v", err)
	}

	records, err := archiveRepo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("archive holds %d records, want 1", len(records))
	}

	rec := records[0]
	if rec.OriginalID != "old" {
		t.Errorf("OriginalID = %s, want old", rec.OriginalID)
	}
	if rec.ID == "old" || rec.ID == "" {
		t.Errorf("record got no fresh ID: %q", rec.ID)
	}
	if rec.Week != "2026-W22" || rec.Department != "Lager" {
		t.Errorf("record lost report metadata: %+v", rec)
	}
	if rec.ArchivedBy != "system" {
		t.Errorf("ArchivedBy = %s, want system fallback", rec.ArchivedBy)
	}
	// Data is a full snapshot of the report as archived.
	if rec.Data.ID != "old" || rec.Data.Status != report.StatusYellow || rec.Data.KPIs["bestand"] != 420 {
		t.Errorf("snapshot incomplete: %+v", rec.Data)
	}
}

func TestSweepEmptyCollection(t *testing.T) {
	svc, _, _ := newTestService(t)

	archived, err := svc.Sweep(context.Background(), "admin")
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if archived != 0 {
		t.Errorf("Sweep() archived %d, want 0", archived)
	}
}
