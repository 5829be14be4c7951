package analytics

import (
	"context"
	"testing"
	"time"

	"ews-reports/internal/database"
	"ews-reports/internal/features/report"
	"ews-reports/internal/features/task"
)

func newTestService(t *testing.T) (AnalyticsService, report.ReportRepository, task.TaskRepository) {
	t.Helper()
	db := &database.Database{Backend: database.BackendMemory}

	reportRepo, err := report.NewReportRepository(db)
	if err != nil {
		t.Fatalf("NewReportRepository() error = %v", err)
	}
	taskRepo, err := task.NewTaskRepository(db)
	if err != nil {
		t.Fatalf("NewTaskRepository() error = %v", err)
	}
	return NewAnalyticsService(reportRepo, taskRepo), reportRepo, taskRepo
}

func TestKPIAggregation(t *testing.T) {
	svc, reportRepo, _ := newTestService(t)
	ctx := context.Background()

	seed := []report.Report{
		{ID: "r1", Department: "Vertrieb", KPIs: map[string]float64{"umsatz": 10, "angebote": 3}},
		{ID: "r2", Department: "Vertrieb", KPIs: map[string]float64{"umsatz": 20}},
		{ID: "r3", Department: "Lager", KPIs: map[string]float64{"umsatz": 90}},
	}
	for i := range seed {
		if err := reportRepo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	t.Run("department filter", func(t *testing.T) {
		got, err := svc.KPIAggregation(ctx, "Vertrieb")
		if err != nil {
			t.Fatalf("KPIAggregation() error = %v", err)
		}
		if got.ReportCount != 2 {
			t.Errorf("ReportCount = %d, want 2", got.ReportCount)
		}
		if avg := got.Averages["umsatz"]; avg != 15 {
			t.Errorf("Averages[umsatz] = %v, want 15", avg)
		}
		// A key only one report carries averages over that report alone.
		if avg := got.Averages["angebote"]; avg != 3 {
			t.Errorf("Averages[angebote] = %v, want 3", avg)
		}
		if len(got.KPIData["umsatz"]) != 2 {
			t.Errorf("KPIData[umsatz] holds %d values, want 2", len(got.KPIData["umsatz"]))
		}
	})

	t.Run("all spans every department", func(t *testing.T) {
		got, err := svc.KPIAggregation(ctx, "all")
		if err != nil {
			t.Fatalf("KPIAggregation() error = %v", err)
		}
		if got.ReportCount != 3 {
			t.Errorf("ReportCount = %d, want 3", got.ReportCount)
		}
		if avg := got.Averages["umsatz"]; avg != 40 {
			t.Errorf("Averages[umsatz] = %v, want 40", avg)
		}
	})
}

func TestDepartmentPerformance(t *testing.T) {
	svc, reportRepo, _ := newTestService(t)
	ctx := context.Background()

	seed := []report.Report{
		{ID: "r1", Department: "Vertrieb", Status: report.StatusGreen},
		{ID: "r2", Department: "Vertrieb", Status: report.StatusGreen},
		{ID: "r3", Department: "Vertrieb", Status: report.StatusYellow},
		{ID: "r4", Department: "Vertrieb", Status: report.StatusRed},
	}
	for i := range seed {
		if err := reportRepo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	scores, err := svc.DepartmentPerformance(ctx)
	if err != nil {
		t.Fatalf("DepartmentPerformance() error = %v", err)
	}
	if len(scores) != len(Departments) {
		t.Fatalf("got %d scorecards, want %d", len(scores), len(Departments))
	}

	byDept := map[string]DepartmentScore{}
	for _, s := range scores {
		byDept[s.Department] = s
	}

	vertrieb := byDept["Vertrieb"]
	// (2*100 + 1*50 + 0) / 4 = 62.5
	if vertrieb.Score != 62.5 {
		t.Errorf("Vertrieb score = %v, want 62.5", vertrieb.Score)
	}
	if vertrieb.StatusCounts != (StatusCounts{Green: 2, Yellow: 1, Red: 1}) {
		t.Errorf("Vertrieb counts = %+v", vertrieb.StatusCounts)
	}

	lager := byDept["Lager"]
	if lager.Score != 0 || lager.ReportCount != 0 {
		t.Errorf("empty department scored %v with %d reports, want 0 and 0", lager.Score, lager.ReportCount)
	}
}

func TestTaskStatistics(t *testing.T) {
	svc, _, taskRepo := newTestService(t)
	ctx := context.Background()

	past := time.Now().Add(-48 * time.Hour)
	future := time.Now().Add(48 * time.Hour)

	seed := []task.Task{
		{ID: "t1", Status: task.StatusTodo, Priority: task.PriorityHigh, DueDate: &past},
		{ID: "t2", Status: task.StatusInProgress, Priority: task.PriorityMedium, DueDate: &future},
		{ID: "t3", Status: task.StatusDone, Priority: task.PriorityLow, DueDate: &past},
		{ID: "t4", Status: task.StatusTodo, Priority: task.PriorityLow},
	}
	for i := range seed {
		if err := taskRepo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	stats, err := svc.TaskStatistics(ctx)
	if err != nil {
		t.Fatalf("TaskStatistics() error = %v", err)
	}

	if stats.Total != 4 || stats.Todo != 2 || stats.InProgress != 1 || stats.Done != 1 {
		t.Errorf("status counts = %+v", stats)
	}
	// t3 is past due but done, t4 has no due date: only t1 is overdue.
	if stats.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1", stats.Overdue)
	}
	if stats.ByPriority != (PriorityCounts{High: 1, Medium: 1, Low: 2}) {
		t.Errorf("ByPriority = %+v", stats.ByPriority)
	}
}
