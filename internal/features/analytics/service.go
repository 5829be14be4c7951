package analytics

import (
	"context"
	"time"

	"ews-reports/internal/features/report"
	"ews-reports/internal/features/task"
)

// AnalyticsService derives read-only views from the current report and
// task collections. Nothing is cached; every call recomputes from the
// store.
type AnalyticsService interface {
	KPIAggregation(ctx context.Context, department string) (*KPIResult, error)
	DepartmentPerformance(ctx context.Context) ([]DepartmentScore, error)
	TaskStatistics(ctx context.Context) (*TaskStats, error)
}

type AnalyticsServiceImpl struct {
	reportRepo report.ReportRepository
	taskRepo   task.TaskRepository
}

func NewAnalyticsService(reportRepo report.ReportRepository, taskRepo task.TaskRepository) AnalyticsService {
	return &AnalyticsServiceImpl{reportRepo: reportRepo, taskRepo: taskRepo}
}

// KPIAggregation averages each KPI key over the reports that carry it.
// "all" is treated like no department filter.
func (s *AnalyticsServiceImpl) KPIAggregation(ctx context.Context, department string) (*KPIResult, error) {
	filter := report.Filter{}
	if department != "" && department != "all" {
		filter.Department = department
	}

	reports, err := s.reportRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	kpiData := map[string][]float64{}
	for _, rep := range reports {
		for key, value := range rep.KPIs {
			kpiData[key] = append(kpiData[key], value)
		}
	}

	averages := map[string]float64{}
	for key, values := range kpiData {
		var sum float64
		for _, v := range values {
			sum += v
		}
		averages[key] = sum / float64(len(values))
	}

	return &KPIResult{
		KPIData:     kpiData,
		Averages:    averages,
		ReportCount: len(reports),
	}, nil
}

// DepartmentPerformance always returns all four departments; one without
// reports scores 0 through the max(count, 1) guard.
func (s *AnalyticsServiceImpl) DepartmentPerformance(ctx context.Context) ([]DepartmentScore, error) {
	scores := make([]DepartmentScore, 0, len(Departments))
	for _, dept := range Departments {
		reports, err := s.reportRepo.List(ctx, report.Filter{Department: dept})
		if err != nil {
			return nil, err
		}

		var counts StatusCounts
		for _, rep := range reports {
			switch rep.Status {
			case report.StatusGreen:
				counts.Green++
			case report.StatusYellow:
				counts.Yellow++
			case report.StatusRed:
				counts.Red++
			}
		}

		divisor := len(reports)
		if divisor < 1 {
			divisor = 1
		}

		scores = append(scores, DepartmentScore{
			Department:   dept,
			ReportCount:  len(reports),
			StatusCounts: counts,
			Score:        float64(counts.Green*100+counts.Yellow*50) / float64(divisor),
		})
	}
	return scores, nil
}

// TaskStatistics counts a task as overdue only while it has a due date
// strictly in the past and is not done; a finished task never counts,
// however late it was completed.
func (s *AnalyticsServiceImpl) TaskStatistics(ctx context.Context) (*TaskStats, error) {
	tasks, err := s.taskRepo.List(ctx, task.Filter{})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stats := &TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case task.StatusTodo:
			stats.Todo++
		case task.StatusInProgress:
			stats.InProgress++
		case task.StatusDone:
			stats.Done++
		}

		switch t.Priority {
		case task.PriorityHigh:
			stats.ByPriority.High++
		case task.PriorityMedium:
			stats.ByPriority.Medium++
		case task.PriorityLow:
			stats.ByPriority.Low++
		}

		if t.DueDate != nil && t.DueDate.Before(now) && t.Status != task.StatusDone {
			stats.Overdue++
		}
	}
	return stats, nil
}
