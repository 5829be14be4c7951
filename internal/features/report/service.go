package report

import (
	"context"
	"time"

	"ews-reports/internal/common/ident"
)

type ReportService interface {
	CreateReport(ctx context.Context, req *CreateRequest) (*Report, error)
	GetReport(ctx context.Context, id string) (*Report, error)
	ListReports(ctx context.Context, filter Filter) ([]Report, error)
	UpdateReport(ctx context.Context, id string, upd *Update) (*Report, error)
	DeleteReport(ctx context.Context, id string) (*Report, error)
}

type ReportServiceImpl struct {
	repo ReportRepository
}

func NewReportService(repo ReportRepository) ReportService {
	return &ReportServiceImpl{repo: repo}
}

func (s *ReportServiceImpl) CreateReport(ctx context.Context, req *CreateRequest) (*Report, error) {
	now := time.Now()

	report := &Report{
		ID:            ident.New(),
		Week:          req.Week,
		Department:    req.Department,
		Status:        req.Status,
		KPIs:          req.KPIs,
		Achievements:  req.Achievements,
		Challenges:    req.Challenges,
		NextWeekPlans: req.NextWeekPlans,
		Notes:         req.Notes,
		CreatedBy:     req.CreatedBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if report.Status == "" {
		report.Status = StatusGreen
	}
	if report.KPIs == nil {
		report.KPIs = map[string]float64{}
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportServiceImpl) GetReport(ctx context.Context, id string) (*Report, error) {
	return s.repo.Get(ctx, id)
}

func (s *ReportServiceImpl) ListReports(ctx context.Context, filter Filter) ([]Report, error) {
	return s.repo.List(ctx, filter)
}

func (s *ReportServiceImpl) UpdateReport(ctx context.Context, id string, upd *Update) (*Report, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *ReportServiceImpl) DeleteReport(ctx context.Context, id string) (*Report, error) {
	return s.repo.Delete(ctx, id)
}
