package archive

import (
	"context"
	"fmt"
	"time"

	"ews-reports/internal/common/ident"
	"ews-reports/internal/features/report"

	"go.uber.org/zap"
)

type ArchiveService interface {
	// Sweep moves every report created before now-84d into the archive
	// and returns how many were moved. The per-report insert-then-delete
	// sequence is not atomic; a failure part-way leaves earlier reports
	// archived and later ones untouched.
	Sweep(ctx context.Context, archivedBy string) (int, error)
	ListArchive(ctx context.Context) ([]Record, error)
}

type ArchiveServiceImpl struct {
	repo       ArchiveRepository
	reportRepo report.ReportRepository
	log        *zap.Logger
}

func NewArchiveService(repo ArchiveRepository, reportRepo report.ReportRepository, log *zap.Logger) ArchiveService {
	return &ArchiveServiceImpl{repo: repo, reportRepo: reportRepo, log: log}
}

func (s *ArchiveServiceImpl) Sweep(ctx context.Context, archivedBy string) (int, error) {
	if archivedBy == "" {
		archivedBy = "system"
	}
	now := time.Now()
	cutoff := now.AddDate(0, 0, -RetentionDays)

	expired, err := s.reportRepo.List(ctx, report.Filter{CreatedBefore: &cutoff})
	if err != nil {
		return 0, fmt.Errorf("list expired reports: %w", err)
	}

	archived := 0
	for _, rep := range expired {
		record := &Record{
			ID:         ident.New(),
			OriginalID: rep.ID,
			Week:       rep.Week,
			Department: rep.Department,
			Data:       rep,
			ArchivedAt: now,
			ArchivedBy: archivedBy,
		}
		if err := s.repo.Create(ctx, record); err != nil {
			return archived, fmt.Errorf("archive report %s: %w", rep.ID, err)
		}
		if _, err := s.reportRepo.Delete(ctx, rep.ID); err != nil {
			return archived, fmt.Errorf("delete archived report %s: %w", rep.ID, err)
		}
		archived++
	}

	s.log.Info("retention sweep finished",
		zap.Int("archived", archived),
		zap.Time("cutoff", cutoff),
		zap.String("archivedBy", archivedBy))
	return archived, nil
}

func (s *ArchiveServiceImpl) ListArchive(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}
