package archive

import (
	"context"
	"fmt"

	"ews-reports/internal/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the retention sweep on a cron schedule when
// ARCHIVE_SCHEDULE is set. The on-demand POST /api/archive/auto endpoint
// stays available either way.
type Scheduler struct {
	service  ArchiveService
	schedule string
	log      *zap.Logger
	cron     *cron.Cron
}

func NewScheduler(service ArchiveService, cfg *config.Config, log *zap.Logger) *Scheduler {
	return &Scheduler{
		service:  service,
		schedule: cfg.ArchiveSchedule,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	if s.schedule == "" {
		return nil
	}
	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid ARCHIVE_SCHEDULE %q: %w", s.schedule, err)
	}

	s.cron = cron.New()
	_, err := s.cron.AddFunc(s.schedule, func() {
		if _, err := s.service.Sweep(context.Background(), "system"); err != nil {
			s.log.Error("scheduled retention sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("retention sweep scheduled", zap.String("schedule", s.schedule))
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
