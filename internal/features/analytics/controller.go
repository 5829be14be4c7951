package analytics

import (
	"ews-reports/internal/common/api"
	"ews-reports/internal/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalyticsController struct {
	service AnalyticsService
	config  *config.Config
	log     *zap.Logger
}

func NewAnalyticsController(service AnalyticsService, cfg *config.Config, log *zap.Logger) *AnalyticsController {
	return &AnalyticsController{service: service, config: cfg, log: log}
}

func (c *AnalyticsController) KPI(ctx *fiber.Ctx) error {
	result, err := c.service.KPIAggregation(ctx.Context(), ctx.Query("department"))
	if err != nil {
		c.log.Error("failed to aggregate KPIs", zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to fetch analytics", err)
	}
	return api.Success(ctx, result)
}

func (c *AnalyticsController) Departments(ctx *fiber.Ctx) error {
	scores, err := c.service.DepartmentPerformance(ctx.Context())
	if err != nil {
		c.log.Error("failed to compute department scores", zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to fetch department analytics", err)
	}
	return api.Success(ctx, scores)
}

func (c *AnalyticsController) Tasks(ctx *fiber.Ctx) error {
	stats, err := c.service.TaskStatistics(ctx.Context())
	if err != nil {
		c.log.Error("failed to compute task statistics", zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to fetch task analytics", err)
	}
	return api.Success(ctx, stats)
}
