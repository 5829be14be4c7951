package export

import (
	"fmt"
	"time"

	"ews-reports/internal/common/api"
	"ews-reports/internal/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ExportController struct {
	service ExportService
	config  *config.Config
	log     *zap.Logger
}

func NewExportController(service ExportService, cfg *config.Config, log *zap.Logger) *ExportController {
	return &ExportController{service: service, config: cfg, log: log}
}

func (c *ExportController) JSON(ctx *fiber.Ctx) error {
	snapshot, err := c.service.Snapshot(ctx.Context())
	if err != nil {
		c.log.Error("failed to export data", zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to export data", err)
	}

	return ctx.JSON(fiber.Map{
		"success":    true,
		"data":       snapshot,
		"exportDate": time.Now().UTC().Format(time.RFC3339),
	})
}

func (c *ExportController) Excel(ctx *fiber.Ctx) error {
	data, filename, err := c.service.Excel(ctx.Context())
	if err != nil {
		c.log.Error("failed to export spreadsheet", zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to export data", err)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return ctx.Send(data)
}
