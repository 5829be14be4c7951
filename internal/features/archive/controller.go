package archive

import (
	"ews-reports/internal/common/api"
	"ews-reports/internal/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ArchiveController struct {
	service ArchiveService
	config  *config.Config
	log     *zap.Logger
}

func NewArchiveController(service ArchiveService, cfg *config.Config, log *zap.Logger) *ArchiveController {
	return &ArchiveController{service: service, config: cfg, log: log}
}

// Sweep handles POST /api/archive/auto.
func (c *ArchiveController) Sweep(ctx *fiber.Ctx) error {
	var body struct {
		ArchivedBy string `json:"archivedBy"`
	}
	// An empty body is fine, the sweep falls back to "system".
	_ = ctx.BodyParser(&body)

	archived, err := c.service.Sweep(ctx.Context(), body.ArchivedBy)
	if err != nil {
		c.log.Error("retention sweep failed", zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to auto-archive", err)
	}

	return ctx.JSON(fiber.Map{"success": true, "archived": archived})
}

func (c *ArchiveController) List(ctx *fiber.Ctx) error {
	records, err := c.service.ListArchive(ctx.Context())
	if err != nil {
		c.log.Error("failed to fetch archive", zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to fetch archive", err)
	}
	return api.Success(ctx, records)
}
