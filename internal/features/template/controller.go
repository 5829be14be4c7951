package template

import (
	"errors"

	"ews-reports/internal/common/api"
	"ews-reports/internal/config"
	"ews-reports/internal/database"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TemplateController struct {
	service TemplateService
	config  *config.Config
	log     *zap.Logger
}

func NewTemplateController(service TemplateService, cfg *config.Config, log *zap.Logger) *TemplateController {
	return &TemplateController{service: service, config: cfg, log: log}
}

func (c *TemplateController) List(ctx *fiber.Ctx) error {
	templates, err := c.service.ListTemplates(ctx.Context())
	if err != nil {
		c.log.Error("failed to fetch templates", zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to fetch templates", err)
	}
	return api.Success(ctx, templates)
}

func (c *TemplateController) Create(ctx *fiber.Ctx) error {
	var req CreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return api.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Content == nil {
		return api.Error(ctx, fiber.StatusBadRequest, "Content is required")
	}

	template, err := c.service.CreateTemplate(ctx.Context(), &req)
	if err != nil {
		c.log.Error("failed to create template", zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to create template", err)
	}

	c.log.Info("template created", zap.String("id", template.ID))
	return api.Created(ctx, template)
}

func (c *TemplateController) Update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var upd Update
	if err := ctx.BodyParser(&upd); err != nil {
		return api.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	template, err := c.service.UpdateTemplate(ctx.Context(), id, &upd)
	if errors.Is(err, database.ErrNotFound) {
		return api.Error(ctx, fiber.StatusNotFound, "Template not found")
	}
	if err != nil {
		c.log.Error("failed to update template", zap.String("id", id), zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to update template", err)
	}

	c.log.Info("template updated", zap.String("id", id))
	return api.Success(ctx, template)
}

func (c *TemplateController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	template, err := c.service.DeleteTemplate(ctx.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		return api.Error(ctx, fiber.StatusNotFound, "Template not found")
	}
	if err != nil {
		c.log.Error("failed to delete template", zap.String("id", id), zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to delete template", err)
	}

	c.log.Info("template deleted", zap.String("id", id))
	return api.Success(ctx, template)
}
