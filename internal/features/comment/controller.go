package comment

import (
	"ews-reports/internal/common/api"
	"ews-reports/internal/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CommentController struct {
	service CommentService
	config  *config.Config
	log     *zap.Logger
}

func NewCommentController(service CommentService, cfg *config.Config, log *zap.Logger) *CommentController {
	return &CommentController{service: service, config: cfg, log: log}
}

func (c *CommentController) List(ctx *fiber.Ctx) error {
	reportID := ctx.Params("reportId")

	comments, err := c.service.ListComments(ctx.Context(), reportID)
	if err != nil {
		c.log.Error("failed to fetch comments", zap.String("reportId", reportID), zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to fetch comments", err)
	}
	return api.Success(ctx, comments)
}

func (c *CommentController) Create(ctx *fiber.Ctx) error {
	reportID := ctx.Params("reportId")

	var req CreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return api.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Text == "" {
		return api.Error(ctx, fiber.StatusBadRequest, "Comment text is required")
	}

	comment, err := c.service.AddComment(ctx.Context(), reportID, &req)
	if err != nil {
		c.log.Error("failed to add comment", zap.String("reportId", reportID), zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to add comment", err)
	}

	c.log.Info("comment added", zap.String("reportId", reportID), zap.String("id", comment.ID))
	return api.Created(ctx, comment)
}
