package report

import (
	"errors"
	"strconv"

	"ews-reports/internal/common/api"
	"ews-reports/internal/config"
	"ews-reports/internal/database"
	"ews-reports/internal/features/comment"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultListLimit = 100

type ReportController struct {
	reportService  ReportService
	commentService comment.CommentService
	config         *config.Config
	log            *zap.Logger
}

func NewReportController(reportService ReportService, commentService comment.CommentService, cfg *config.Config, log *zap.Logger) *ReportController {
	return &ReportController{
		reportService:  reportService,
		commentService: commentService,
		config:         cfg,
		log:            log,
	}
}

// List handles GET /api/reports with optional department/week/status
// filters and a result limit (default 100).
func (c *ReportController) List(ctx *fiber.Ctx) error {
	filter := Filter{
		Department: ctx.Query("department"),
		Week:       ctx.Query("week"),
		Status:     ctx.Query("status"),
		Limit:      defaultListLimit,
	}
	if raw := ctx.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	reports, err := c.reportService.ListReports(ctx.Context(), filter)
	if err != nil {
		c.log.Error("failed to fetch reports", zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to fetch reports", err)
	}
	return api.SuccessList(ctx, reports, len(reports))
}

// reportWithComments is the GET /api/reports/:id response shape: the
// report's own fields plus its comments.
type reportWithComments struct {
	Report
	Comments []comment.Comment `json:"comments"`
}

func (c *ReportController) Get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	report, err := c.reportService.GetReport(ctx.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		return api.Error(ctx, fiber.StatusNotFound, "Report not found")
	}
	if err != nil {
		c.log.Error("failed to fetch report", zap.String("id", id), zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to fetch report", err)
	}

	comments, err := c.commentService.ListComments(ctx.Context(), id)
	if err != nil {
		c.log.Error("failed to fetch report comments", zap.String("id", id), zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to fetch report", err)
	}

	return api.Success(ctx, reportWithComments{Report: *report, Comments: comments})
}

func (c *ReportController) Create(ctx *fiber.Ctx) error {
	var req CreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return api.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Week == "" || req.Department == "" {
		return api.Error(ctx, fiber.StatusBadRequest, "Week and department are required")
	}

	report, err := c.reportService.CreateReport(ctx.Context(), &req)
	if err != nil {
		c.log.Error("failed to create report", zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to create report", err)
	}

	c.log.Info("report created", zap.String("id", report.ID), zap.String("department", report.Department))
	return api.Created(ctx, report)
}

func (c *ReportController) Update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var upd Update
	if err := ctx.BodyParser(&upd); err != nil {
		return api.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	report, err := c.reportService.UpdateReport(ctx.Context(), id, &upd)
	if errors.Is(err, database.ErrNotFound) {
		return api.Error(ctx, fiber.StatusNotFound, "Report not found")
	}
	if err != nil {
		c.log.Error("failed to update report", zap.String("id", id), zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to update report", err)
	}

	c.log.Info("report updated", zap.String("id", id))
	return api.Success(ctx, report)
}

func (c *ReportController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	report, err := c.reportService.DeleteReport(ctx.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		return api.Error(ctx, fiber.StatusNotFound, "Report not found")
	}
	if err != nil {
		c.log.Error("failed to delete report", zap.String("id", id), zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to delete report", err)
	}

	c.log.Info("report deleted", zap.String("id", id))
	return api.Success(ctx, report)
}
