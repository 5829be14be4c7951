package task

import (
	"errors"

	"ews-reports/internal/common/api"
	"ews-reports/internal/config"
	"ews-reports/internal/database"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TaskController struct {
	service TaskService
	config  *config.Config
	log     *zap.Logger
}

func NewTaskController(service TaskService, cfg *config.Config, log *zap.Logger) *TaskController {
	return &TaskController{service: service, config: cfg, log: log}
}

func (c *TaskController) List(ctx *fiber.Ctx) error {
	filter := Filter{
		Status:   ctx.Query("status"),
		Assignee: ctx.Query("assignee"),
		Priority: ctx.Query("priority"),
	}

	tasks, err := c.service.ListTasks(ctx.Context(), filter)
	if err != nil {
		c.log.Error("failed to fetch tasks", zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to fetch tasks", err)
	}
	return api.SuccessList(ctx, tasks, len(tasks))
}

func (c *TaskController) Create(ctx *fiber.Ctx) error {
	var req CreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return api.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Title == "" {
		return api.Error(ctx, fiber.StatusBadRequest, "Title is required")
	}

	task, err := c.service.CreateTask(ctx.Context(), &req)
	if err != nil {
		c.log.Error("failed to create task", zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to create task", err)
	}

	c.log.Info("task created", zap.String("id", task.ID))
	return api.Created(ctx, task)
}

func (c *TaskController) Update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var upd Update
	if err := ctx.BodyParser(&upd); err != nil {
		return api.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	task, err := c.service.UpdateTask(ctx.Context(), id, &upd)
	if errors.Is(err, database.ErrNotFound) {
		return api.Error(ctx, fiber.StatusNotFound, "Task not found")
	}
	if err != nil {
		c.log.Error("failed to update task", zap.String("id", id), zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to update task", err)
	}

	c.log.Info("task updated", zap.String("id", id))
	return api.Success(ctx, task)
}

func (c *TaskController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	task, err := c.service.DeleteTask(ctx.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		return api.Error(ctx, fiber.StatusNotFound, "Task not found")
	}
	if err != nil {
		c.log.Error("failed to delete task", zap.String("id", id), zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to delete task", err)
	}

	c.log.Info("task deleted", zap.String("id", id))
	return api.Success(ctx, task)
}
