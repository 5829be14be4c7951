package user

import (
	"errors"

	"ews-reports/internal/common/api"
	"ews-reports/internal/config"
	"ews-reports/internal/database"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserController struct {
	service UserService
	config  *config.Config
	log     *zap.Logger
}

func NewUserController(service UserService, cfg *config.Config, log *zap.Logger) *UserController {
	return &UserController{service: service, config: cfg, log: log}
}

func (c *UserController) List(ctx *fiber.Ctx) error {
	users, err := c.service.ListUsers(ctx.Context())
	if err != nil {
		c.log.Error("failed to fetch users", zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to fetch users", err)
	}
	return api.SuccessList(ctx, users, len(users))
}

func (c *UserController) Get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	user, err := c.service.GetUser(ctx.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		return api.Error(ctx, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		c.log.Error("failed to fetch user", zap.String("id", id), zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to fetch user", err)
	}
	return api.Success(ctx, user)
}

func (c *UserController) Create(ctx *fiber.Ctx) error {
	var req CreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return api.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Email == "" {
		return api.Error(ctx, fiber.StatusBadRequest, "Email is required")
	}

	user, err := c.service.CreateUser(ctx.Context(), &req)
	if errors.Is(err, database.ErrDuplicateEmail) {
		return api.Error(ctx, fiber.StatusConflict, "Email already in use")
	}
	if err != nil {
		c.log.Error("failed to create user", zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to create user", err)
	}

	c.log.Info("user created", zap.String("id", user.ID))
	return api.Created(ctx, user)
}

func (c *UserController) Update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var upd Update
	if err := ctx.BodyParser(&upd); err != nil {
		return api.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := c.service.UpdateUser(ctx.Context(), id, &upd)
	if errors.Is(err, database.ErrNotFound) {
		return api.Error(ctx, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		c.log.Error("failed to update user", zap.String("id", id), zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to update user", err)
	}
	return api.Success(ctx, user)
}

func (c *UserController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	user, err := c.service.DeleteUser(ctx.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		return api.Error(ctx, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		c.log.Error("failed to delete user", zap.String("id", id), zap.Error(err))
		return api.StorageError(ctx, c.config.IsDevelopment(), "Failed to delete user", err)
	}
	return api.Success(ctx, user)
}
