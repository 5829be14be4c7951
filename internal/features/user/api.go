package user

import (
	"ews-reports/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	controller *UserController
}

func NewUserApi(controller *UserController) api.Route {
	return &UserApi{controller: controller}
}

func (h *UserApi) Setup(app *fiber.App) {
	group := app.Group("/api/users")

	group.Get("/", h.controller.List)
	group.Post("/", h.controller.Create)
	group.Get("/:id", h.controller.Get)
	group.Put("/:id", h.controller.Update)
	group.Delete("/:id", h.controller.Delete)
}
