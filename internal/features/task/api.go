package task

import (
	"ews-reports/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type TaskApi struct {
	controller *TaskController
}

func NewTaskApi(controller *TaskController) api.Route {
	return &TaskApi{controller: controller}
}

func (h *TaskApi) Setup(app *fiber.App) {
	group := app.Group("/api/tasks")

	group.Get("/", h.controller.List)
	group.Post("/", h.controller.Create)
	group.Put("/:id", h.controller.Update)
	group.Delete("/:id", h.controller.Delete)
}
