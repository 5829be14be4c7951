package template

import (
	"ews-reports/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type TemplateApi struct {
	controller *TemplateController
}

func NewTemplateApi(controller *TemplateController) api.Route {
	return &TemplateApi{controller: controller}
}

func (h *TemplateApi) Setup(app *fiber.App) {
	group := app.Group("/api/templates")

	group.Get("/", h.controller.List)
	group.Post("/", h.controller.Create)
	group.Put("/:id", h.controller.Update)
	group.Delete("/:id", h.controller.Delete)
}
