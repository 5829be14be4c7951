package archive

import (
	"ews-reports/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type ArchiveApi struct {
	controller *ArchiveController
}

func NewArchiveApi(controller *ArchiveController) api.Route {
	return &ArchiveApi{controller: controller}
}

func (h *ArchiveApi) Setup(app *fiber.App) {
	group := app.Group("/api/archive")

	group.Get("/", h.controller.List)
	group.Post("/auto", h.controller.Sweep)
}
