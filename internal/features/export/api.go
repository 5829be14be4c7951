package export

import (
	"ews-reports/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type ExportApi struct {
	controller *ExportController
}

func NewExportApi(controller *ExportController) api.Route {
	return &ExportApi{controller: controller}
}

func (h *ExportApi) Setup(app *fiber.App) {
	group := app.Group("/api/export")

	group.Get("/json", h.controller.JSON)
	group.Get("/excel", h.controller.Excel)
}
