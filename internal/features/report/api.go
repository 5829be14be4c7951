package report

import (
	"ews-reports/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type ReportApi struct {
	controller *ReportController
}

func NewReportApi(controller *ReportController) api.Route {
	return &ReportApi{controller: controller}
}

func (h *ReportApi) Setup(app *fiber.App) {
	group := app.Group("/api/reports")

	group.Get("/", h.controller.List)
	group.Post("/", h.controller.Create)
	group.Get("/:id", h.controller.Get)
	group.Put("/:id", h.controller.Update)
	group.Delete("/:id", h.controller.Delete)
}
