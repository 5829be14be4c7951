package analytics

import (
	"ews-reports/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsApi struct {
	controller *AnalyticsController
}

func NewAnalyticsApi(controller *AnalyticsController) api.Route {
	return &AnalyticsApi{controller: controller}
}

func (h *AnalyticsApi) Setup(app *fiber.App) {
	group := app.Group("/api/analytics")

	group.Get("/kpi", h.controller.KPI)
	group.Get("/departments", h.controller.Departments)
	group.Get("/tasks", h.controller.Tasks)
}
