package system

import (
	"ews-reports/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type SystemApi struct {
	controller *SystemController
}

func NewSystemApi(controller *SystemController) api.Route {
	return &SystemApi{controller: controller}
}

func (h *SystemApi) Setup(app *fiber.App) {
	app.Get("/api/health", h.controller.Health)
}
