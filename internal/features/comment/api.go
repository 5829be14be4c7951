package comment

import (
	"ews-reports/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type CommentApi struct {
	controller *CommentController
}

func NewCommentApi(controller *CommentController) api.Route {
	return &CommentApi{controller: controller}
}

// Comments hang off their report, there is no standalone surface.
func (h *CommentApi) Setup(app *fiber.App) {
	group := app.Group("/api/reports/:reportId/comments")

	group.Get("/", h.controller.List)
	group.Post("/", h.controller.Create)
}
