package system

import (
	"time"

	"ews-reports/internal/database"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const apiVersion = "3.0.0"

type SystemController struct {
	db  *database.Database
	log *zap.Logger
}

func NewSystemController(db *database.Database, log *zap.Logger) *SystemController {
	return &SystemController{db: db, log: log}
}

// Health reports service liveness and the state of the storage backend.
// The endpoint always answers 200 so that load balancers can read the
// payload; a broken backend is signalled via status "degraded".
func (c *SystemController) Health(ctx *fiber.Ctx) error {
	status := "healthy"
	dbStatus := "connected"

	if err := c.db.Ping(ctx.Context()); err != nil {
		c.log.Warn("health check: storage unreachable", zap.Error(err))
		status = "degraded"
		dbStatus = "disconnected"
	}

	return ctx.JSON(fiber.Map{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   apiVersion,
		"database": fiber.Map{
			"backend": string(c.db.Backend),
			"status":  dbStatus,
		},
	})
}
