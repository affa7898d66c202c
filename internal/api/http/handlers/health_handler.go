package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/walks-service/internal/persistence"
)

// HealthHandler reports process liveness and storage readiness.
type HealthHandler struct {
	pg *persistence.Postgres
}

// NewHealthHandler constructs handler.
func NewHealthHandler(pg *persistence.Postgres) *HealthHandler {
	return &HealthHandler{pg: pg}
}

// Live handles GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if err := h.pg.Ping(c.Context()); err != nil {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"reason": "postgres unreachable",
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
