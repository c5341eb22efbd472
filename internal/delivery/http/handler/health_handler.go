package handler

import (
	"context"
	"time"

	"staffing/internal/database"
	"staffing/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// HealthHandler reports liveness and, when wired with a DB, readiness.
type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Live)
	r.Get("/ready", h.Ready)
}

func (h *HealthHandler) Live(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *HealthHandler) Ready(c fiber.Ctx) error {
	if h.db == nil {
		return response.Error(c, fiber.StatusServiceUnavailable, "database not configured", nil)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		return response.Error(c, fiber.StatusServiceUnavailable, "database unreachable", nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
