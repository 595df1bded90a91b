package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/senbim-immo/admin-service/internal/observability"
	"github.com/senbim-immo/admin-service/internal/service"
)

// StatsHandler serves dashboard aggregates and internal counters.
type StatsHandler struct {
	service *service.StatsService
	metrics *observability.Metrics
}

// NewStatsHandler constructs handler.
func NewStatsHandler(statsService *service.StatsService, metrics *observability.Metrics) *StatsHandler {
	return &StatsHandler{service: statsService, metrics: metrics}
}

// Dashboard GET /stats/dashboard.
func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.service.Dashboard(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// Metrics GET /stats/metrics exposes in-process request counters.
func (h *StatsHandler) Metrics(c *fiber.Ctx) error {
	requests, errorCounts := h.metrics.Snapshot()
	return c.JSON(fiber.Map{"data": fiber.Map{
		"requests": requests,
		"errors":   errorCounts,
	}})
}
