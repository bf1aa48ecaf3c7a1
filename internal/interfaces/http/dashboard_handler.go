package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturas-api/internal/application/analytics"
	"github.com/jhoicas/Facturas-api/internal/application/billing"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/infrastructure/cache"
)

// Claves de caché de las vistas agregadas. Viven bajo billing.PathDashboard
// para que la invalidación por prefijo del pipeline de mutación las barra.
const (
	cacheKeySummary = billing.PathDashboard + "/summary"
	cacheKeyRevenue = billing.PathDashboard + "/revenue"
)

// DashboardHandler vistas agregadas del dashboard: tarjetas y gráfico.
type DashboardHandler struct {
	uc    *analytics.DashboardUseCase
	views *cache.ViewCache
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase, views *cache.ViewCache) *DashboardHandler {
	return &DashboardHandler{uc: uc, views: views}
}

// Summary godoc
// @Summary      Tarjetas del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	if cached, ok := h.views.Get(cacheKeySummary); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(cached)
	}
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	body, err := c.App().Config().JSONEncoder(out)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	h.views.Set(cacheKeySummary, body)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// Revenue godoc
// @Summary      Gráfico de ingresos mensuales
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.RevenueChartDTO
// @Router       /api/dashboard/revenue [get]
func (h *DashboardHandler) Revenue(c *fiber.Ctx) error {
	if cached, ok := h.views.Get(cacheKeyRevenue); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(cached)
	}
	out, err := h.uc.GetRevenueChart(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	body, err := c.App().Config().JSONEncoder(out)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	h.views.Set(cacheKeyRevenue, body)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
