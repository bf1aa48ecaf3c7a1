package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturas-api/internal/application/billing"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
)

// CustomerHandler lecturas de clientes.
type CustomerHandler struct {
	uc *billing.CustomerUseCase
}

// NewCustomerHandler construye el handler de clientes.
func NewCustomerHandler(uc *billing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List godoc
// @Summary      Clientes para el selector del formulario
// @Tags         customers
// @Produce      json
// @Success      200  {array}  dto.CustomerFieldDTO
// @Router       /api/dashboard/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Table godoc
// @Summary      Tabla de clientes con agregados de facturación
// @Tags         customers
// @Produce      json
// @Param        query  query  string  false  "filtro por nombre o email"
// @Success      200  {array}  dto.CustomerTableDTO
// @Router       /api/dashboard/customers/table [get]
func (h *CustomerHandler) Table(c *fiber.Ctx) error {
	out, err := h.uc.Table(c.Context(), c.Query("query"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
