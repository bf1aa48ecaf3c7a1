package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturas-api/internal/application/billing"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/infrastructure/cache"
)

// InvoiceHandler expone el pipeline de mutación y las lecturas de facturas.
// Es quien consume las señales del pipeline: invalida la caché de vistas por
// cada ruta señalada y aplica el redirect; el pipeline nunca toca ninguno de
// los dos.
type InvoiceHandler struct {
	uc    *billing.InvoiceUseCase
	pdfUC *billing.PDFUseCase
	views *cache.ViewCache
}

// NewInvoiceHandler construye el handler de facturas.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdfUC *billing.PDFUseCase, views *cache.ViewCache) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC, views: views}
}

// applyMutation traduce el resultado del pipeline a HTTP: invalida las vistas
// señaladas y redirige (303, POST→GET) en éxito; en error responde el estado
// de mutación con el status que corresponde a su causa.
func (h *InvoiceHandler) applyMutation(c *fiber.Ctx, m *dto.InvoiceMutation) error {
	if m.OK() {
		for _, path := range m.RevalidatePaths {
			h.views.Invalidate(path)
		}
		if m.RedirectTo != "" {
			return c.Redirect(m.RedirectTo, fiber.StatusSeeOther)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
	status := fiber.StatusInternalServerError
	switch {
	case billing.IsNotFound(m.State):
		status = fiber.StatusNotFound
	case len(m.State.Errors) > 0:
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(m.State)
}

// Create godoc
// @Summary      Crear factura
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceFormRequest  true  "customerId, amount, status"
// @Success      303
// @Failure      400  {object}  dto.MutationState
// @Router       /api/dashboard/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.applyMutation(c, h.uc.Create(c.Context(), in))
}

// Update godoc
// @Summary      Actualizar factura
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "id de la factura"
// @Param        body  body  dto.InvoiceFormRequest  true  "customerId, amount, status"
// @Success      303
// @Failure      400  {object}  dto.MutationState
// @Failure      404  {object}  dto.MutationState
// @Router       /api/dashboard/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.InvoiceFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.applyMutation(c, h.uc.Update(c.Context(), c.Params("id"), in))
}

// Delete godoc
// @Summary      Eliminar factura
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "id de la factura"
// @Success      204
// @Failure      404  {object}  dto.MutationState
// @Router       /api/dashboard/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	return h.applyMutation(c, h.uc.Delete(c.Context(), c.Params("id")))
}

// List godoc
// @Summary      Tabla de facturas filtrada y paginada
// @Tags         invoices
// @Produce      json
// @Param        query  query  string  false  "texto de búsqueda"
// @Param        page   query  int     false  "página (desde 1)"
// @Success      200  {object}  dto.InvoicePageDTO
// @Router       /api/dashboard/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	query := c.Query("query")
	page := c.QueryInt("page", 1)

	key := fmt.Sprintf("%s?query=%s&page=%d", billing.PathInvoices, query, page)
	if cached, ok := h.views.Get(key); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(cached)
	}

	out, err := h.uc.ListFiltered(c.Context(), query, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	body, err := c.App().Config().JSONEncoder(out)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	h.views.Set(key, body)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// Latest godoc
// @Summary      Últimas 5 facturas
// @Tags         invoices
// @Produce      json
// @Success      200  {array}  dto.LatestInvoiceDTO
// @Router       /api/dashboard/invoices/latest [get]
func (h *InvoiceHandler) Latest(c *fiber.Ctx) error {
	out, err := h.uc.Latest(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Factura por id (precarga del formulario de edición)
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "id de la factura"
// @Success      200  {object}  dto.InvoiceFormDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Recibo PDF de la factura
// @Tags         invoices
// @Produce      application/pdf
// @Param        id  path  string  true  "id de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, err := h.pdfUC.GetInvoicePDF(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=factura-%s.pdf", id))
	return c.Send(pdfBytes)
}
