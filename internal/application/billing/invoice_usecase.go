// Package billing contiene el pipeline de mutación de facturas
// (validar → convertir a centavos → persistir → señalar revalidación y
// navegación) y las lecturas de la tabla de facturas del dashboard.
package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
	"github.com/jhoicas/Facturas-api/pkg/format"
)

// itemsPerPage tamaño fijo de página de la tabla de facturas.
const itemsPerPage = 6

// Rutas de vista que consumen los handlers al aplicar las señales del pipeline.
const (
	PathInvoices  = "/dashboard/invoices"
	PathDashboard = "/dashboard"
)

// InvoiceUseCase casos de uso de facturas: el pipeline de mutación
// (Create/Update/Delete) y las lecturas de listado, detalle y recientes.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo}
}

// ── Pipeline de mutación ──────────────────────────────────────────────────────

// Create valida el formulario y persiste una factura nueva con fecha de hoy
// (zona horaria del servidor). Ante errores de validación devuelve el reporte
// por campo sin escribir nada; ante fallo de persistencia loguea el detalle y
// devuelve un mensaje genérico que no filtra el error de almacenamiento.
// En éxito, el resultado señala revalidar la colección y navegar a ella.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.InvoiceFormRequest) *dto.InvoiceMutation {
	parsed, fieldErrs := validateInvoiceForm(in)
	if fieldErrs != nil {
		return &dto.InvoiceMutation{State: &dto.MutationState{Errors: fieldErrs, Message: msgMissingCreate}}
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:          uuid.New().String(),
		CustomerID:  parsed.CustomerID,
		AmountCents: parsed.AmountCents,
		Status:      parsed.Status,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}

	if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
		log.Error().Err(err).Str("customer_id", parsed.CustomerID).Msg("insert de factura falló")
		return &dto.InvoiceMutation{State: &dto.MutationState{Message: msgDBCreate}}
	}

	return &dto.InvoiceMutation{
		RevalidatePaths: []string{PathInvoices, PathDashboard},
		RedirectTo:      PathInvoices,
	}
}

// Update aplica la misma validación y transformación que Create sobre una
// factura existente. Id y fecha son inmutables. Un id inexistente se reporta
// como no encontrado (0 filas afectadas), no como éxito silencioso.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.InvoiceFormRequest) *dto.InvoiceMutation {
	parsed, fieldErrs := validateInvoiceForm(in)
	if fieldErrs != nil {
		return &dto.InvoiceMutation{State: &dto.MutationState{Errors: fieldErrs, Message: msgMissingUpdate}}
	}

	invoice := &entity.Invoice{
		ID:          id,
		CustomerID:  parsed.CustomerID,
		AmountCents: parsed.AmountCents,
		Status:      parsed.Status,
	}

	if err := uc.invoiceRepo.Update(ctx, invoice); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &dto.InvoiceMutation{State: &dto.MutationState{Message: msgNotFoundUpdate}}
		}
		log.Error().Err(err).Str("invoice_id", id).Msg("update de factura falló")
		return &dto.InvoiceMutation{State: &dto.MutationState{Message: msgDBUpdate}}
	}

	return &dto.InvoiceMutation{
		RevalidatePaths: []string{PathInvoices, PathDashboard},
		RedirectTo:      PathInvoices,
	}
}

// Delete elimina la factura por id. En éxito revalida la colección pero no
// navega: el caller permanece en la vista actual.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) *dto.InvoiceMutation {
	if err := uc.invoiceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &dto.InvoiceMutation{State: &dto.MutationState{Message: msgNotFoundDelete}}
		}
		log.Error().Err(err).Str("invoice_id", id).Msg("delete de factura falló")
		return &dto.InvoiceMutation{State: &dto.MutationState{Message: msgDBDelete}}
	}

	return &dto.InvoiceMutation{RevalidatePaths: []string{PathInvoices, PathDashboard}}
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

// ListFiltered devuelve la página pedida de facturas que matchean query,
// junto con el total de páginas (ceil(total/6)).
func (uc *InvoiceUseCase) ListFiltered(ctx context.Context, query string, page int) (*dto.InvoicePageDTO, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * itemsPerPage

	rows, err := uc.invoiceRepo.ListFiltered(ctx, query, itemsPerPage, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.invoiceRepo.CountFiltered(ctx, query)
	if err != nil {
		return nil, err
	}

	totalPages := (total + itemsPerPage - 1) / itemsPerPage
	out := &dto.InvoicePageDTO{
		Invoices:   make([]dto.InvoiceRowDTO, 0, len(rows)),
		Page:       page,
		TotalPages: totalPages,
		Pagination: format.Pagination(page, totalPages),
	}
	for _, r := range rows {
		out.Invoices = append(out.Invoices, dto.InvoiceRowDTO{
			ID:          r.ID,
			CustomerID:  r.CustomerID,
			Name:        r.CustomerName,
			Email:       r.CustomerEmail,
			ImageURL:    r.CustomerImageURL,
			Date:        format.DateToLocal(r.Date),
			Amount:      format.Currency(r.AmountCents),
			AmountCents: r.AmountCents,
			Status:      r.Status,
		})
	}
	return out, nil
}

// Pages devuelve solo el total de páginas para query (tamaño fijo de 6 filas).
func (uc *InvoiceUseCase) Pages(ctx context.Context, query string) (int, error) {
	total, err := uc.invoiceRepo.CountFiltered(ctx, query)
	if err != nil {
		return 0, err
	}
	return (total + itemsPerPage - 1) / itemsPerPage, nil
}

// GetByID devuelve el payload para precargar el formulario de edición.
// El monto vuelve a dólares con dos decimales; la conversión es decimal, no float.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceFormDTO, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.InvoiceFormDTO{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     decimal.New(invoice.AmountCents, -2).StringFixed(2),
		Status:     invoice.Status,
	}, nil
}

// Latest devuelve las 5 facturas más recientes para el widget del dashboard.
func (uc *InvoiceUseCase) Latest(ctx context.Context) ([]dto.LatestInvoiceDTO, error) {
	rows, err := uc.invoiceRepo.Latest(ctx, 5)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LatestInvoiceDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LatestInvoiceDTO{
			ID:       r.ID,
			Name:     r.CustomerName,
			Email:    r.CustomerEmail,
			ImageURL: r.CustomerImageURL,
			Amount:   format.Currency(r.AmountCents),
		})
	}
	return out, nil
}
