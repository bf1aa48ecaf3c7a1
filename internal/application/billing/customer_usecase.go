package billing

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
	"github.com/jhoicas/Facturas-api/pkg/format"
)

// CustomerUseCase lecturas de clientes (solo lectura en este sistema).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List devuelve todos los clientes (id, nombre) para el selector del formulario.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerFieldDTO, error) {
	customers, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerFieldDTO, 0, len(customers))
	for _, c := range customers {
		out = append(out, dto.CustomerFieldDTO{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// Table devuelve la tabla de clientes filtrada por nombre o email, con los
// agregados de facturación ya formateados.
func (uc *CustomerUseCase) Table(ctx context.Context, query string) ([]dto.CustomerTableDTO, error) {
	customers, err := uc.repo.ListFiltered(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerTableDTO, 0, len(customers))
	for _, c := range customers {
		out = append(out, dto.CustomerTableDTO{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: c.TotalInvoices,
			TotalPending:  format.Currency(c.TotalPendingCents),
			TotalPaid:     format.Currency(c.TotalPaidCents),
		})
	}
	return out, nil
}
