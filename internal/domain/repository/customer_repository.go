package repository

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// CustomerRepository define el puerto de lectura para clientes.
// Los clientes no se mutan desde este sistema.
type CustomerRepository interface {
	// ListAll devuelve todos los clientes ordenados por nombre (para el selector del formulario).
	ListAll(ctx context.Context) ([]*entity.Customer, error)
	// ListFiltered devuelve clientes cuyo nombre o email contiene query, con
	// agregados de facturación (total, pendiente, pagado).
	ListFiltered(ctx context.Context, query string) ([]*entity.CustomerWithTotals, error)
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
}
