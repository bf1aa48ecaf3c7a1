package repository

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas.
// Cada escritura es una sentencia única con autocommit; no hay transacciones
// multi-sentencia ni tokens de concurrencia optimista (last-writer-wins).
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	// Update reemplaza cliente, monto y estado. Devuelve domain.ErrNotFound
	// si el id no existe (0 filas afectadas).
	Update(ctx context.Context, invoice *entity.Invoice) error
	// Delete elimina por id. Devuelve domain.ErrNotFound si el id no existe.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)

	// ListFiltered devuelve la página de facturas que matchean query (ver CountFiltered),
	// ordenadas por fecha descendente.
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.InvoiceWithCustomer, error)
	// CountFiltered cuenta facturas cuyo nombre/email de cliente, monto, fecha
	// o estado contienen query (ILIKE, OR entre los cinco campos).
	CountFiltered(ctx context.Context, query string) (int, error)
	// Latest devuelve las n facturas más recientes con su cliente.
	Latest(ctx context.Context, n int) ([]*entity.InvoiceWithCustomer, error)
}
