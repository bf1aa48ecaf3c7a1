package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para las tarjetas del dashboard.
// Las tres consultas son independientes; el use case las lanza en paralelo.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountInvoices devuelve el total de facturas.
func (r *DashboardRepo) CountInvoices(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// CountCustomers devuelve el total de clientes.
func (r *DashboardRepo) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// SumInvoicesByStatus devuelve el total pagado y pendiente en centavos.
// Los montos se castean a NUMERIC y se escanean a decimal vía el codec
// pgx-shopspring-decimal registrado en el pool; COALESCE devuelve cero
// si no hay filas.
func (r *DashboardRepo) SumInvoicesByStatus(ctx context.Context) (repository.StatusTotals, error) {
	const query = `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0)::numeric    AS paid,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)::numeric AS pending
		FROM invoices`
	var totals repository.StatusTotals
	if err := r.q.QueryRow(ctx, query).Scan(&totals.PaidCents, &totals.PendingCents); err != nil {
		return repository.StatusTotals{}, fmt.Errorf("sum invoices by status: %w", err)
	}
	return totals, nil
}
