package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatusTotals sumas de montos por estado de factura, en centavos.
// La DB los produce como NUMERIC (SUM sobre enteros); se escanean a decimal
// vía el codec pgx-shopspring-decimal.
type StatusTotals struct {
	PaidCents    decimal.Decimal
	PendingCents decimal.Decimal
}

// DashboardRepository define las consultas de lectura para las tarjetas del dashboard.
// Las implementaciones son read-only.
type DashboardRepository interface {
	CountInvoices(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	// SumInvoicesByStatus devuelve el total pagado y pendiente (COALESCE a cero
	// si no hay filas).
	SumInvoicesByStatus(ctx context.Context) (StatusTotals, error)
}
