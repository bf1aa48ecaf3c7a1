// Package analytics contiene los casos de uso de lectura agregada del
// dashboard: tarjetas de resumen y gráfico de ingresos.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
	"github.com/jhoicas/Facturas-api/pkg/format"
)

// DashboardUseCase arma el resumen de tarjetas y el gráfico de ingresos.
//
// Fuente de datos: DashboardRepository y RevenueRepository (consultas read-only).
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
	revenueRepo   repository.RevenueRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository, revenueRepo repository.RevenueRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo, revenueRepo: revenueRepo}
}

// GetSummary construye las cuatro tarjetas del dashboard.
//
// Tres consultas independientes lanzadas en paralelo y esperadas juntas
// (fan-out/fan-in sin dependencia de orden entre ramas):
//  1. CountInvoices        → número de facturas
//  2. CountCustomers       → número de clientes
//  3. SumInvoicesByStatus  → total pagado + total pendiente
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		n   int64
		err error
	}
	type totalsResult struct {
		totals repository.StatusTotals
		err    error
	}

	invoicesCh := make(chan countResult, 1)
	customersCh := make(chan countResult, 1)
	totalsCh := make(chan totalsResult, 1)

	go func() {
		n, err := uc.dashboardRepo.CountInvoices(ctx)
		invoicesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountCustomers(ctx)
		customersCh <- countResult{n, err}
	}()
	go func() {
		totals, err := uc.dashboardRepo.SumInvoicesByStatus(ctx)
		totalsCh <- totalsResult{totals, err}
	}()

	invoices := <-invoicesCh
	customers := <-customersCh
	totals := <-totalsCh

	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de facturas: %w", invoices.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de clientes: %w", customers.err)
	}
	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales por estado: %w", totals.err)
	}

	return &dto.DashboardSummaryDTO{
		NumberOfInvoices:     invoices.n,
		NumberOfCustomers:    customers.n,
		TotalPaidInvoices:    format.Currency(totals.totals.PaidCents.IntPart()),
		TotalPendingInvoices: format.Currency(totals.totals.PendingCents.IntPart()),
	}, nil
}

// GetRevenueChart devuelve los ingresos mensuales más las etiquetas del eje Y
// ya calculadas (tope redondeado al siguiente $1000, pasos de $1000).
func (uc *DashboardUseCase) GetRevenueChart(ctx context.Context) (*dto.RevenueChartDTO, error) {
	rows, err := uc.revenueRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.RevenueChartDTO{Revenue: make([]dto.RevenueMonthDTO, 0, len(rows))}
	amounts := make([]int64, 0, len(rows))
	for _, r := range rows {
		out.Revenue = append(out.Revenue, dto.RevenueMonthDTO{Month: r.Month, Revenue: r.Revenue})
		amounts = append(amounts, r.Revenue)
	}
	out.YAxisLabels, out.TopLabel = format.YAxis(amounts)
	return out, nil
}
