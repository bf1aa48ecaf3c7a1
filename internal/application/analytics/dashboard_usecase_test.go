package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturas-api/internal/application/analytics"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

type fakeDashboardRepo struct {
	invoices  int64
	customers int64
	totals    repository.StatusTotals
	err       error
}

func (f *fakeDashboardRepo) CountInvoices(context.Context) (int64, error)  { return f.invoices, f.err }
func (f *fakeDashboardRepo) CountCustomers(context.Context) (int64, error) { return f.customers, f.err }
func (f *fakeDashboardRepo) SumInvoicesByStatus(context.Context) (repository.StatusTotals, error) {
	return f.totals, f.err
}

type fakeRevenueRepo struct {
	rows []*entity.Revenue
	err  error
}

func (f *fakeRevenueRepo) All(context.Context) ([]*entity.Revenue, error) { return f.rows, f.err }

func TestGetSummary_CombinaLasTresConsultas(t *testing.T) {
	repo := &fakeDashboardRepo{
		invoices:  13,
		customers: 6,
		totals: repository.StatusTotals{
			PaidCents:    decimal.NewFromInt(150000),
			PendingCents: decimal.NewFromInt(12599),
		},
	}
	uc := analytics.NewDashboardUseCase(repo, &fakeRevenueRepo{})

	summary, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(13), summary.NumberOfInvoices)
	assert.Equal(t, int64(6), summary.NumberOfCustomers)
	assert.Equal(t, "$1,500.00", summary.TotalPaidInvoices)
	assert.Equal(t, "$125.99", summary.TotalPendingInvoices)
}

func TestGetSummary_PropagaFalloDeRama(t *testing.T) {
	repo := &fakeDashboardRepo{err: errors.New("boom")}
	uc := analytics.NewDashboardUseCase(repo, &fakeRevenueRepo{})

	_, err := uc.GetSummary(context.Background())
	assert.Error(t, err)
}

func TestGetRevenueChart_CalculaEjeY(t *testing.T) {
	rev := &fakeRevenueRepo{rows: []*entity.Revenue{
		{Month: "Jan", Revenue: 2000},
		{Month: "Feb", Revenue: 1800},
		{Month: "Mar", Revenue: 2200},
	}}
	uc := analytics.NewDashboardUseCase(&fakeDashboardRepo{}, rev)

	chart, err := uc.GetRevenueChart(context.Background())

	require.NoError(t, err)
	assert.Len(t, chart.Revenue, 3)
	assert.Equal(t, int64(3000), chart.TopLabel)
	assert.Equal(t, []string{"$3K", "$2K", "$1K", "$0K"}, chart.YAxisLabels)
}
