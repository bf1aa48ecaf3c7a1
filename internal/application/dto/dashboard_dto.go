package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Las cuatro tarjetas del dashboard: conteos y totales por estado.
type DashboardSummaryDTO struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`    // formateado, ej. "$1,500.00"
	TotalPendingInvoices string `json:"total_pending_invoices"` // formateado
}

// RevenueMonthDTO punto del gráfico de ingresos.
type RevenueMonthDTO struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// RevenueChartDTO datos del gráfico más las etiquetas del eje Y ya calculadas.
type RevenueChartDTO struct {
	Revenue     []RevenueMonthDTO `json:"revenue"`
	YAxisLabels []string          `json:"y_axis_labels"`
	TopLabel    int64             `json:"top_label"`
}
