package entity

// Customer representa un cliente. De solo lectura para este sistema:
// no hay ruta de mutación de clientes en el dashboard.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// CustomerWithTotals cliente con agregados de facturación para la tabla de clientes.
type CustomerWithTotals struct {
	Customer
	TotalInvoices     int64
	TotalPendingCents int64
	TotalPaidCents    int64
}
