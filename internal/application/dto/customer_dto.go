package dto

// CustomerFieldDTO opción del selector de clientes del formulario.
type CustomerFieldDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerTableDTO fila de la tabla de clientes con agregados de facturación.
type CustomerTableDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"` // formateado
	TotalPaid     string `json:"total_paid"`    // formateado
}
