package entity

import "time"

// Estados válidos de una factura.
const (
	StatusPending = "pending" // emitida, pago pendiente
	StatusPaid    = "paid"    // pagada
)

// ValidStatus indica si s es un estado de factura reconocido.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusPaid
}

// Invoice representa una factura. AmountCents guarda el monto en centavos
// (unidad menor) para evitar errores de redondeo de punto flotante; toda
// frontera que reciba dólares decimales convierte a centavos antes de operar.
type Invoice struct {
	ID          string
	CustomerID  string
	AmountCents int64
	Status      string    // pending | paid
	Date        time.Time // fecha de emisión (solo fecha, YYYY-MM-DD)
}

// InvoiceWithCustomer fila de factura enriquecida con los datos del cliente,
// tal como la consume la tabla del dashboard.
type InvoiceWithCustomer struct {
	Invoice
	CustomerName     string
	CustomerEmail    string
	CustomerImageURL string
}
