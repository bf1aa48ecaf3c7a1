package dto

// InvoiceFormRequest campos crudos del formulario de factura, todos string.
// La coerción y validación ocurre en el pipeline de mutación, no aquí.
type InvoiceFormRequest struct {
	CustomerID string `json:"customerId" form:"customerId"`
	Amount     string `json:"amount" form:"amount"`
	Status     string `json:"status" form:"status"`
}

// MutationState errores visibles de una mutación: lista ordenada de mensajes
// por campo más un mensaje general. Transitorio; nunca se persiste.
type MutationState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// InvoiceMutation resultado del pipeline de mutación de facturas.
// State nil significa éxito. RevalidatePaths y RedirectTo son señales que el
// caller aplica (invalidar caché de vistas, navegar); el pipeline no toca ni
// la caché ni el router, para que cada paso se pruebe por separado.
type InvoiceMutation struct {
	State           *MutationState `json:"state,omitempty"`
	RevalidatePaths []string       `json:"-"`
	RedirectTo      string         `json:"redirect_to,omitempty"`
}

// OK indica si la mutación terminó sin errores.
func (m *InvoiceMutation) OK() bool { return m.State == nil }

// InvoiceRowDTO fila de la tabla de facturas del dashboard.
type InvoiceRowDTO struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	ImageURL    string `json:"image_url"`
	Date        string `json:"date"`   // "Oct 4, 2023"
	Amount      string `json:"amount"` // "$1,500.00"
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"`
}

// InvoicePageDTO página de facturas filtradas más el total de páginas y la
// secuencia de paginación lista para renderizar ("1", "...", "12").
type InvoicePageDTO struct {
	Invoices   []InvoiceRowDTO `json:"invoices"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
	Pagination []string        `json:"pagination"`
}

// InvoiceFormDTO payload para precargar el formulario de edición.
// Amount va en dólares con dos decimales ("15.00"), como lo espera el input.
type InvoiceFormDTO struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
}

// LatestInvoiceDTO factura reciente para el widget del dashboard.
type LatestInvoiceDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"` // formateado, ej. "$345.77"
}
