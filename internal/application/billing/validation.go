package billing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// Mensajes del esquema del formulario de factura. Se reportan por campo y en
// el orden en que se agregan.
const (
	msgSelectCustomer = "Please select a customer."
	msgAmountGreater  = "Please enter an amount greater than $0."
	msgSelectStatus   = "Please select an invoice status."

	msgMissingCreate = "Missing fields. Failed to create invoice."
	msgMissingUpdate = "Missing fields. Failed to update invoice."

	msgDBCreate = "Database error: failed to create invoice."
	msgDBUpdate = "Database error: failed to update invoice."
	msgDBDelete = "Database error: failed to delete invoice."

	msgNotFoundUpdate = "Invoice not found. Failed to update invoice."
	msgNotFoundDelete = "Invoice not found. Failed to delete invoice."
)

// IsNotFound indica si el estado de mutación corresponde a un id inexistente.
// Los handlers lo usan para responder 404 en vez de 500.
func IsNotFound(state *dto.MutationState) bool {
	return state != nil && (state.Message == msgNotFoundUpdate || state.Message == msgNotFoundDelete)
}

// parsedInvoice payload tipado y estrechado tras validar el formulario.
type parsedInvoice struct {
	CustomerID  string
	AmountCents int64
	Status      string
}

// validateInvoiceForm valida los tres campos del formulario de forma
// independiente y reporta todos los campos violados en el mismo resultado
// (sin corto circuito en el primer error). Función pura, sin efectos.
//
// Reglas:
//   - customerId: identificador no vacío.
//   - amount: decimal estrictamente mayor que 0; se convierte a centavos
//     (×100, redondeo al centavo) con aritmética decimal, nunca float.
//   - status: exactamente "pending" o "paid".
func validateInvoiceForm(in dto.InvoiceFormRequest) (parsedInvoice, map[string][]string) {
	errs := map[string][]string{}

	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		errs["customerId"] = append(errs["customerId"], msgSelectCustomer)
	}

	var cents int64
	raw := strings.TrimSpace(in.Amount)
	amount, parseErr := decimal.NewFromString(raw)
	if raw == "" || parseErr != nil || !amount.GreaterThan(decimal.Zero) {
		errs["amount"] = append(errs["amount"], msgAmountGreater)
	} else {
		cents = amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	}

	if !entity.ValidStatus(in.Status) {
		errs["status"] = append(errs["status"], msgSelectStatus)
	}

	if len(errs) > 0 {
		return parsedInvoice{}, errs
	}
	return parsedInvoice{CustomerID: customerID, AmountCents: cents, Status: in.Status}, nil
}
