package billing

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// InvoicePDFGenerator genera la representación PDF (recibo) de una factura.
// La implementación vive en infraestructura (Maroto).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer) ([]byte, error)
}
