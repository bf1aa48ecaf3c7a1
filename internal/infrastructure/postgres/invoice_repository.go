package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// Cada escritura es una sentencia única autocommit; la detección de
// "no encontrado" en Update/Delete sale de RowsAffected.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste una factura nueva.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.AmountCents, invoice.Status, invoice.Date,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update reemplaza cliente, monto y estado de la factura. Id y fecha quedan intactos.
// 0 filas afectadas => domain.ErrNotFound.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET customer_id = $2, amount = $3, status = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.AmountCents, invoice.Status,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la factura por id. 0 filas afectadas => domain.ErrNotFound.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene una factura por id. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.AmountCents, &inv.Status, &inv.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch invoice: %w", err)
	}
	return &inv, nil
}

// searchFilter cláusula compartida por ListFiltered y CountFiltered: substring
// case-insensitive sobre nombre/email del cliente, monto y fecha convertidos a
// texto, y estado, combinados con OR.
const searchFilter = `
	customers.name ILIKE $1 OR
	customers.email ILIKE $1 OR
	invoices.amount::text ILIKE $1 OR
	invoices.date::text ILIKE $1 OR
	invoices.status ILIKE $1`

// ListFiltered devuelve la página de facturas que matchean query, más recientes primero.
func (r *InvoiceRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.InvoiceWithCustomer, error) {
	sql := `
		SELECT
			invoices.id, invoices.customer_id, invoices.amount, invoices.status, invoices.date,
			customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE ` + searchFilter + `
		ORDER BY invoices.date DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, sql, likePattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("fetch invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.InvoiceWithCustomer
	for rows.Next() {
		var row entity.InvoiceWithCustomer
		if err := rows.Scan(
			&row.ID, &row.CustomerID, &row.AmountCents, &row.Status, &row.Date,
			&row.CustomerName, &row.CustomerEmail, &row.CustomerImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// CountFiltered cuenta las facturas que matchean query (mismo filtro que ListFiltered).
func (r *InvoiceRepo) CountFiltered(ctx context.Context, query string) (int, error) {
	sql := `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE ` + searchFilter
	var count int
	if err := r.q.QueryRow(ctx, sql, likePattern(query)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return count, nil
}

// Latest devuelve las n facturas más recientes con los datos del cliente.
func (r *InvoiceRepo) Latest(ctx context.Context, n int) ([]*entity.InvoiceWithCustomer, error) {
	sql := `
		SELECT
			invoices.id, invoices.customer_id, invoices.amount, invoices.status, invoices.date,
			customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, sql, n)
	if err != nil {
		return nil, fmt.Errorf("fetch latest invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.InvoiceWithCustomer
	for rows.Next() {
		var row entity.InvoiceWithCustomer
		if err := rows.Scan(
			&row.ID, &row.CustomerID, &row.AmountCents, &row.Status, &row.Date,
			&row.CustomerName, &row.CustomerEmail, &row.CustomerImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan latest invoice: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
