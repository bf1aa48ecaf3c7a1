package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturas-api/internal/application/billing"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/infrastructure/cache"
	apphttp "github.com/jhoicas/Facturas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de facturas
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	created  []*entity.Invoice
	existing map[string]*entity.Invoice
	rows     []*entity.InvoiceWithCustomer
	count    int
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	f.created = append(f.created, inv)
	return nil
}

func (f *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	if _, ok := f.existing[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	f.existing[inv.ID] = inv
	return nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.existing[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.existing, id)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	return f.existing[id], nil
}

func (f *fakeInvoiceRepo) ListFiltered(_ context.Context, _ string, _, _ int) ([]*entity.InvoiceWithCustomer, error) {
	return f.rows, nil
}

func (f *fakeInvoiceRepo) CountFiltered(_ context.Context, _ string) (int, error) {
	return f.count, nil
}

func (f *fakeInvoiceRepo) Latest(_ context.Context, _ int) ([]*entity.InvoiceWithCustomer, error) {
	return f.rows, nil
}

// buildInvoiceApp monta el handler de facturas sin el gate de sesión (el gate
// tiene sus propios tests) y devuelve también la caché de vistas para
// verificar la invalidación.
func buildInvoiceApp(repo *fakeInvoiceRepo) (*fiber.App, *cache.ViewCache) {
	views := cache.NewViewCache(time.Minute)
	handler := apphttp.NewInvoiceHandler(billing.NewInvoiceUseCase(repo), nil, views)

	app := fiber.New()
	invoices := app.Group("/api/dashboard/invoices")
	invoices.Get("/latest", handler.Latest)
	invoices.Get("/", handler.List)
	invoices.Post("/", handler.Create)
	invoices.Get("/:id", handler.GetByID)
	invoices.Put("/:id", handler.Update)
	invoices.Delete("/:id", handler.Delete)
	return app, views
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del pipeline de mutación vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

// Crear con formulario válido: persiste, invalida las vistas cacheadas y
// redirige (303) a la tabla de facturas.
func TestInvoiceHandler_CreateExitosoRedirigeEInvalida(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	app, views := buildInvoiceApp(repo)

	// Vistas cacheadas que la mutación debe barrer.
	views.Set("/dashboard/invoices?query=&page=1", []byte("stale"))
	views.Set("/dashboard/summary", []byte("stale"))

	resp := postJSON(t, app, "/api/dashboard/invoices/",
		`{"customerId":"c-1","amount":"15.00","status":"pending"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard/invoices", resp.Header.Get("Location"))

	require.Len(t, repo.created, 1)
	assert.Equal(t, int64(1500), repo.created[0].AmountCents, "15.00 dólares son 1500 centavos")

	_, ok := views.Get("/dashboard/invoices?query=&page=1")
	assert.False(t, ok, "la vista de facturas cacheada debe invalidarse")
	_, ok = views.Get("/dashboard/summary")
	assert.False(t, ok, "la vista del dashboard cacheada debe invalidarse")
}

// Formulario inválido: 400 con los errores por campo; nada se persiste y la
// caché queda intacta.
func TestInvoiceHandler_CreateInvalidoReportaPorCampo(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	app, views := buildInvoiceApp(repo)
	views.Set("/dashboard/summary", []byte("fresh"))

	resp := postJSON(t, app, "/api/dashboard/invoices/",
		`{"customerId":"","amount":"-5","status":"otro"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var state struct {
		Errors  map[string][]string `json:"errors"`
		Message string              `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	assert.Contains(t, state.Errors, "customerId")
	assert.Contains(t, state.Errors, "amount")
	assert.Contains(t, state.Errors, "status")
	assert.Equal(t, "Missing fields. Failed to create invoice.", state.Message)

	assert.Empty(t, repo.created, "un formulario inválido no debe escribir")
	_, ok := views.Get("/dashboard/summary")
	assert.True(t, ok, "un formulario inválido no debe invalidar la caché")
}

// Update sobre un id inexistente → 404 con el mensaje de no encontrado.
func TestInvoiceHandler_UpdateInexistenteDevuelve404(t *testing.T) {
	repo := &fakeInvoiceRepo{existing: map[string]*entity.Invoice{}}
	app, _ := buildInvoiceApp(repo)

	req := httptest.NewRequest(http.MethodPut, "/api/dashboard/invoices/no-existe",
		strings.NewReader(`{"customerId":"c-1","amount":"20","status":"paid"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Delete exitoso: elimina de verdad, invalida la caché y responde 204 sin
// redirect (el caller permanece en la vista actual).
func TestInvoiceHandler_DeleteExitosoSinRedirect(t *testing.T) {
	repo := &fakeInvoiceRepo{existing: map[string]*entity.Invoice{
		"inv-1": {ID: "inv-1", CustomerID: "c-1", AmountCents: 1000, Status: entity.StatusPaid},
	}}
	app, views := buildInvoiceApp(repo)
	views.Set("/dashboard/invoices?query=&page=1", []byte("stale"))

	req := httptest.NewRequest(http.MethodDelete, "/api/dashboard/invoices/inv-1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"))
	assert.NotContains(t, repo.existing, "inv-1", "la factura debe eliminarse de verdad")

	_, ok := views.Get("/dashboard/invoices?query=&page=1")
	assert.False(t, ok)
}

// La lectura del listado se cachea: la segunda petición sale de la caché
// aunque el repo cambie debajo.
func TestInvoiceHandler_ListCacheaPorQueryYPagina(t *testing.T) {
	repo := &fakeInvoiceRepo{
		rows: []*entity.InvoiceWithCustomer{{
			Invoice:      entity.Invoice{ID: "inv-1", CustomerID: "c-1", AmountCents: 150000, Status: entity.StatusPaid, Date: time.Date(2023, 10, 4, 0, 0, 0, 0, time.UTC)},
			CustomerName: "Lee Robinson", CustomerEmail: "lee@robinson.com",
		}},
		count: 1,
	}
	app, _ := buildInvoiceApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/invoices/?query=lee&page=1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page struct {
		Invoices []struct {
			Amount string `json:"amount"`
			Date   string `json:"date"`
		} `json:"invoices"`
		TotalPages int `json:"total_pages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Len(t, page.Invoices, 1)
	assert.Equal(t, "$1,500.00", page.Invoices[0].Amount)
	assert.Equal(t, "Oct 4, 2023", page.Invoices[0].Date)
	assert.Equal(t, 1, page.TotalPages)

	// Segunda lectura: el repo ya no tiene filas, pero la vista sale cacheada.
	repo.rows = nil
	repo.count = 0
	resp2, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/dashboard/invoices/?query=lee&page=1", nil), -1)
	require.NoError(t, err)
	defer resp2.Body.Close()

	var page2 struct {
		Invoices []json.RawMessage `json:"invoices"`
	}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&page2))
	assert.Len(t, page2.Invoices, 1, "la segunda lectura debe servirse desde la caché")
}
