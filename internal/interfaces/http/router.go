// Package http expone la API del dashboard de facturación sobre Fiber:
// auth pública, landing de login y las vistas del dashboard detrás del
// gate de sesión.
package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturas-api/internal/application/analytics"
	"github.com/jhoicas/Facturas-api/internal/application/auth"
	"github.com/jhoicas/Facturas-api/internal/application/billing"
	"github.com/jhoicas/Facturas-api/internal/infrastructure/cache"
	"github.com/jhoicas/Facturas-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC   *billing.InvoiceUseCase
	CustomerUC  *billing.CustomerUseCase
	InvoicePDF  *billing.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	Views       *cache.ViewCache
	JWTSecret   string
	SessionTTL  time.Duration
	Session     config.SessionConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Destino del redirect del gate de sesión. Un cliente API que cae acá
	// no tiene sesión activa (o expiró).
	app.Get(deps.Session.LoginPath, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "sesión requerida: autentíquese en POST /api/auth/login",
		})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session, deps.SessionTTL)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Dashboard (protegido: cookie de sesión o Bearer; anónimo → /login)
	dashboard := app.Group(deps.Session.ProtectedPrefix, SessionGate(deps.JWTSecret, deps.Session))

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Views)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/revenue", dashboardHandler.Revenue)

	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF, deps.Views)
	invoices := dashboard.Group("/invoices")
	invoices.Get("/latest", invoiceHandler.Latest) // antes de /:id
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := dashboard.Group("/customers")
	customers.Get("/table", customerHandler.Table)
	customers.Get("/", customerHandler.List)
}
