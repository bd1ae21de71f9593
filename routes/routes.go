package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/meinhoongagan/backoffice-api/controllers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes mounts every route on app.
func SetupRoutes(app *fiber.App, h *controllers.Handlers, jwtSecret string, registry *prometheus.Registry) {
	app.Get("/", controllers.Health)
	if registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")
	SetupOfferRoutes(api, h.Offers)
	SetupClientRoutes(api, h.Clients)
	SetupPropertyRoutes(api, h.Properties)
	SetupTaskRoutes(api, h.Tasks)
	SetupEmployeeRoutes(api, h.Employees)
	SetupPayrollRoutes(api, h.Payrolls)
	SetupExpenseRoutes(api, h.Expenses)
	SetupInvoiceRoutes(api, h.Invoices, h.Users)
	SetupCompanyRoutes(api, h.Companies, jwtSecret)
	SetupSuperAdminRoutes(api, h.SuperAdmins, jwtSecret)
}
