package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/backoffice-api/controllers"
	"github.com/meinhoongagan/backoffice-api/middleware"
	"github.com/meinhoongagan/backoffice-api/services"
)

// SetupCompanyRoutes configures the company account routes
func SetupCompanyRoutes(api fiber.Router, h *controllers.CompanyHandler, jwtSecret string) {
	company := api.Group("/company")

	// Public routes
	company.Post("/company-login", h.CompanyLogin)
	company.Post("/verify-otp", h.VerifyOTP)
	company.Post("/create-company", h.CreateCompany)
	company.Put("/edit-company/:id", h.EditCompany)

	// Protected routes
	company.Get("/me", middleware.Protected(jwtSecret), middleware.RequireRole(services.RoleCompany), h.Me)
}

func SetupSuperAdminRoutes(api fiber.Router, h *controllers.SuperAdminHandler, jwtSecret string) {
	admin := api.Group("/super-admin")
	admin.Post("/super-admin-login", h.SuperAdminLogin)
	admin.Post("/verify-otp", h.VerifyOTP)
	admin.Get("/me", middleware.Protected(jwtSecret), middleware.RequireRole(services.RoleSuperAdmin), h.Me)
}
