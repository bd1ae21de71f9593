package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/backoffice-api/controllers"
)

func SetupEmployeeRoutes(api fiber.Router, h *controllers.EmployeeHandler) {
	employees := api.Group("/employees")
	employees.Post("/", h.CreateEmployee)
	employees.Get("/", h.GetEmployees)
	employees.Get("/:id", h.GetEmployee)
	employees.Put("/:id", h.UpdateEmployee)
	employees.Delete("/:id", h.DeleteEmployee)
	employees.Post("/:id/document", h.UploadDocument)
}

func SetupPayrollRoutes(api fiber.Router, h *controllers.PayrollHandler) {
	payrolls := api.Group("/payrolls")
	payrolls.Post("/", h.CreatePayroll)
	payrolls.Get("/", h.GetPayrolls)
	payrolls.Get("/:id", h.GetPayroll)
	payrolls.Put("/:id", h.UpdatePayroll)
	payrolls.Delete("/:id", h.DeletePayroll)
}

func SetupExpenseRoutes(api fiber.Router, h *controllers.ExpenseHandler) {
	expenses := api.Group("/expenses")
	expenses.Post("/", h.CreateExpense)
	expenses.Get("/", h.GetExpenses)
	expenses.Get("/:id", h.GetExpense)
	expenses.Put("/:id", h.UpdateExpense)
	expenses.Delete("/:id", h.DeleteExpense)
}

func SetupInvoiceRoutes(api fiber.Router, h *controllers.InvoiceHandler, users *controllers.UserHandler) {
	invoices := api.Group("/invoices")
	invoices.Get("/", h.GetInvoices)
	invoices.Post("/", h.CreateInvoice)

	u := api.Group("/users")
	u.Get("/", users.GetUsers)
	u.Post("/", users.CreateUser)
}
