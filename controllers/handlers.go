// Package controllers holds the fiber handlers. Each handler decodes the
// request, calls one service operation and maps its outcome to a reply.
package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/backoffice-api/services"
	"github.com/sirupsen/logrus"
)

// Handlers groups the handlers of every resource.
type Handlers struct {
	Offers      *OfferHandler
	Clients     *ClientHandler
	Properties  *PropertyHandler
	Tasks       *TaskHandler
	Employees   *EmployeeHandler
	Payrolls    *PayrollHandler
	Expenses    *ExpenseHandler
	Invoices    *InvoiceHandler
	Users       *UserHandler
	Companies   *CompanyHandler
	SuperAdmins *SuperAdminHandler
}

func NewHandlers(svc *services.Services, log *logrus.Logger) *Handlers {
	b := base{log: log}
	return &Handlers{
		Offers:      &OfferHandler{base: b, offers: svc.Offers},
		Clients:     &ClientHandler{base: b, clients: svc.Clients},
		Properties:  &PropertyHandler{base: b, properties: svc.Properties},
		Tasks:       &TaskHandler{base: b, tasks: svc.Tasks},
		Employees:   &EmployeeHandler{base: b, employees: svc.Employees},
		Payrolls:    &PayrollHandler{base: b, payrolls: svc.Payrolls},
		Expenses:    &ExpenseHandler{base: b, expenses: svc.Expenses},
		Invoices:    &InvoiceHandler{base: b, invoices: svc.Invoices},
		Users:       &UserHandler{base: b, users: svc.Users},
		Companies:   &CompanyHandler{base: b, companies: svc.Companies, login: svc.CompanyLogin},
		SuperAdmins: &SuperAdminHandler{base: b, login: svc.AdminLogin},
	}
}

// Health answers the root route.
func Health(c *fiber.Ctx) error {
	return c.SendString("Back-office API is running")
}
