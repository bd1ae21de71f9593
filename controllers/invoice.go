package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/backoffice-api/dtos"
	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/services"
)

type InvoiceHandler struct {
	base
	invoices *services.InvoiceService
}

func (h *InvoiceHandler) GetInvoices(c *fiber.Ctx) error {
	invoices, err := h.invoices.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(invoices)
}

// CreateInvoice godoc
// @Summary Create an invoice
// @Description assignBy and completeBy must be existing user ids
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dtos.InvoiceRequest true "Invoice"
// @Success 201 {object} models.Invoice
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *fiber.Ctx) error {
	var req dtos.InvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	invoice, err := h.invoices.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return created(c, invoice)
}

type UserHandler struct {
	base
	users *services.UserService
}

func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	user := new(models.User)
	if err := c.BodyParser(user); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	user, err := h.users.Create(c.UserContext(), user)
	if err != nil {
		return h.fail(c, err)
	}
	return created(c, user)
}
