package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/backoffice-api/dtos"
	"github.com/meinhoongagan/backoffice-api/services"
)

type PayrollHandler struct {
	base
	payrolls *services.PayrollService
}

func (h *PayrollHandler) CreatePayroll(c *fiber.Ctx) error {
	var req dtos.PayrollRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	payroll, err := h.payrolls.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return created(c, payroll)
}

func (h *PayrollHandler) GetPayrolls(c *fiber.Ctx) error {
	payrolls, err := h.payrolls.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(payrolls)
}

func (h *PayrollHandler) GetPayroll(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid payroll ID")
	}
	payroll, err := h.payrolls.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(payroll)
}

func (h *PayrollHandler) UpdatePayroll(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid payroll ID")
	}
	var req dtos.PayrollRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	payroll, err := h.payrolls.Update(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(payroll)
}

func (h *PayrollHandler) DeletePayroll(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid payroll ID")
	}
	if err := h.payrolls.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return noContent(c)
}
