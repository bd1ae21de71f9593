package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/backoffice-api/dtos"
	"github.com/meinhoongagan/backoffice-api/services"
)

type ExpenseHandler struct {
	base
	expenses *services.ExpenseService
}

func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	var req dtos.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	expense, err := h.expenses.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return created(c, expense)
}

func (h *ExpenseHandler) GetExpenses(c *fiber.Ctx) error {
	expenses, err := h.expenses.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(expenses)
}

func (h *ExpenseHandler) GetExpense(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid expense ID")
	}
	expense, err := h.expenses.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(expense)
}

func (h *ExpenseHandler) UpdateExpense(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid expense ID")
	}
	var req dtos.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	expense, err := h.expenses.Update(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(expense)
}

func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid expense ID")
	}
	if err := h.expenses.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return noContent(c)
}
