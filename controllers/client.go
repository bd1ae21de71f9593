package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/services"
)

type ClientHandler struct {
	base
	clients *services.ClientService
}

func (h *ClientHandler) GetClients(c *fiber.Ctx) error {
	clients, err := h.clients.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(clients)
}

// GetClient returns one client with its properties.
func (h *ClientHandler) GetClient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid client ID")
	}
	client, err := h.clients.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(client)
}

func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	client := new(models.Client)
	if err := c.BodyParser(client); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	client, err := h.clients.Create(c.UserContext(), client)
	if err != nil {
		return h.fail(c, err)
	}
	return created(c, client)
}

func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid client ID")
	}
	client, err := h.clients.Update(c.UserContext(), id, bodyPatch[models.Client](c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(client)
}

func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid client ID")
	}
	if err := h.clients.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return noContent(c)
}
