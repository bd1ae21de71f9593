package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/services"
)

type PropertyHandler struct {
	base
	properties *services.PropertyService
}

// GetProperties returns all properties with their client
func (h *PropertyHandler) GetProperties(c *fiber.Ctx) error {
	properties, err := h.properties.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(properties)
}

func (h *PropertyHandler) GetProperty(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid property ID")
	}
	property, err := h.properties.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(property)
}

func (h *PropertyHandler) CreateProperty(c *fiber.Ctx) error {
	property := new(models.Property)
	if err := c.BodyParser(property); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	property, err := h.properties.Create(c.UserContext(), property)
	if err != nil {
		return h.fail(c, err)
	}
	return created(c, property)
}

func (h *PropertyHandler) UpdateProperty(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid property ID")
	}
	property, err := h.properties.Update(c.UserContext(), id, bodyPatch[models.Property](c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(property)
}

func (h *PropertyHandler) DeleteProperty(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid property ID")
	}
	if err := h.properties.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return noContent(c)
}
