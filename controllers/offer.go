package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/backoffice-api/dtos"
	"github.com/meinhoongagan/backoffice-api/services"
)

type OfferHandler struct {
	base
	offers *services.OfferService
}

// CreateOffer godoc
// @Summary Create an offer with its client, property and tasks
// @Description Resolves clientDetails and propertyDetails by id or creates them, then stores the offer and addTasks
// @Tags offers
// @Accept json
// @Produce json
// @Param offer body dtos.CreateOfferRequest true "Offer"
// @Success 201 {object} models.Offer
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/offers [post]
func (h *OfferHandler) CreateOffer(c *fiber.Ctx) error {
	var req dtos.CreateOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	offer, err := h.offers.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return created(c, offer)
}

// GetOffers godoc
// @Summary Get all offers
// @Tags offers
// @Produce json
// @Success 200 {array} models.Offer
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/offers [get]
func (h *OfferHandler) GetOffers(c *fiber.Ctx) error {
	offers, err := h.offers.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(offers)
}

// GetOffer godoc
// @Summary Get an offer by ID
// @Tags offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} models.Offer
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/offers/{id} [get]
func (h *OfferHandler) GetOffer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid offer ID")
	}
	offer, err := h.offers.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(offer)
}

// UpdateOfferStatus godoc
// @Summary Update the status of an offer
// @Tags offers
// @Accept json
// @Produce json
// @Param id path int true "Offer ID"
// @Param status body dtos.UpdateOfferStatusRequest true "Status"
// @Success 200 {object} models.Offer
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/offers/{id}/status [patch]
func (h *OfferHandler) UpdateOfferStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid offer ID")
	}
	var req dtos.UpdateOfferStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	offer, err := h.offers.UpdateStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(offer)
}

// DeleteOffer godoc
// @Summary Delete an offer
// @Tags offers
// @Param id path int true "Offer ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/offers/{id} [delete]
func (h *OfferHandler) DeleteOffer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid offer ID")
	}
	if err := h.offers.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return noContent(c)
}
