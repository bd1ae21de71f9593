package controllers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/backoffice-api/services"
	"github.com/meinhoongagan/backoffice-api/utils"
	"github.com/sirupsen/logrus"
)

var statusByKind = map[services.Kind]int{
	services.KindValidation:        fiber.StatusBadRequest,
	services.KindReferenceNotFound: fiber.StatusBadRequest,
	services.KindNotFound:          fiber.StatusNotFound,
	services.KindCredential:        fiber.StatusUnauthorized,
	services.KindRateLimited:       fiber.StatusTooManyRequests,
	services.KindUnavailable:       fiber.StatusServiceUnavailable,
	services.KindInternal:          fiber.StatusInternalServerError,
}

// base is embedded by every handler.
type base struct {
	log *logrus.Logger
}

// fail writes err as an ErrorResponse. Internal failures are logged and the
// underlying error never reaches the caller.
func (b base) fail(c *fiber.Ctx, err error) error {
	var se *services.Error
	if !errors.As(err, &se) {
		se = &services.Error{Kind: services.KindInternal, Code: services.CodeInternal, Message: "Internal server error", Err: err}
	}
	status, ok := statusByKind[se.Kind]
	if !ok {
		status = fiber.StatusInternalServerError
	}
	if status == fiber.StatusInternalServerError {
		b.log.WithFields(logrus.Fields{
			"status": status,
			"error":  se.Err,
			"path":   c.Path(),
		}).Error(se.Message)
	}
	return c.Status(status).JSON(utils.ErrorResponse{Message: se.Message, Error: se.Code})
}

func (b base) badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
		Message: msg,
		Error:   services.CodeInvalidPayload,
	})
}

// parseID reads the :id path parameter as a positive integer.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, errors.New("id must be positive")
	}
	return uint(id), nil
}

func bodyPatch[T any](c *fiber.Ctx) services.Patch[T] {
	return func(rec *T) error { return json.Unmarshal(c.Body(), rec) }
}

func created(c *fiber.Ctx, v any) error {
	return c.Status(fiber.StatusCreated).JSON(v)
}

func noContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
