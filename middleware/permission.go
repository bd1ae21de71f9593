package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/backoffice-api/utils"
)

// RequireRole lets the request through only when Protected stored the given
// role.
func RequireRole(roleName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalRole).(string)
		if role != roleName {
			return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
				Message: "You don't have the required role to perform this action",
				Error:   "forbidden",
			})
		}
		return c.Next()
	}
}
