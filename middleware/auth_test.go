package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", Protected(secret), RequireRole("company"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": c.Locals(LocalAccountID), "role": c.Locals(LocalRole)})
	})
	return app
}

func get(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestProtectedAndRequireRole(t *testing.T) {
	app := newApp()
	exp := time.Now().Add(time.Hour).Unix()

	assert.Equal(t, fiber.StatusOK, get(t, app, sign(t, jwt.MapClaims{"id": 3, "role": "company", "exp": exp})))
	assert.Equal(t, fiber.StatusForbidden, get(t, app, sign(t, jwt.MapClaims{"id": 3, "role": "super_admin", "exp": exp})))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, ""))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, sign(t, jwt.MapClaims{"id": 3, "role": "company", "exp": time.Now().Add(-time.Hour).Unix()})))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, sign(t, jwt.MapClaims{"role": "company", "exp": exp})))
}

func TestExtractAccountID(t *testing.T) {
	id, err := extractAccountID(jwt.MapClaims{"id": float64(7)})
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	id, err = extractAccountID(jwt.MapClaims{"id": "8"})
	require.NoError(t, err)
	assert.Equal(t, uint(8), id)

	_, err = extractAccountID(jwt.MapClaims{"id": true})
	assert.Error(t, err)
}
