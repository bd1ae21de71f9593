package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/backoffice-api/dtos"
	"github.com/meinhoongagan/backoffice-api/middleware"
	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/services"
)

type CompanyHandler struct {
	base
	companies *services.CompanyService
	login     *services.LoginFlow[models.Company, *models.Company]
}

// CompanyLogin godoc
// @Summary Start a company login
// @Description Checks adminEmail and password, then emails a one-time code
// @Tags company
// @Accept json
// @Produce json
// @Param credentials body dtos.CompanyLoginRequest true "Credentials"
// @Success 200 {object} map[string]string
// @Failure 401 {object} utils.ErrorResponse
// @Failure 429 {object} utils.ErrorResponse
// @Router /api/company/company-login [post]
func (h *CompanyHandler) CompanyLogin(c *fiber.Ctx) error {
	var req dtos.CompanyLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	if err := services.Validate(&req); err != nil {
		return h.fail(c, err)
	}
	if err := h.login.Login(c.UserContext(), req.AdminEmail, req.Password); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "OTP sent to your email"})
}

// VerifyOTP godoc
// @Summary Verify a company login code
// @Tags company
// @Accept json
// @Produce json
// @Param code body dtos.CompanyVerifyRequest true "Code"
// @Success 200 {object} map[string]string
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/company/verify-otp [post]
func (h *CompanyHandler) VerifyOTP(c *fiber.Ctx) error {
	var req dtos.CompanyVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	if err := services.Validate(&req); err != nil {
		return h.fail(c, err)
	}
	token, err := h.login.Verify(c.UserContext(), req.AdminEmail, req.OTP)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "OTP verified successfully", "token": token})
}

func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	var req dtos.CompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	company, err := h.companies.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return created(c, fiber.Map{"message": "Company created successfully", "company": company})
}

// EditCompany applies the non-empty fields of the body
func (h *CompanyHandler) EditCompany(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid company ID")
	}
	var req dtos.CompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	company, err := h.companies.Edit(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Company updated successfully", "company": company})
}

// Me returns the company of the session token.
func (h *CompanyHandler) Me(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.LocalAccountID).(uint)
	company, err := h.login.Account(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	company.Password = ""
	return c.JSON(company)
}

type SuperAdminHandler struct {
	base
	login *services.LoginFlow[models.SuperAdmin, *models.SuperAdmin]
}

func (h *SuperAdminHandler) SuperAdminLogin(c *fiber.Ctx) error {
	var req dtos.SuperAdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	if err := services.Validate(&req); err != nil {
		return h.fail(c, err)
	}
	if err := h.login.Login(c.UserContext(), req.Email, req.Password); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "OTP sent to your email"})
}

func (h *SuperAdminHandler) VerifyOTP(c *fiber.Ctx) error {
	var req dtos.SuperAdminVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	if err := services.Validate(&req); err != nil {
		return h.fail(c, err)
	}
	token, err := h.login.Verify(c.UserContext(), req.Email, req.ProvidedOTP)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Login successful", "token": token})
}

func (h *SuperAdminHandler) Me(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.LocalAccountID).(uint)
	admin, err := h.login.Account(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	admin.Password = ""
	return c.JSON(admin)
}
