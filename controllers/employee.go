package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/services"
)

type EmployeeHandler struct {
	base
	employees *services.EmployeeService
}

// CreateEmployee godoc
// @Summary Create a new employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body models.Employee true "Employee"
// @Success 201 {object} models.Employee
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/employees [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	employee := new(models.Employee)
	if err := c.BodyParser(employee); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	employee, err := h.employees.Create(c.UserContext(), employee)
	if err != nil {
		return h.fail(c, err)
	}
	return created(c, employee)
}

func (h *EmployeeHandler) GetEmployees(c *fiber.Ctx) error {
	employees, err := h.employees.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(employees)
}

func (h *EmployeeHandler) GetEmployee(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid employee ID")
	}
	employee, err := h.employees.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(employee)
}

// UpdateEmployee merges the body into the stored employee
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid employee ID")
	}
	employee, err := h.employees.Update(c.UserContext(), id, bodyPatch[models.Employee](c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(employee)
}

func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid employee ID")
	}
	if err := h.employees.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return noContent(c)
}

// UploadDocument godoc
// @Summary Upload a copy of the employee's ID document
// @Tags employees
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Employee ID"
// @Param file formData file true "Document"
// @Success 200 {object} models.Employee
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/employees/{id}/document [post]
func (h *EmployeeHandler) UploadDocument(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid employee ID")
	}
	header, err := c.FormFile("file")
	if err != nil {
		return h.badRequest(c, "No file uploaded")
	}
	file, err := header.Open()
	if err != nil {
		return h.badRequest(c, "Cannot read uploaded file")
	}
	defer file.Close()

	employee, err := h.employees.AttachDocument(c.UserContext(), id, file)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(employee)
}
