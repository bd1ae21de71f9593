package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/services"
)

type TaskHandler struct {
	base
	tasks *services.TaskService
}

func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	tasks, err := h.tasks.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(tasks)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid task ID")
	}
	task, err := h.tasks.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(task)
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	task := new(models.Task)
	if err := c.BodyParser(task); err != nil {
		return h.badRequest(c, "Cannot parse JSON")
	}
	task, err := h.tasks.Create(c.UserContext(), task)
	if err != nil {
		return h.fail(c, err)
	}
	return created(c, task)
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid task ID")
	}
	task, err := h.tasks.Update(c.UserContext(), id, bodyPatch[models.Task](c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(task)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.badRequest(c, "Invalid task ID")
	}
	if err := h.tasks.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return noContent(c)
}
