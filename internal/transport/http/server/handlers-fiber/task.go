package handlers_fiber

import (
	"net/http"

	"taskflow/internal/api"
	"taskflow/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostTask creates a task.
func (h *Handler) PostTask(c *fiber.Ctx) error {
	return h.saveTask(c, 0, http.StatusCreated)
}

// PutTask updates the task with the id in the path.
func (h *Handler) PutTask(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, msgInvalidID)
	}
	return h.saveTask(c, id, http.StatusOK)
}

func (h *Handler) saveTask(c *fiber.Ctx, id int64, status int) error {
	var body api.TaskRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	draft, err := mapper.FromAPITask(id, body)
	if err != nil {
		return writeError(c, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	task, err := h.uc.SaveTask(c.Context(), draft)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(status).JSON(mapper.ToAPITask(h.uc.Snapshot(), *task))
}

// DeleteTask deletes the task with the id in the path.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, msgInvalidID)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.uc.DeleteTask(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
