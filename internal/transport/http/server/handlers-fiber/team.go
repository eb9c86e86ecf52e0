package handlers_fiber

import (
	"net/http"

	"taskflow/internal/api"
	"taskflow/internal/entities"
	"taskflow/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostTeam creates a team.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body api.TeamRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	team, err := h.uc.CreateTeam(c.Context(), entities.TeamDraft{Name: body.Name})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPITeam(*team, h.uc.Snapshot().Users))
}

// DeleteTeam deletes the team with the id in the path.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, msgInvalidID)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.uc.DeleteTeam(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PostTeamMember adds a user to the team and returns the refreshed team.
func (h *Handler) PostTeamMember(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, msgInvalidID)
	}
	var body api.MemberRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.uc.AddMember(c.Context(), entities.MemberDraft{TeamID: id, UserID: body.UserID}); err != nil {
		return writeError(c, err)
	}
	snap := h.uc.Snapshot()
	for _, t := range snap.Teams {
		if t.ID == id {
			return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(t, snap.Users))
		}
	}
	return c.SendStatus(http.StatusNoContent)
}
