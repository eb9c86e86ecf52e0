package handlers_fiber

import (
	"net/http"
	"strings"

	"taskflow/internal/api"
	"taskflow/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard returns the filtered dashboard, loading it on first access.
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.uc.EnsureLoaded(c.Context()); err != nil {
		return writeError(c, err)
	}
	return h.renderDashboard(c)
}

// PostDashboardRefresh reloads everything from the backend.
func (h *Handler) PostDashboardRefresh(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.uc.LoadDashboard(c.Context()); err != nil {
		return writeError(c, err)
	}
	return h.renderDashboard(c)
}

// PatchDashboardFilters updates the filters present in the body. A team
// change resets the assignee before a new assignee is applied.
func (h *Handler) PatchDashboardFilters(c *fiber.Ctx) error {
	var body api.FiltersRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if (body.TeamID != nil && *body.TeamID < 0) || (body.AssigneeID != nil && *body.AssigneeID < 0) {
		return badRequest(c, msgInvalidID)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if body.TeamID != nil {
		h.uc.SelectTeam(*body.TeamID)
	}
	if body.AssigneeID != nil {
		h.uc.SelectAssignee(*body.AssigneeID)
	}
	if body.Search != nil {
		h.uc.Search(strings.TrimSpace(*body.Search))
	}
	return h.renderDashboard(c)
}

// DeleteDashboardFilters clears every filter.
func (h *Handler) DeleteDashboardFilters(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.uc.ClearFilters()
	return h.renderDashboard(c)
}

func (h *Handler) renderDashboard(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(mapper.ToAPIDashboard(h.uc.Snapshot(), h.uc.CurrentUserID()))
}
