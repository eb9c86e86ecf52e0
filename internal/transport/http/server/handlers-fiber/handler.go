// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"sync"

	"taskflow/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the dashboard on top of the usecase layer. The store behind
// it has a single writer, so every intent holds mu.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
	mu  sync.Mutex
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// RegisterHandlers mounts the dashboard routes.
func RegisterHandlers(r fiber.Router, h *Handler) {
	r.Get("/api/dashboard", h.GetDashboard)
	r.Post("/api/dashboard/refresh", h.PostDashboardRefresh)
	r.Patch("/api/dashboard/filters", h.PatchDashboardFilters)
	r.Delete("/api/dashboard/filters", h.DeleteDashboardFilters)

	r.Post("/api/tasks", h.PostTask)
	r.Put("/api/tasks/:id", h.PutTask)
	r.Delete("/api/tasks/:id", h.DeleteTask)

	r.Post("/api/teams", h.PostTeam)
	r.Delete("/api/teams/:id", h.DeleteTeam)
	r.Post("/api/teams/:id/members", h.PostTeamMember)

	r.Post("/api/auth/login", h.PostLogin)
	r.Post("/api/auth/register", h.PostRegister)
	r.Post("/api/auth/logout", h.PostLogout)
	r.Get("/api/auth/state", h.GetAuthState)
}
