package handlers_fiber

import (
	"errors"
	"net/http"

	"taskflow/internal/api"
	"taskflow/internal/entities"

	"github.com/gofiber/fiber/v2"
)

const (
	loginPath         = "/login"
	msgSessionExpired = "Session expired, please log in again"
	msgInternal       = "internal error"
	msgInvalidBody    = "invalid body"
	msgInvalidID      = "invalid id"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	resp := api.ErrorResponse{Error: msgInternal}

	var validationErr *entities.ValidationError
	var actionErr *entities.ActionError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		resp.Error = validationErr.Message
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusUnauthorized
		resp.Error = msgSessionExpired
		if errors.As(err, &actionErr) {
			resp.Error = actionErr.Message
		}
		resp.Redirect = loginPath
	case errors.As(err, &actionErr):
		status = upstreamStatus(err)
		resp.Error = actionErr.Message
	}

	return c.Status(status).JSON(resp)
}

// upstreamStatus passes backend client errors through; everything else is a
// bad gateway.
func upstreamStatus(err error) int {
	var apiErr *entities.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= http.StatusBadRequest && apiErr.Status < http.StatusInternalServerError {
		return apiErr.Status
	}
	return http.StatusBadGateway
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(api.ErrorResponse{Error: msg})
}

func pathID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

func redirectFor(next entities.Screen) string {
	if next == "" {
		return ""
	}
	return "/" + string(next)
}
