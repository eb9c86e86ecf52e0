package handlers_fiber

import (
	"net/http"

	"taskflow/internal/api"
	"taskflow/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// PostLogin submits the login form.
func (h *Handler) PostLogin(c *fiber.Ctx) error {
	var body api.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	res, err := h.uc.Login(c.Context(), entities.LoginDraft{Email: body.Email, Password: body.Password})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(authResponse(res))
}

// PostRegister submits the registration form.
func (h *Handler) PostRegister(c *fiber.Ctx) error {
	var body api.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	res, err := h.uc.Register(c.Context(), entities.RegisterDraft{
		Username:        body.Username,
		Email:           body.Email,
		Password:        body.Password,
		ConfirmPassword: body.ConfirmPassword,
		AcceptTerms:     body.AcceptTerms,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(authResponse(res))
}

// PostLogout ends the session.
func (h *Handler) PostLogout(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return c.Status(http.StatusOK).JSON(authResponse(h.uc.Logout(c.Context())))
}

// GetAuthState reports the auth flow step and the last message.
func (h *Handler) GetAuthState(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(authResponse(h.uc.AuthState()))
}

func authResponse(res entities.AuthResult) api.AuthResponse {
	return api.AuthResponse{
		State:    string(res.State),
		Redirect: redirectFor(res.Next),
		Message:  res.Message,
	}
}
