package rest

import (
	"context"
	"net/http"

	"taskflow/internal/entities"
	"taskflow/internal/wire"
)

// Login exchanges credentials for a token and persists the session.
func (c *Client) Login(ctx context.Context, email, password string) (entities.Session, error) {
	raw, err := c.do(ctx, http.MethodPost, "auth/login", wire.LoginRequest{Email: email, Password: password})
	if err != nil {
		return entities.Session{}, err
	}
	resp, err := wire.DecodeLogin(raw)
	if err != nil {
		return entities.Session{}, err
	}
	if !resp.Success || resp.Token == "" {
		return entities.Session{}, entities.ErrNoToken
	}

	c.setToken(resp.Token)
	s := c.Session()
	if err := c.sessions.Save(s); err != nil {
		c.log.Warnw("persist session failed", "err", err)
	}

	c.log.Infow("logged in", "user_id", s.UserID)
	return s, nil
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	raw, err := c.do(ctx, http.MethodPost, "auth/register", wire.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}
	resp, err := wire.DecodeRegister(raw)
	if err != nil {
		return err
	}
	if !resp.Success {
		return entities.ErrRegistrationRejected
	}

	c.log.Infow("registered", "username", username)
	return nil
}

// Logout ends the server session. The local session is cleared even when the
// call fails.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "auth/logout", nil)

	c.forget()
	if clearErr := c.sessions.Clear(); clearErr != nil {
		c.log.Warnw("clear session failed", "err", clearErr)
	}

	c.log.Infow("logged out", "server_ack", err == nil)
	return err
}
