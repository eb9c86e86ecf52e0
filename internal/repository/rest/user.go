package rest

import (
	"context"
	"net/http"

	"taskflow/internal/entities"
	"taskflow/internal/mapper"
	"taskflow/internal/wire"
)

// ListUsers returns every known user.
func (c *Client) ListUsers(ctx context.Context) ([]entities.User, error) {
	raw, err := c.do(ctx, http.MethodGet, "users", nil)
	if err != nil {
		return nil, err
	}
	list, err := wire.DecodeUsers(raw)
	if err != nil {
		return nil, err
	}
	return mapper.FromWireUsers(list), nil
}
