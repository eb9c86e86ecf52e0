package rest

import (
	"context"
	"fmt"
	"net/http"

	"taskflow/internal/entities"
	"taskflow/internal/mapper"
	"taskflow/internal/wire"
)

// ListTeams returns all teams without members.
func (c *Client) ListTeams(ctx context.Context) ([]entities.Team, error) {
	raw, err := c.do(ctx, http.MethodGet, "teams", nil)
	if err != nil {
		return nil, err
	}
	list, err := wire.DecodeTeams(raw)
	if err != nil {
		return nil, err
	}

	teams := make([]entities.Team, 0, len(list))
	for _, t := range list {
		teams = append(teams, mapper.FromWireTeam(t, nil))
	}
	return teams, nil
}

// ListTeamMembers returns a team's members in response order.
func (c *Client) ListTeamMembers(ctx context.Context, teamID int64) ([]entities.User, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("teams/%d/members", teamID), nil)
	if err != nil {
		return nil, err
	}
	list, err := wire.DecodeUsers(raw)
	if err != nil {
		return nil, err
	}
	return mapper.FromWireUsers(list), nil
}

// CreateTeam creates a team and returns it without members.
func (c *Client) CreateTeam(ctx context.Context, name string) (*entities.Team, error) {
	raw, err := c.do(ctx, http.MethodPost, "teams", wire.CreateTeamRequest{Name: name})
	if err != nil {
		return nil, err
	}
	t, err := wire.DecodeTeam(raw)
	if err != nil {
		return nil, err
	}
	team := mapper.FromWireTeam(t, nil)
	return &team, nil
}

// DeleteTeam removes a team.
func (c *Client) DeleteTeam(ctx context.Context, teamID int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("teams/%d", teamID), nil)
	return err
}

// AddTeamMember adds a user to a team.
func (c *Client) AddTeamMember(ctx context.Context, teamID, userID int64) error {
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("teams/%d/members", teamID), wire.AddMemberRequest{UserID: userID})
	return err
}
