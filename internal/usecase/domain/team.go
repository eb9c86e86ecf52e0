package domain

import (
	"context"
	"strings"

	"taskflow/internal/entities"
)

// CreateTeam creates a team, fetches its members and appends it to the store.
func (u *Usecase) CreateTeam(ctx context.Context, draft entities.TeamDraft) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	draft.Name = strings.TrimSpace(draft.Name)
	if err := u.check(draft); err != nil {
		return nil, err
	}

	team, err := u.repo.CreateTeam(ctx, draft.Name)
	if err != nil {
		return nil, u.fail("create team", err, msgCreateTeam)
	}
	members, err := u.repo.ListTeamMembers(ctx, team.ID)
	if err != nil {
		return nil, u.fail("list new team members", err, msgCreateTeam)
	}
	if members == nil {
		members = []entities.User{}
	}
	team.Members = members

	u.store.AppendTeam(*team)
	u.log.Infow("team created", "team_id", team.ID, "members", len(members))
	return team, nil
}

// DeleteTeam deletes a team. Filters pointing at it are cleared.
func (u *Usecase) DeleteTeam(ctx context.Context, teamID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID <= 0 {
		return &entities.ValidationError{Field: "TeamID", Message: "Please select a team"}
	}
	if err := u.repo.DeleteTeam(ctx, teamID); err != nil {
		return u.fail("delete team", err, msgDeleteTeam)
	}
	u.store.RemoveTeam(teamID)
	u.log.Infow("team deleted", "team_id", teamID)
	return nil
}

// AddMember adds a user to a team and replaces the team's member list with
// the one the backend reports afterwards.
func (u *Usecase) AddMember(ctx context.Context, draft entities.MemberDraft) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.check(draft); err != nil {
		return err
	}
	if err := u.repo.AddTeamMember(ctx, draft.TeamID, draft.UserID); err != nil {
		return u.fail("add member", err, msgAddMember)
	}
	members, err := u.repo.ListTeamMembers(ctx, draft.TeamID)
	if err != nil {
		return u.fail("list team members", err, msgAddMember)
	}
	if members == nil {
		members = []entities.User{}
	}

	u.store.ReplaceMembers(draft.TeamID, members)
	u.log.Infow("member added", "team_id", draft.TeamID, "user_id", draft.UserID)
	return nil
}
