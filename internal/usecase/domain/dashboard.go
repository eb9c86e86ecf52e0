package domain

import (
	"context"

	"taskflow/internal/entities"
	"taskflow/internal/store"

	"golang.org/x/sync/errgroup"
)

// LoadDashboard fetches teams with members, tasks and users and replaces the
// store. Nothing is replaced unless teams, members and tasks all load.
func (u *Usecase) LoadDashboard(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	teams, err := u.repo.ListTeams(ctx)
	if err != nil {
		return u.fail("list teams", err, msgFetchFailed)
	}

	members := make([][]entities.User, len(teams))
	g, gctx := errgroup.WithContext(ctx)
	for i, team := range teams {
		g.Go(func() error {
			list, err := u.repo.ListTeamMembers(gctx, team.ID)
			if err != nil {
				return err
			}
			members[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return u.fail("list team members", err, msgFetchFailed)
	}
	for i := range teams {
		if members[i] == nil {
			members[i] = []entities.User{}
		}
		teams[i].Members = members[i]
	}

	tasks, err := u.repo.ListTasks(ctx)
	if err != nil {
		return u.fail("list tasks", err, msgFetchFailed)
	}

	users, err := u.repo.ListUsers(ctx)
	if err != nil {
		u.log.Warnw("users unavailable, names will show as unknown", "err", err)
		users = []entities.User{}
	}

	u.store.Load(teams, tasks, users)
	u.log.Infow("dashboard loaded", "teams", len(teams), "tasks", len(tasks), "users", len(users))
	return nil
}

// EnsureLoaded loads the dashboard unless it already is.
func (u *Usecase) EnsureLoaded(ctx context.Context) error {
	if u.store.Loaded() {
		return nil
	}
	return u.LoadDashboard(ctx)
}

// Snapshot returns the current view of the store.
func (u *Usecase) Snapshot() store.Snapshot {
	return u.store.Snapshot()
}

// CurrentUserID returns the id of the logged-in user, or zero when unknown.
func (u *Usecase) CurrentUserID() int64 {
	return u.repo.Session().UserID
}

// SelectTeam filters by team and resets the assignee filter.
func (u *Usecase) SelectTeam(teamID int64) { u.store.SelectTeam(teamID) }

// SelectAssignee filters by assignee.
func (u *Usecase) SelectAssignee(userID int64) { u.store.SelectAssignee(userID) }

// Search filters by a case-insensitive substring of title or description.
func (u *Usecase) Search(query string) { u.store.Search(query) }

// ClearFilters drops every filter.
func (u *Usecase) ClearFilters() { u.store.ClearFilters() }
