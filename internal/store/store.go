// Package store holds the client-side mirror of backend teams, tasks and users
// together with the active filter criteria.
//
// A Store has a single writer: callers serialize mutations. Every accessor
// returns copies, so snapshots handed out never alias the store.
package store

import (
	"taskflow/internal/entities"
	"taskflow/internal/filter"
)

// Store is the entity store of the dashboard.
type Store struct {
	teams    []entities.Team
	tasks    []entities.Task
	users    []entities.User
	criteria filter.Criteria
	loaded   bool
}

// New returns an empty, not yet loaded store.
func New() *Store {
	return &Store{
		teams: []entities.Team{},
		tasks: []entities.Task{},
		users: []entities.User{},
	}
}

// Load replaces the whole store with freshly fetched data. Criteria survive a
// reload unless the selected team is gone.
func (s *Store) Load(teams []entities.Team, tasks []entities.Task, users []entities.User) {
	s.teams = cloneTeams(teams)
	s.tasks = cloneSlice(tasks)
	s.users = cloneSlice(users)
	s.loaded = true

	if s.criteria.TeamID != 0 && s.teamIndex(s.criteria.TeamID) < 0 {
		s.criteria = s.criteria.WithTeam(0)
	}
}

// Reset drops all data and filters, e.g. after logout.
func (s *Store) Reset() {
	*s = *New()
}

// Loaded reports whether Load has been called since the last Reset.
func (s *Store) Loaded() bool { return s.loaded }

// Teams returns all teams with their members.
func (s *Store) Teams() []entities.Team { return cloneTeams(s.teams) }

// Tasks returns all tasks, ignoring filters.
func (s *Store) Tasks() []entities.Task { return cloneSlice(s.tasks) }

// Users returns all users.
func (s *Store) Users() []entities.User { return cloneSlice(s.users) }

// Team returns the team with id.
func (s *Store) Team(id int64) (entities.Team, bool) {
	i := s.teamIndex(id)
	if i < 0 {
		return entities.Team{}, false
	}
	return s.teams[i].Clone(), true
}

// Task returns the task with id.
func (s *Store) Task(id int64) (entities.Task, bool) {
	i := s.taskIndex(id)
	if i < 0 {
		return entities.Task{}, false
	}
	return s.tasks[i], true
}

// AppendTask adds a created task. A task with the same id is replaced instead,
// keeping ids unique.
func (s *Store) AppendTask(t entities.Task) {
	if i := s.taskIndex(t.ID); i >= 0 {
		s.tasks[i] = t
		return
	}
	s.tasks = append(s.tasks, t)
}

// ReplaceTask swaps the stored task with t.ID for t. It reports false when no
// such task is stored.
func (s *Store) ReplaceTask(t entities.Task) bool {
	i := s.taskIndex(t.ID)
	if i < 0 {
		return false
	}
	s.tasks[i] = t
	return true
}

// RemoveTask deletes the task with id.
func (s *Store) RemoveTask(id int64) bool {
	i := s.taskIndex(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	return true
}

// AppendTeam adds a created team. A team with the same id is replaced instead.
func (s *Store) AppendTeam(t entities.Team) {
	t = t.Clone()
	if i := s.teamIndex(t.ID); i >= 0 {
		s.teams[i] = t
		return
	}
	s.teams = append(s.teams, t)
}

// RemoveTeam deletes the team with id. If it was the selected team, the team
// and assignee filters are cleared.
func (s *Store) RemoveTeam(id int64) bool {
	if s.criteria.TeamID == id {
		s.criteria = s.criteria.WithTeam(0)
	}
	i := s.teamIndex(id)
	if i < 0 {
		return false
	}
	s.teams = append(s.teams[:i:i], s.teams[i+1:]...)
	return true
}

// ReplaceMembers sets the member list of a team wholesale.
func (s *Store) ReplaceMembers(teamID int64, members []entities.User) bool {
	i := s.teamIndex(teamID)
	if i < 0 {
		return false
	}
	s.teams[i].Members = cloneSlice(members)
	return true
}

// Criteria returns the active filters.
func (s *Store) Criteria() filter.Criteria { return s.criteria }

// SelectTeam filters by team and resets the assignee filter. Zero selects all teams.
func (s *Store) SelectTeam(teamID int64) {
	s.criteria = s.criteria.WithTeam(teamID)
}

// SelectAssignee filters by assignee. Zero selects everyone.
func (s *Store) SelectAssignee(userID int64) {
	s.criteria.AssigneeID = userID
}

// Search sets the free-text filter.
func (s *Store) Search(query string) {
	s.criteria.Search = query
}

// ClearFilters drops every filter.
func (s *Store) ClearFilters() {
	s.criteria = filter.Criteria{}
}

// Visible returns the tasks passing the active filters.
func (s *Store) Visible() []entities.Task {
	return filter.Apply(s.tasks, s.criteria)
}

// AssigneeOptions returns users selectable in the assignee filter.
func (s *Store) AssigneeOptions() []entities.User {
	return filter.AssigneeOptions(s.teams, s.criteria.TeamID)
}

// Snapshot captures everything the view renders.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Teams:           s.Teams(),
		Tasks:           s.Tasks(),
		Users:           s.Users(),
		Visible:         s.Visible(),
		AssigneeOptions: s.AssigneeOptions(),
		Criteria:        s.criteria,
		Loaded:          s.loaded,
	}
}

func (s *Store) teamIndex(id int64) int {
	for i := range s.teams {
		if s.teams[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) taskIndex(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneTeams(teams []entities.Team) []entities.Team {
	out := make([]entities.Team, 0, len(teams))
	for _, t := range teams {
		out = append(out, t.Clone())
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
