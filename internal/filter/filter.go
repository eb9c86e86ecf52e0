// Package filter derives the visible task subset and the assignee options
// from stored tasks and teams. Everything here is a pure function of its inputs.
package filter

import (
	"strings"

	"taskflow/internal/entities"
)

// Criteria holds the active filters. Zero ids and an empty search mean "no filter".
type Criteria struct {
	TeamID     int64
	AssigneeID int64
	Search     string
}

// Active reports whether any filter is set.
func (c Criteria) Active() bool {
	return c.TeamID != 0 || c.AssigneeID != 0 || c.Search != ""
}

// WithTeam selects a team. Assignee options are scoped to the team, so the
// assignee filter is reset.
func (c Criteria) WithTeam(teamID int64) Criteria {
	c.TeamID = teamID
	c.AssigneeID = 0
	return c
}

// Predicate decides whether a task is visible.
type Predicate func(entities.Task) bool

// ByTeam keeps tasks of the team; zero keeps everything.
func ByTeam(teamID int64) Predicate {
	return func(t entities.Task) bool {
		return teamID == 0 || t.TeamID == teamID
	}
}

// ByAssignee keeps tasks assigned to the user; zero keeps everything.
func ByAssignee(userID int64) Predicate {
	return func(t entities.Task) bool {
		if userID == 0 {
			return true
		}
		return t.AssignedToID != nil && *t.AssignedToID == userID
	}
}

// BySearch keeps tasks whose title or description contains query, ignoring case.
func BySearch(query string) Predicate {
	needle := strings.ToLower(query)
	return func(t entities.Task) bool {
		if needle == "" {
			return true
		}
		if strings.Contains(strings.ToLower(t.Title), needle) {
			return true
		}
		return t.Description != nil && strings.Contains(strings.ToLower(*t.Description), needle)
	}
}

// Predicates returns one predicate per criterion.
func (c Criteria) Predicates() []Predicate {
	return []Predicate{ByTeam(c.TeamID), ByAssignee(c.AssigneeID), BySearch(c.Search)}
}

// Matches reports whether t satisfies every criterion.
func Matches(t entities.Task, c Criteria) bool {
	for _, p := range c.Predicates() {
		if !p(t) {
			return false
		}
	}
	return true
}

// Where returns the tasks satisfying all predicates, in input order.
// The input slice is never modified.
func Where(tasks []entities.Task, preds ...Predicate) []entities.Task {
	out := make([]entities.Task, 0, len(tasks))
next:
	for _, t := range tasks {
		for _, p := range preds {
			if !p(t) {
				continue next
			}
		}
		out = append(out, t)
	}
	return out
}

// Apply returns the visible tasks for c.
func Apply(tasks []entities.Task, c Criteria) []entities.Task {
	return Where(tasks, func(t entities.Task) bool { return Matches(t, c) })
}

// AssigneeOptions lists users selectable as assignee. With a team selected
// these are its members (none for an unknown team); otherwise the union of all
// members, de-duplicated by id with the first occurrence kept.
func AssigneeOptions(teams []entities.Team, teamID int64) []entities.User {
	if teamID != 0 {
		for _, team := range teams {
			if team.ID == teamID {
				out := make([]entities.User, len(team.Members))
				copy(out, team.Members)
				return out
			}
		}
		return []entities.User{}
	}

	seen := make(map[int64]struct{})
	out := make([]entities.User, 0)
	for _, team := range teams {
		for _, m := range team.Members {
			if _, ok := seen[m.ID]; ok {
				continue
			}
			seen[m.ID] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}

// MemberCandidates lists users that can still join team: every user not
// already a member, in user-list order.
func MemberCandidates(users []entities.User, team entities.Team) []entities.User {
	members := make(map[int64]struct{}, len(team.Members))
	for _, m := range team.Members {
		members[m.ID] = struct{}{}
	}
	out := make([]entities.User, 0, len(users))
	for _, u := range users {
		if _, ok := members[u.ID]; ok {
			continue
		}
		out = append(out, u)
	}
	return out
}
