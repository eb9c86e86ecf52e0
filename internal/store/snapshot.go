package store

import (
	"taskflow/internal/entities"
	"taskflow/internal/filter"
)

const (
	placeholderTeam       = "N/A"
	placeholderUnassigned = "Unassigned"
	placeholderUnknown    = "Unknown"

	hintAdjustFilters = "Try adjusting your filters"
	hintFirstTask     = "Create your first task to get started"
)

// Snapshot is a read-only copy of the store prepared for rendering.
type Snapshot struct {
	Teams           []entities.Team
	Tasks           []entities.Task
	Users           []entities.User
	Visible         []entities.Task
	AssigneeOptions []entities.User
	Criteria        filter.Criteria
	Loaded          bool
}

// TeamName resolves a team id; unknown teams render as a placeholder.
func (s Snapshot) TeamName(id int64) string {
	for _, t := range s.Teams {
		if t.ID == id {
			return t.Name
		}
	}
	return placeholderTeam
}

// UserName resolves a user id against the user list.
func (s Snapshot) UserName(id *int64) string {
	if id == nil || *id == 0 {
		return placeholderUnassigned
	}
	for _, u := range s.Users {
		if u.ID == *id {
			return u.Username
		}
	}
	return placeholderUnknown
}

// EmptyHint is shown when no task is visible.
func (s Snapshot) EmptyHint() string {
	if len(s.Visible) > 0 {
		return ""
	}
	if s.Criteria.Active() {
		return hintAdjustFilters
	}
	return hintFirstTask
}
