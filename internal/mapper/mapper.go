// Package mapper converts between domain models, backend wire shapes and
// dashboard documents.
package mapper

import (
	"time"

	"taskflow/internal/api"
	"taskflow/internal/entities"
	"taskflow/internal/filter"
	"taskflow/internal/store"
	"taskflow/internal/wire"
)

const noDate = "N/A"

// FromWireUser builds an entities.User from a backend user.
func FromWireUser(src wire.User) entities.User {
	return entities.User{ID: src.ID, Username: src.Username}
}

// FromWireUsers maps a backend user list; the result is never nil.
func FromWireUsers(list []wire.User) []entities.User {
	res := make([]entities.User, 0, len(list))
	for _, u := range list {
		res = append(res, FromWireUser(u))
	}
	return res
}

// FromWireTeam builds an entities.Team with the given members attached.
func FromWireTeam(src wire.Team, members []entities.User) entities.Team {
	if members == nil {
		members = []entities.User{}
	}
	return entities.Team{ID: src.ID, Name: src.Name, Members: members}
}

// FromWireTask builds an entities.Task from a backend task.
func FromWireTask(src wire.Task) entities.Task {
	t := entities.Task{
		ID:           src.ID,
		Title:        src.Title,
		Description:  src.Description,
		TeamID:       src.TeamID,
		AssignedToID: src.AssignedToID,
		Status:       entities.TaskStatus(src.Status),
	}
	if src.AssignedByID != nil {
		t.AssignedByID = *src.AssignedByID
	}
	if src.DueDate != nil && !src.DueDate.IsZero() {
		d := src.DueDate.Time
		t.DueDate = &d
	}
	return t
}

// FromWireTasks maps a backend task list; the result is never nil.
func FromWireTasks(list []wire.Task) []entities.Task {
	res := make([]entities.Task, 0, len(list))
	for _, t := range list {
		res = append(res, FromWireTask(t))
	}
	return res
}

// ToTaskPayload sanitizes a draft into the body sent on create and update.
func ToTaskPayload(d entities.TaskDraft) wire.TaskPayload {
	status := d.Status
	if status == "" {
		status = entities.StatusToDo
	}
	p := wire.TaskPayload{
		Title:       d.Title,
		Description: d.Description,
		TeamID:      d.TeamID,
		Status:      string(status),
	}
	if d.AssignedToID != nil && *d.AssignedToID != 0 {
		id := *d.AssignedToID
		p.AssignedToID = &id
	}
	if d.DueDate != nil && !d.DueDate.IsZero() {
		date := wire.NewDate(*d.DueDate)
		p.DueDate = &date
	}
	return p
}

// FormatDate renders a due date as YYYY-MM-DD, or N/A when unset.
func FormatDate(d *time.Time) string {
	if d == nil || d.IsZero() {
		return noDate
	}
	return d.Format(time.DateOnly)
}

// ParseDate parses a YYYY-MM-DD form value; empty input is no date.
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return nil, &entities.ValidationError{Field: "DueDate", Message: "Please enter a valid due date"}
	}
	return &t, nil
}

// FromAPITask builds a draft from a dashboard task request.
func FromAPITask(id int64, src api.TaskRequest) (entities.TaskDraft, error) {
	due, err := ParseDate(src.DueDate)
	if err != nil {
		return entities.TaskDraft{}, err
	}
	return entities.TaskDraft{
		ID:           id,
		Title:        src.Title,
		Description:  src.Description,
		TeamID:       src.TeamID,
		AssignedToID: src.AssignedToID,
		DueDate:      due,
		Status:       entities.TaskStatus(src.Status),
	}, nil
}

// ToAPIUser maps entities.User to the dashboard document.
func ToAPIUser(u entities.User) api.User {
	return api.User{ID: u.ID, Username: u.Username}
}

// ToAPIUsers maps a slice of users; the result is never nil.
func ToAPIUsers(list []entities.User) []api.User {
	res := make([]api.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// ToAPITeam maps entities.Team to the dashboard document. Candidates are the
// users that can still be added to it.
func ToAPITeam(t entities.Team, users []entities.User) api.Team {
	return api.Team{
		ID:          t.ID,
		Name:        t.Name,
		MemberCount: len(t.Members),
		Members:     ToAPIUsers(t.Members),
		Candidates:  ToAPIUsers(filter.MemberCandidates(users, t)),
	}
}

// ToAPITask renders a task with names resolved against the snapshot.
func ToAPITask(snap store.Snapshot, t entities.Task) api.Task {
	return api.Task{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		TeamID:         t.TeamID,
		TeamName:       snap.TeamName(t.TeamID),
		AssignedToID:   t.AssignedToID,
		AssignedToName: snap.UserName(t.AssignedToID),
		AssignedByID:   t.AssignedByID,
		AssignedByName: snap.UserName(&t.AssignedByID),
		DueDate:        FormatDate(t.DueDate),
		Status:         string(t.Status),
	}
}

// ToAPIDashboard renders the whole dashboard view.
func ToAPIDashboard(snap store.Snapshot, currentUserID int64) api.Dashboard {
	teams := make([]api.Team, 0, len(snap.Teams))
	for _, t := range snap.Teams {
		teams = append(teams, ToAPITeam(t, snap.Users))
	}
	tasks := make([]api.Task, 0, len(snap.Visible))
	for _, t := range snap.Visible {
		tasks = append(tasks, ToAPITask(snap, t))
	}

	return api.Dashboard{
		CurrentUserID: currentUserID,
		Teams:         teams,
		Tasks:         tasks,
		TotalTasks:    len(snap.Tasks),
		Filters: api.Filters{
			TeamID:     snap.Criteria.TeamID,
			AssigneeID: snap.Criteria.AssigneeID,
			Search:     snap.Criteria.Search,
		},
		AssigneeOptions: ToAPIUsers(snap.AssigneeOptions),
		Users:           ToAPIUsers(snap.Users),
		EmptyHint:       snap.EmptyHint(),
	}
}
