package mapper

import (
	"testing"
	"time"

	"taskflow/internal/api"
	"taskflow/internal/entities"
	"taskflow/internal/filter"
	"taskflow/internal/store"
	"taskflow/internal/wire"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestFromWireTask(t *testing.T) {
	due := wire.NewDate(time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC))
	got := FromWireTask(wire.Task{
		ID:           7,
		Title:        "Write docs",
		TeamID:       2,
		AssignedToID: ptr(int64(5)),
		AssignedByID: ptr(int64(1)),
		DueDate:      &due,
		Status:       "Done",
	})

	require.Equal(t, int64(7), got.ID)
	require.Equal(t, entities.StatusDone, got.Status)
	require.Equal(t, int64(1), got.AssignedByID)
	require.Equal(t, int64(5), *got.AssignedToID)
	require.NotNil(t, got.DueDate)
	require.Equal(t, "2025-03-04", FormatDate(got.DueDate))

	noDue := FromWireTask(wire.Task{ID: 1, Title: "x", TeamID: 1, Status: "To Do", DueDate: &wire.Date{}})
	require.Nil(t, noDue.DueDate)
	require.Zero(t, noDue.AssignedByID)
}

func TestFromWireTeamNeverNilMembers(t *testing.T) {
	team := FromWireTeam(wire.Team{ID: 1, Name: "Core"}, nil)
	require.NotNil(t, team.Members)
	require.Empty(t, team.Members)
	require.NotNil(t, FromWireUsers(nil))
	require.NotNil(t, FromWireTasks(nil))
}

func TestToTaskPayload(t *testing.T) {
	due := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	p := ToTaskPayload(entities.TaskDraft{Title: "A", TeamID: 3, DueDate: &due})
	require.Equal(t, "To Do", p.Status)
	require.Nil(t, p.AssignedToID)
	require.NotNil(t, p.DueDate)
	require.Equal(t, "2025-01-02", p.DueDate.Format(time.DateOnly))

	p = ToTaskPayload(entities.TaskDraft{Title: "A", TeamID: 3, AssignedToID: ptr(int64(0)), Status: entities.StatusInProgress})
	require.Nil(t, p.AssignedToID)
	require.Nil(t, p.DueDate)
	require.Equal(t, "In Progress", p.Status)

	p = ToTaskPayload(entities.TaskDraft{Title: "A", TeamID: 3, AssignedToID: ptr(int64(9))})
	require.Equal(t, int64(9), *p.AssignedToID)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(nil)
	require.NoError(t, err)
	require.Nil(t, d)

	d, err = ParseDate(ptr(""))
	require.NoError(t, err)
	require.Nil(t, d)

	d, err = ParseDate(ptr("2025-12-31"))
	require.NoError(t, err)
	require.Equal(t, "2025-12-31", FormatDate(d))

	_, err = ParseDate(ptr("31/12/2025"))
	require.ErrorIs(t, err, entities.ErrValidation)
}

func TestToAPIDashboard(t *testing.T) {
	users := []entities.User{{ID: 1, Username: "ann"}, {ID: 2, Username: "bob"}}
	snap := store.Snapshot{
		Teams: []entities.Team{{ID: 10, Name: "Core", Members: users}},
		Tasks: []entities.Task{
			{ID: 1, Title: "a", TeamID: 10, AssignedToID: ptr(int64(2)), AssignedByID: 1, Status: entities.StatusToDo},
			{ID: 2, Title: "b", TeamID: 99, AssignedToID: ptr(int64(42)), AssignedByID: 1, Status: entities.StatusDone},
		},
		Users:           users,
		AssigneeOptions: users,
		Criteria:        filter.Criteria{},
	}
	snap.Visible = snap.Tasks

	got := ToAPIDashboard(snap, 1)

	require.Equal(t, int64(1), got.CurrentUserID)
	require.Len(t, got.Teams, 1)
	require.Equal(t, 2, got.Teams[0].MemberCount)
	require.Equal(t, 2, got.TotalTasks)
	require.Empty(t, got.EmptyHint)

	require.Equal(t, "Core", got.Tasks[0].TeamName)
	require.Equal(t, "bob", got.Tasks[0].AssignedToName)
	require.Equal(t, "ann", got.Tasks[0].AssignedByName)
	require.Equal(t, "N/A", got.Tasks[0].DueDate)

	require.Equal(t, "N/A", got.Tasks[1].TeamName)
	require.Equal(t, "Unknown", got.Tasks[1].AssignedToName)

	require.Equal(t, []api.User{{ID: 1, Username: "ann"}, {ID: 2, Username: "bob"}}, got.Users)
	require.NotNil(t, got.Teams[0].Candidates)
	require.Empty(t, got.Teams[0].Candidates)
}

func TestToAPIDashboardEmptyHint(t *testing.T) {
	got := ToAPIDashboard(store.Snapshot{Criteria: filter.Criteria{Search: "zzz"}}, 0)
	require.Equal(t, "Try adjusting your filters", got.EmptyHint)
	require.NotNil(t, got.Tasks)
	require.NotNil(t, got.AssigneeOptions)

	got = ToAPIDashboard(store.Snapshot{}, 0)
	require.Equal(t, "Create your first task to get started", got.EmptyHint)
}
