package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"taskflow/internal/entities"
	"taskflow/internal/filter"
	"taskflow/internal/store"
	"taskflow/internal/usecase/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCLI(uc *mocks.Usecase, serve func(context.Context) error) (*CLI, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return New(uc, &out, &errOut, serve), &out, &errOut
}

func TestRunUsage(t *testing.T) {
	c, out, errOut := newCLI(&mocks.Usecase{}, nil)

	require.Equal(t, ExitInvalidInvocation, c.Run(context.Background(), nil))
	require.Contains(t, errOut.String(), "usage: taskflow")

	require.Equal(t, ExitSuccess, c.Run(context.Background(), []string{"help"}))
	require.Contains(t, out.String(), "commands:")

	errOut.Reset()
	require.Equal(t, ExitInvalidInvocation, c.Run(context.Background(), []string{"frobnicate"}))
	require.Contains(t, errOut.String(), `unknown command "frobnicate"`)
}

func TestRunBadFlags(t *testing.T) {
	c, _, errOut := newCLI(&mocks.Usecase{}, nil)

	require.Equal(t, ExitInvalidInvocation, c.Run(context.Background(), []string{"login", "-nope"}))
	require.Contains(t, errOut.String(), "login:")

	require.Equal(t, ExitInvalidInvocation, c.Run(context.Background(), []string{"logout", "extra"}))
	require.Equal(t, ExitInvalidInvocation, c.Run(context.Background(), []string{"tasks", "-team", "-1"}))
}

func TestLogin(t *testing.T) {
	uc := &mocks.Usecase{}
	uc.On("Login", mock.Anything, entities.LoginDraft{Email: "ann@example.com", Password: "secret1"}).
		Return(entities.AuthResult{State: entities.AuthSuccess, Next: entities.ScreenDashboard}, nil)
	uc.On("CurrentUserID").Return(int64(42))
	c, out, _ := newCLI(uc, nil)

	code := c.Run(context.Background(), []string{"login", "-email", "ann@example.com", "-password", "secret1"})
	require.Equal(t, ExitSuccess, code)
	require.Equal(t, "Logged in as user 42\n", out.String())
}

func TestLoginRejected(t *testing.T) {
	uc := &mocks.Usecase{}
	uc.On("Login", mock.Anything, mock.Anything).Return(
		entities.AuthResult{State: entities.AuthFailed, Message: "Invalid credentials"},
		&entities.ActionError{Message: "Invalid credentials", Err: &entities.APIError{Status: http.StatusUnauthorized}},
	)
	c, _, errOut := newCLI(uc, nil)

	code := c.Run(context.Background(), []string{"login", "-email", "ann@example.com", "-password", "wrong12"})
	require.Equal(t, ExitActionFailed, code)
	require.Equal(t, "Invalid credentials\n", errOut.String())
}

func TestRegister(t *testing.T) {
	uc := &mocks.Usecase{}
	uc.On("Register", mock.Anything, entities.RegisterDraft{
		Username: "ann", Email: "ann@example.com", Password: "secret1", ConfirmPassword: "secret2", AcceptTerms: true,
	}).Return(entities.AuthResult{State: entities.AuthFailed}, &entities.ValidationError{Message: "Passwords do not match"})
	c, _, errOut := newCLI(uc, nil)

	code := c.Run(context.Background(), []string{
		"register", "-username", "ann", "-email", "ann@example.com",
		"-password", "secret1", "-confirm", "secret2", "-accept-terms",
	})
	require.Equal(t, ExitActionFailed, code)
	require.Equal(t, "Passwords do not match\n", errOut.String())
}

func TestLogout(t *testing.T) {
	uc := &mocks.Usecase{}
	uc.On("Logout", mock.Anything).Return(entities.AuthResult{State: entities.AuthIdle, Next: entities.ScreenLogin})
	c, out, _ := newCLI(uc, nil)

	require.Equal(t, ExitSuccess, c.Run(context.Background(), []string{"logout"}))
	require.Equal(t, "Logged out\n", out.String())
}

func TestTasksTable(t *testing.T) {
	users := []entities.User{{ID: 1, Username: "ann"}}
	assignee := int64(1)
	tasks := []entities.Task{
		{ID: 1, Title: "Write docs", TeamID: 10, AssignedToID: &assignee, Status: entities.StatusInProgress},
		{ID: 2, Title: "Ship", TeamID: 10, Status: entities.StatusToDo},
	}
	snap := store.Snapshot{
		Teams:    []entities.Team{{ID: 10, Name: "Core", Members: users}},
		Tasks:    tasks,
		Users:    users,
		Visible:  tasks[:1],
		Criteria: filter.Criteria{Search: "docs"},
	}

	uc := &mocks.Usecase{}
	uc.On("LoadDashboard", mock.Anything).Return(nil)
	uc.On("SelectTeam", int64(0)).Return()
	uc.On("SelectAssignee", int64(0)).Return()
	uc.On("Search", "docs").Return()
	uc.On("Snapshot").Return(snap)
	c, out, _ := newCLI(uc, nil)

	require.Equal(t, ExitSuccess, c.Run(context.Background(), []string{"tasks", "-search", "docs"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, []string{"ID", "TITLE", "STATUS", "TEAM", "ASSIGNEE", "DUE"}, strings.Fields(lines[0]))
	require.Contains(t, lines[1], "Write docs")
	require.Contains(t, lines[1], "In Progress")
	require.Contains(t, lines[1], "Core")
	require.Contains(t, lines[1], "ann")
	require.Contains(t, lines[1], "N/A")
	require.Equal(t, "1 of 2 tasks", lines[3])
	uc.AssertExpectations(t)
}

func TestTasksEmptyHint(t *testing.T) {
	uc := &mocks.Usecase{}
	uc.On("LoadDashboard", mock.Anything).Return(nil)
	uc.On("SelectTeam", int64(3)).Return()
	uc.On("SelectAssignee", int64(0)).Return()
	uc.On("Search", "").Return()
	uc.On("Snapshot").Return(store.Snapshot{Criteria: filter.Criteria{TeamID: 3}})
	c, out, _ := newCLI(uc, nil)

	require.Equal(t, ExitSuccess, c.Run(context.Background(), []string{"tasks", "-team", "3"}))
	require.Equal(t, "Try adjusting your filters\n", out.String())
}

func TestTasksSessionExpired(t *testing.T) {
	uc := &mocks.Usecase{}
	uc.On("LoadDashboard", mock.Anything).Return(&entities.ActionError{
		Message: "Failed to fetch data",
		Err:     &entities.APIError{Status: http.StatusUnauthorized},
	})
	c, _, errOut := newCLI(uc, nil)

	require.Equal(t, ExitSessionExpired, c.Run(context.Background(), []string{"tasks"}))
	require.Contains(t, errOut.String(), "run taskflow login")
}

func TestServe(t *testing.T) {
	called := false
	c, _, _ := newCLI(&mocks.Usecase{}, func(context.Context) error {
		called = true
		return nil
	})
	require.Equal(t, ExitSuccess, c.Run(context.Background(), []string{"serve"}))
	require.True(t, called)

	c, _, _ = newCLI(&mocks.Usecase{}, func(context.Context) error { return errors.New("address in use") })
	require.Equal(t, ExitActionFailed, c.Run(context.Background(), []string{"serve"}))
}

func TestExitCode(t *testing.T) {
	require.Equal(t, ExitSuccess, ExitCode(nil))
	require.Equal(t, ExitInvalidInvocation, ExitCode(invalidInvocationf("x")))
	require.Equal(t, ExitSessionExpired, ExitCode(&entities.APIError{Status: http.StatusUnauthorized}))
	require.Equal(t, ExitActionFailed, ExitCode(errors.New("x")))
}
