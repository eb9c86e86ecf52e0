// Package repository contains repository interfaces for the task backend.
package repository

import (
	"context"

	"taskflow/internal/entities"
)

// LifecycleInterface describes client startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	ListTeams(ctx context.Context) ([]entities.Team, error)
	ListTeamMembers(ctx context.Context, teamID int64) ([]entities.User, error)
	CreateTeam(ctx context.Context, name string) (*entities.Team, error)
	DeleteTeam(ctx context.Context, teamID int64) error
	AddTeamMember(ctx context.Context, teamID, userID int64) error
}

// TaskInterface exposes task-related operations.
type TaskInterface interface {
	ListTasks(ctx context.Context) ([]entities.Task, error)
	CreateTask(ctx context.Context, draft entities.TaskDraft) (*entities.Task, error)
	UpdateTask(ctx context.Context, taskID int64, draft entities.TaskDraft) (*entities.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
}

// AuthInterface exposes authentication and the current session.
type AuthInterface interface {
	Login(ctx context.Context, email, password string) (entities.Session, error)
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context) error
	Session() entities.Session
}
