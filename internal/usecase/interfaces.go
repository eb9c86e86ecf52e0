package usecase

import (
	"context"

	"taskflow/internal/entities"
	"taskflow/internal/store"
)

// DashboardUsecaseInterface abstracts loading and filtering the dashboard.
type DashboardUsecaseInterface interface {
	LoadDashboard(ctx context.Context) error
	EnsureLoaded(ctx context.Context) error
	Snapshot() store.Snapshot
	CurrentUserID() int64
	SelectTeam(teamID int64)
	SelectAssignee(userID int64)
	Search(query string)
	ClearFilters()
}

// TaskUsecaseInterface abstracts task mutations.
type TaskUsecaseInterface interface {
	SaveTask(ctx context.Context, draft entities.TaskDraft) (*entities.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
}

// TeamUsecaseInterface abstracts team and membership mutations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, draft entities.TeamDraft) (*entities.Team, error)
	DeleteTeam(ctx context.Context, teamID int64) error
	AddMember(ctx context.Context, draft entities.MemberDraft) error
}

// AuthUsecaseInterface abstracts the login/register flow.
type AuthUsecaseInterface interface {
	Login(ctx context.Context, draft entities.LoginDraft) (entities.AuthResult, error)
	Register(ctx context.Context, draft entities.RegisterDraft) (entities.AuthResult, error)
	Logout(ctx context.Context) entities.AuthResult
	AuthState() entities.AuthResult
}
