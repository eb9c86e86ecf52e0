// Package mocks provides a testify mock of the usecase layer for delivery tests.
package mocks

import (
	"context"

	"taskflow/internal/entities"
	"taskflow/internal/store"
	"taskflow/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// Usecase mocks usecase.InterfaceUsecase.
type Usecase struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*Usecase)(nil)

func (m *Usecase) LoadDashboard(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *Usecase) EnsureLoaded(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *Usecase) Snapshot() store.Snapshot {
	return m.Called().Get(0).(store.Snapshot)
}

func (m *Usecase) CurrentUserID() int64 {
	return m.Called().Get(0).(int64)
}

func (m *Usecase) SelectTeam(teamID int64)     { m.Called(teamID) }
func (m *Usecase) SelectAssignee(userID int64) { m.Called(userID) }
func (m *Usecase) Search(query string)         { m.Called(query) }
func (m *Usecase) ClearFilters()               { m.Called() }

func (m *Usecase) SaveTask(ctx context.Context, draft entities.TaskDraft) (*entities.Task, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *Usecase) DeleteTask(ctx context.Context, taskID int64) error {
	return m.Called(ctx, taskID).Error(0)
}

func (m *Usecase) CreateTeam(ctx context.Context, draft entities.TeamDraft) (*entities.Team, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *Usecase) DeleteTeam(ctx context.Context, teamID int64) error {
	return m.Called(ctx, teamID).Error(0)
}

func (m *Usecase) AddMember(ctx context.Context, draft entities.MemberDraft) error {
	return m.Called(ctx, draft).Error(0)
}

func (m *Usecase) Login(ctx context.Context, draft entities.LoginDraft) (entities.AuthResult, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(entities.AuthResult), args.Error(1)
}

func (m *Usecase) Register(ctx context.Context, draft entities.RegisterDraft) (entities.AuthResult, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(entities.AuthResult), args.Error(1)
}

func (m *Usecase) Logout(ctx context.Context) entities.AuthResult {
	return m.Called(ctx).Get(0).(entities.AuthResult)
}

func (m *Usecase) AuthState() entities.AuthResult {
	return m.Called().Get(0).(entities.AuthResult)
}
