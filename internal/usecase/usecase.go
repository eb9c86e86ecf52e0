package usecase

import (
	"time"

	"taskflow/internal/repository"
	"taskflow/internal/store"
	"taskflow/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	DashboardUsecaseInterface
	TaskUsecaseInterface
	TeamUsecaseInterface
	AuthUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, repo repository.Repository, st *store.Store, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, repo, st, timeout)
}
