// Package domain contains application Usecases: mutation handlers that
// validate drafts, call the backend and reconcile the entity store.
package domain

import (
	"context"
	"sync"
	"time"

	"taskflow/internal/entities"
	"taskflow/internal/repository"
	"taskflow/internal/store"
	"taskflow/internal/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces. The store has a single
// writer; callers serialize mutating calls.
type Usecase struct {
	log      *zap.SugaredLogger
	repo     repository.Repository
	store    *store.Store
	validate *validator.Validate
	timeout  time.Duration

	authMu sync.Mutex
	auth   entities.AuthResult
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	st *store.Store,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		log:      log.Named("usecase"),
		repo:     repo,
		store:    st,
		validate: validation.New(),
		timeout:  timeout,
		auth:     entities.AuthResult{State: entities.AuthIdle},
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
