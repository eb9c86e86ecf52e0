// Package repository provides factory for repositories.
package repository

import (
	"fmt"

	"taskflow/config"
	"taskflow/internal/repository/rest"
	"taskflow/internal/session"

	"go.uber.org/zap"
)

// Repository aggregates all backend interfaces.
type Repository interface {
	LifecycleInterface
	TeamInterface
	TaskInterface
	UserInterface
	AuthInterface
}

// New constructs repository backend by name.
func New(name string, log *zap.SugaredLogger, cfg *config.Config, sessions session.Store) (Repository, error) {
	switch name {
	case "rest":
		c, err := rest.New(log, cfg, sessions)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
