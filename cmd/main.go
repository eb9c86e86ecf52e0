// Package main wires the taskflow client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskflow/config"
	"taskflow/internal/repository"
	"taskflow/internal/session"
	"taskflow/internal/store"
	"taskflow/internal/transport/cli"
	"taskflow/internal/transport/http/server"
	"taskflow/internal/usecase"
	"taskflow/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return cli.ExitConfigError
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		return cli.ExitConfigError
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New("rest", log, cfg, session.NewFileStore(cfg.Session.File))
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return cli.ExitConfigError
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return cli.ExitConfigError
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log, repo, store.New(), cfg.API.RequestTimeout)
	serve := func(ctx context.Context) error {
		return server.Serve(ctx, log, cfg, uc)
	}

	return cli.New(uc, os.Stdout, os.Stderr, serve).Run(ctx, os.Args[1:])
}
