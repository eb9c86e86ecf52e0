// Package server runs the local dashboard HTTP surface.
package server

import (
	"context"
	"errors"
	"time"

	"taskflow/config"
	"taskflow/internal/transport/http/middleware"
	handlers_fiber "taskflow/internal/transport/http/server/handlers-fiber"
	"taskflow/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// New builds the fiber app with middleware and routes mounted.
func New(log *zap.SugaredLogger, cfg *config.Config, uc usecase.InterfaceUsecase) *fiber.App {
	serv := fiber.New(fiber.Config{
		ReadTimeout:           cfg.HTTP.RequestTimeout,
		WriteTimeout:          cfg.HTTP.RequestTimeout,
		DisableStartupMessage: true,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.AllowOrigins}))
	serv.Use(middleware.RequestLogger(log.Named("http")))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log.Named("handlers"), uc)
	handlers_fiber.RegisterHandlers(serv, h)
	return serv
}

// Serve listens on cfg.ServerAddr until ctx is done, then shuts down within
// cfg.Server.ShutdownTimeout.
func Serve(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config, uc usecase.InterfaceUsecase) error {
	serv := New(log, cfg, uc)

	errCh := make(chan error, 1)
	go func() {
		log.Infow("dashboard listening", "addr", cfg.ServerAddr())
		errCh <- serv.Listen(cfg.ServerAddr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	return shutdown(log, serv, cfg.Server.ShutdownTimeout)
}

func shutdown(log *zap.SugaredLogger, serv *fiber.App, timeout time.Duration) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- serv.Shutdown()
	}()

	select {
	case err := <-done:
		return err
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", timeout)
		return errors.New("server shutdown timeout")
	}
}
