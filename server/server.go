// Package server exposes the solve service over HTTP.
//
// Routes:
//
//	POST /solve    body: service.Request, reply: service.Response
//	GET  /healthz  liveness probe
//
// Malformed bodies get 400, requests the solver rejects get 422, and
// timeouts get 504.
package server

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/katalvlaran/pressure/internal/ctxlog"
	"github.com/katalvlaran/pressure/service"
)

// New builds the fiber application serving svc. Request logs go to logger.
func New(svc *service.Service, logger *slog.Logger) *fiber.App {
	if logger == nil {
		logger = slog.Default()
	}
	app := fiber.New()

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/solve", func(c fiber.Ctx) error {
		var req service.Request
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
		}
		ctx := ctxlog.WithLogger(c.Context(), logger)
		resp, err := svc.Handle(ctx, req)
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, context.DeadlineExceeded):
			return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{"error": "solve timed out"})
		case err != nil:
			logger.Error("Solve failed.", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(resp)
	})

	return app
}

// Run serves app on addr until ctx is cancelled, then shuts it down.
func Run(ctx context.Context, app *fiber.App, addr string) error {
	logger := ctxlog.FromContext(ctx)
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
	}()
	logger.Info("Server listening.", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Server shutting down.")
		return app.Shutdown()
	}
}
