package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// NewApp wires the handler's routes onto a fiber app.
func NewApp(h *Handler, logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(RequestID(), RequestLogger(logger), Recovery(logger))

	app.Get("/healthz", h.Health)
	app.Post("/layout", h.Layout)

	s := app.Group("/sessions")
	s.Post("", h.CreateSession)
	s.Get("/:id", h.GetSession)
	s.Delete("/:id", h.DeleteSession)
	s.Put("/:id/resume", h.ImportResume)
	s.Post("/:id/actions", h.ApplyAction)
	s.Get("/:id/preview", h.Preview)
	s.Post("/:id/export", h.Export)
	s.Get("/:id/exports", h.ListExports)

	return app
}
