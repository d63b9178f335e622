package http

import (
	"errors"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

const requestIDKey = "request-id"

// RequestID reuses an incoming X-Request-ID or assigns a new one.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{ContextKey: requestIDKey})
}

// RequestLogger logs each request once it completes, tagged with the id
// set by RequestID.
func RequestLogger(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID, _ := c.Locals(requestIDKey).(string)

		begin := time.Now()
		err := c.Next()
		if err != nil {
			// let the error handler write the status before it is logged
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		logger.Info().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(begin)).
			Msg("Completed request")
		return nil
	}
}

// Recovery turns panics into a 500 and logs the stack.
func Recovery(logger zerolog.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, rvr interface{}) {
			logger.Error().
				Interface("panic", rvr).
				Str("method", c.Method()).
				Str("url", c.OriginalURL()).
				Str("stack_trace", string(debug.Stack())).
				Msg("Recovered from panic")
		},
	})
}

// ErrorHandler renders errors returned by handlers as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
