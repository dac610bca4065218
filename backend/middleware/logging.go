package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RequestIDKey is where the requestid middleware stores the request id.
const RequestIDKey = "requestid"

func LoggingMiddleware(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqLogger := logger.With().
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Logger()
		c.SetUserContext(reqLogger.WithContext(c.UserContext()))

		// Передаем управление следующему обработчику
		err := c.Next()

		// Логируем информацию о запросе
		status := c.Response().StatusCode()
		event := reqLogger.Info()
		switch {
		case err != nil || status >= fiber.StatusInternalServerError:
			event = reqLogger.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			event = reqLogger.Warn()
		}
		event.
			Str("ip", c.IP()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")

		return err
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
