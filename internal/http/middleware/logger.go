package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LoggerLocalKey is the Fiber locals key holding the request-scoped *zap.Logger.
const LoggerLocalKey = "logger"

// Logger is a middleware that logs each HTTP request as one structured zap entry.
// Fields: request_id (from RequestID), method, path, status, latency (milliseconds).
// It also stores a child logger tagged with request_id in locals; handlers fetch it with FromCtx.
func Logger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		reqLog := log.With(zap.String("request_id", rid))
		c.Locals(LoggerLocalKey, reqLog)

		err := c.Next()

		status := statusFrom(c, err)
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Float64("latency", float64(time.Since(start).Microseconds())/1000),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			reqLog.Error("http_request", fields...)
		case status >= fiber.StatusBadRequest:
			reqLog.Warn("http_request", fields...)
		default:
			reqLog.Info("http_request", fields...)
		}

		return err
	}
}

// FromCtx returns the request-scoped logger, or a no-op logger when Logger is not installed.
func FromCtx(c *fiber.Ctx) *zap.Logger {
	if l, ok := c.Locals(LoggerLocalKey).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// statusFrom reports the status the client will see, including errors the
// global ErrorHandler has not rendered yet.
func statusFrom(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if fiberErr, ok := err.(*fiber.Error); ok {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
