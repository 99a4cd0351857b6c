// app/echoServer/middleware.go
package echoServer

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterMiddlewares wires the base chain: panic recovery, a uuid request id
// on every response, and the access log.
func RegisterMiddlewares(e *echo.Echo, log *slog.Logger) {
	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Use(accessLog(log))
}

// accessLog writes one slog line per request. Handler errors run through
// c.Error first so the logged status is the one the client saw; 5xx lines
// log at error level.
func accessLog(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			res := c.Response()
			attrs := []any{
				"method", c.Request().Method,
				"path", c.Path(),
				"status", res.Status,
				"bytes", res.Size,
				"latency_ms", time.Since(start).Milliseconds(),
				"req_id", res.Header().Get(echo.HeaderXRequestID),
				"ip", c.RealIP(),
			}
			if res.Status >= 500 {
				log.Error("http", attrs...)
			} else {
				log.Info("http", attrs...)
			}
			return err
		}
	}
}
