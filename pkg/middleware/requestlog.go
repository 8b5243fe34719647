package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLog writes one line per request: method, path, status, latency.
func RequestLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let echo's error handler write the response so the status is final
				c.Error(err)
			}
			req := c.Request()
			log.Printf("[http] %s %s %d %s", req.Method, req.URL.Path, c.Response().Status, time.Since(start).Round(time.Millisecond))
			return nil
		}
	}
}
