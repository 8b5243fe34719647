package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"taskplanner/pkg/middleware"
)

func New(
	e *echo.Echo,
	corsOrigins []string,
	planCreate func(echo.Context) error,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLog())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     corsOrigins,
		AllowCredentials: true,
	}))

	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api/v1")
	api.POST("/plans", planCreate)
	return e
}
