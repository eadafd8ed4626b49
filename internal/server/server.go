package server

import (
	"net/http"

	"app/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RouteRegistrarは各ハンドラが実装する。
type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

// Newはechoインスタンスを組み立てて返す。
func New(logger *zerolog.Logger, registrars ...RouteRegistrar) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover(logger))
	e.Use(middleware.RequestLogger(logger))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	for _, r := range registrars {
		r.RegisterRoutes(e)
	}

	return e
}

// Startはサーバを起動する。addrは ":8080" 形式。
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
