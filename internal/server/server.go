package server

import (
	"errors"
	"net/http"

	"storeapi/internal/metrics"
	"storeapi/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

// New はミドルウェアとルートを組んだ echo を返す。
func New(h Handlers, m *metrics.Metrics, logger *log.Entry) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// /products/ も /products と同じ
	e.Pre(echomw.RemoveTrailingSlash())

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	if m != nil {
		e.Use(middleware.Metrics(m))
	}

	RegisterRoutes(e, h, m)
	return e
}

// Start は Shutdown されるまでブロックする。
func Start(e *echo.Echo, addr string) error {
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
