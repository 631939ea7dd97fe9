package server

import (
	"storeapi/internal/handler"
	"storeapi/internal/metrics"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Products *handler.ProductHandler
	Orders   *handler.OrderHandler
	Health   *handler.HealthHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers, m *metrics.Metrics) {
	h.Products.RegisterRoutes(e)
	h.Orders.RegisterRoutes(e)
	if h.Health != nil {
		h.Health.RegisterRoutes(e)
	}
	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}
}
