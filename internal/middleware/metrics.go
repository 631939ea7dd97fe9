package middleware

import (
	"time"

	"storeapi/internal/metrics"

	"github.com/labstack/echo/v4"
)

// ルート単位でリクエスト数と処理時間を記録
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			//ステータスを確定させてから記録する
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.ObserveRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

			//外側のアクセスログにも原因を渡す（レスポンスは書き込み済み）
			return err
		}
	}
}
