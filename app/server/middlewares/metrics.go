package middlewares

import (
	"errors"
	"human-sourced-registry/app/server/metrics"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				// 错误还没有写入响应，按 echo 的规则推断状态码
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			// 使用路由模板，避免编号进入标签
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			m.RequestDuration.
				WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())

			return err
		}
	}
}
