package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestRecorder receives one measurement per served HTTP request.
type RequestRecorder interface {
	RecordHTTPRequest(method, path string, duration time.Duration, statusCode int)
}

// SetupRequestMetrics registers the middleware that times every request and
// feeds it to the performance collector. The registered route pattern is used
// as the endpoint key so path parameters collapse into one series.
func SetupRequestMetrics(e *echo.Echo, recorder RequestRecorder) {
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			// Skip swagger assets, they only add noise to the endpoint ranking
			if strings.Contains(path, "/swagger/") {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			statusCode := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					statusCode = httpErr.Code
				} else {
					statusCode = 500
				}
			}
			recorder.RecordHTTPRequest(c.Request().Method, path, time.Since(start), statusCode)
			return err
		}
	})
}
