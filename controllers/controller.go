package controllers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
)

const defaultQueryTimeout = 10 * time.Second

func orDefaultTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultQueryTimeout
	}
	return d
}

// queryContext bounds one database round trip by the request context and timeout
func queryContext(c echo.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), timeout)
}

// internalError hides err from the client; the error handler logs it
func internalError(err error) error {
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error").SetInternal(err)
}

// pathParam returns the decoded value of a path parameter. echo matches on
// URL.RawPath when the request carries escapes such as %2F, and then hands
// back the still-escaped segment.
func pathParam(c echo.Context, name string) (string, error) {
	value := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}
