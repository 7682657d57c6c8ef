package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/HSouheill/apre_backend/models"
)

// ErrorHandler renders every handler error as a models.Response.
// Server errors are logged with their internal cause and reach the client
// only as a generic message.
func ErrorHandler(logger logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal server error"
		cause := err

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if he.Internal != nil {
				cause = he.Internal
			}
			switch {
			case code < http.StatusInternalServerError:
				message = fmt.Sprint(he.Message)
			case code != http.StatusInternalServerError:
				message = http.StatusText(code)
			}
		}

		entry := logger.WithFields(logrus.Fields{
			"status":     code,
			"method":     c.Request().Method,
			"uri":        c.Request().RequestURI,
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		})
		if code >= http.StatusInternalServerError {
			entry.WithError(cause).Error("request failed")
		} else {
			entry.Debug(message)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, models.Response{Status: code, Message: message})
		}
		if err != nil {
			logger.WithError(err).Warn("failed to write error response")
		}
	}
}
