package api

import (
	"errors"
	"net/http"

	"github.com/rjharshittiwari/A2P-website/internal/service"

	"github.com/labstack/echo/v4"
)

// writeServiceError maps the service error taxonomy to a response exactly
// once. Storage and other unexpected failures stay opaque: the detail is
// logged, never returned.
func writeServiceError(c echo.Context, err error) error {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		message := validationErr.Message
		if message == "" {
			message = "Validation failed"
		}
		return c.JSON(400, map[string]interface{}{
			"status":  "error",
			"message": message,
			"errors":  validationErr.Fields,
		})
	}

	logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Request failed")
	return c.JSON(500, map[string]string{
		"status":  "error",
		"message": "Internal server error",
	})
}

// HTTPErrorHandler normalizes everything echo did not route to a handler:
// unknown paths, disallowed methods and uncaught failures.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := 500
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
	}

	var message string
	switch code {
	case 404:
		message = "Endpoint not found"
	case 405:
		message = "Method not allowed"
	case 500:
		message = "Internal server error"
	default:
		message = http.StatusText(code)
	}

	if code >= 500 {
		logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Unhandled error")
	}

	_ = c.JSON(code, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    code,
	})
}
