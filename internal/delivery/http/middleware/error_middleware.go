// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cardmatch/config"
	"cardmatch/internal/delivery/http/response"
	domainerrors "cardmatch/internal/domain/errors"
)

// ErrorMiddleware translates errors into the unified error envelope.
type ErrorMiddleware struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(cfg *config.Config, logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{cfg: cfg, logger: logger}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	httpCode := http.StatusInternalServerError
	message := "Internal server error."

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &appErr):
		httpCode = appErr.HTTPCode()
		message = appErr.Message()
		if appErr.Category() == domainerrors.CategoryProgramming {
			m.logger.Error("Programming error",
				slog.String("errorCode", appErr.ErrorCode()),
				slog.String("detail", fmt.Sprintf("%+v", err)),
			)
		}
	case errors.As(err, &httpErr):
		httpCode = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(httpErr.Code)
		}
	default:
		m.logger.Error("Unhandled error", slog.String("detail", fmt.Sprintf("%+v", err)))
	}

	body := response.ErrorBody{
		Status:  response.StatusLabel(httpCode),
		Message: message,
	}
	if m.cfg.Env.Debug {
		body.Stack = fmt.Sprintf("%+v", err)
	}

	if jsonErr := c.JSON(httpCode, body); jsonErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", jsonErr))
	}
}
