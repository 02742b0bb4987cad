package middleware

import (
	"log/slog"
	"net/http"

	"github.com/tkndbj/nar24admin-sub002/internal/delivery/http/response"
	domainerrors "github.com/tkndbj/nar24admin-sub002/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Every outcome
// the operator sees goes through here: guard violations, classified store
// failures and plain internal errors each map to one acknowledgment.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, _ := httpErr.Message.(string)
		_ = response.Error(c, httpErr.Code, http.StatusText(httpErr.Code), message, "")

		return
	}

	m.logger.Error("unhandled error",
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	)
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal error")
}
