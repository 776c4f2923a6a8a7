package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
)

const internalErrorMessage = "Error interno del servidor."

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes.
//   - Logs provider and unexpected failures with their cause.
//   - Hides failure details in production.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger, production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c, production)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

var kindStatus = []struct {
	kind   error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrMethodNotAllowed, http.StatusMethodNotAllowed},
	{domain.ErrConflict, http.StatusConflict},
}

func resolveError(err error, log zerolog.Logger, c echo.Context, production bool) (int, string) {
	// Echo's own errors (bind failures, 404 from router, auth middleware, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			logFailure(log, c, err)
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var de *domain.Error
	if errors.As(err, &de) {
		for _, ks := range kindStatus {
			if errors.Is(de.Kind, ks.kind) {
				return ks.status, de.Message
			}
		}
	}

	// Provider failures and anything unexpected.
	logFailure(log, c, err)
	if production {
		return http.StatusInternalServerError, internalErrorMessage
	}
	if de != nil {
		return http.StatusInternalServerError, err.Error()
	}
	return http.StatusInternalServerError, internalErrorMessage + " " + err.Error()
}

func logFailure(log zerolog.Logger, c echo.Context, err error) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("request failed")
}
