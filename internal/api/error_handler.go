package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/asglabs/mission-control/internal/core/domain"
	"github.com/asglabs/mission-control/internal/infrastructure/llm"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Maps upstream generator failures to 502 (only reachable when the
//     failure happened before any bytes were streamed).
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound, "time entry not found"
	case errors.Is(err, domain.ErrUnknownClient):
		return http.StatusBadRequest, "unknown client"
	case errors.Is(err, domain.ErrInvalidHours):
		return http.StatusBadRequest, err.Error()
	}

	// Upstream generator rejections surface as a bad gateway with a
	// generic retry-suggesting message; the detail stays in the log.
	var apiErr *llm.APIError
	if errors.As(err, &apiErr) {
		log.Error().
			Int("upstream_status", apiErr.StatusCode).
			Str("upstream_type", apiErr.Type).
			Str("path", c.Path()).
			Msg("upstream generator error")
		return http.StatusBadGateway, "assistant is unavailable, please try again"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
