package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/viewmall/commerce-api/internal/api/metrics"
	"github.com/viewmall/commerce-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		switch code {
		case http.StatusUnauthorized:
			metrics.AuthDenialsTotal.WithLabelValues("unauthenticated").Inc()
		case http.StatusForbidden:
			metrics.AuthDenialsTotal.WithLabelValues("forbidden").Inc()
		case http.StatusConflict:
			metrics.AuthDenialsTotal.WithLabelValues("conflict").Inc()
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. The message is the
	// sentinel's text: human-readable, never a stack trace or driver detail.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidRefreshToken),
		errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, err.Error()

	case errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, domain.ErrAdminOnly):
		return http.StatusForbidden, err.Error()

	// Signup collisions are reported as 400 rather than 409: the client
	// treats them as fixable input, matching the public API contract.
	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidRating):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, domain.ErrAnswerExists),
		errors.Is(err, domain.ErrReviewExists),
		errors.Is(err, domain.ErrWishlistExists):
		return http.StatusConflict, err.Error()

	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrQuestionNotFound),
		errors.Is(err, domain.ErrReviewNotFound),
		errors.Is(err, domain.ErrWishlistNotFound):
		return http.StatusNotFound, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
