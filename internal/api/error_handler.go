package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aulahub/course-platform/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The
// field is named "message" for compatibility with the original frontend.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes and
//     user-facing messages.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<text>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
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
	case errors.Is(err, domain.ErrCourseNotFound):
		return http.StatusNotFound, "Curso não encontrado"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Usuário não encontrado"
	case errors.Is(err, domain.ErrEnrollmentNotFound):
		return http.StatusNotFound, "Inscrição não encontrada"
	case errors.Is(err, domain.ErrDuplicateEnrollment):
		return http.StatusBadRequest, "Você já está inscrito neste curso"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "E-mail já cadastrado"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "Role inválida"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Credenciais inválidas"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Acesso negado"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Erro interno no servidor"
}
