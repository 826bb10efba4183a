package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aulahub/course-platform/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp["message"]
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"course not found", domain.ErrCourseNotFound, http.StatusNotFound, "Curso não encontrado"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "Usuário não encontrado"},
		{"enrollment not found", domain.ErrEnrollmentNotFound, http.StatusNotFound, "Inscrição não encontrada"},
		{"duplicate enrollment", domain.ErrDuplicateEnrollment, http.StatusBadRequest, "Você já está inscrito neste curso"},
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest, "E-mail já cadastrado"},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest, "Role inválida"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusBadRequest, "Credenciais inválidas"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "Acesso negado"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, message := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if message != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, message)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrDuplicateEnrollment)

	code, message := renderError(t, wrapped)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if message != "Você já está inscrito neste curso" {
		t.Fatalf("unexpected message: %q", message)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	code, message := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "Não autorizado"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if message != "Não autorizado" {
		t.Fatalf("unexpected message: %q", message)
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	code, message := renderError(t, errors.New("database exploded"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	// The internal detail never leaks to the client.
	if message != "Erro interno no servidor" {
		t.Fatalf("unexpected message: %q", message)
	}
}
