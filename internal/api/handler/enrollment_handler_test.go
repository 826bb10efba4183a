package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aulahub/course-platform/internal/core/domain"
	"github.com/aulahub/course-platform/internal/core/ports"
)

type stubEnrollmentService struct {
	enrollFn        func(ctx context.Context, identity domain.Identity, cursoID string) (*domain.Enrollment, error)
	cancelFn        func(ctx context.Context, identity domain.Identity, cursoID string) error
	listMineFn      func(ctx context.Context, identity domain.Identity) ([]ports.EnrollmentWithCourse, error)
	listForCourseFn func(ctx context.Context, identity domain.Identity, cursoID string) ([]ports.EnrollmentWithStudent, error)
}

func (s *stubEnrollmentService) Enroll(ctx context.Context, identity domain.Identity, cursoID string) (*domain.Enrollment, error) {
	return s.enrollFn(ctx, identity, cursoID)
}

func (s *stubEnrollmentService) Cancel(ctx context.Context, identity domain.Identity, cursoID string) error {
	return s.cancelFn(ctx, identity, cursoID)
}

func (s *stubEnrollmentService) ListMine(ctx context.Context, identity domain.Identity) ([]ports.EnrollmentWithCourse, error) {
	return s.listMineFn(ctx, identity)
}

func (s *stubEnrollmentService) ListForCourse(ctx context.Context, identity domain.Identity, cursoID string) ([]ports.EnrollmentWithStudent, error) {
	return s.listForCourseFn(ctx, identity, cursoID)
}

func enrollmentContext(e *echo.Echo, method, target string, identity domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("identity", identity)
	return c, rec
}

func TestEnrollmentHandler_Enroll_Success(t *testing.T) {
	e := newTestEcho()
	now := time.Now().UTC()
	stub := &stubEnrollmentService{
		enrollFn: func(_ context.Context, identity domain.Identity, cursoID string) (*domain.Enrollment, error) {
			if identity.ID != "stu-1" || cursoID != "course-1" {
				t.Fatalf("unexpected args: %s %s", identity.ID, cursoID)
			}
			return &domain.Enrollment{ID: "enr-1", AlunoID: identity.ID, CursoID: cursoID, Data: now}, nil
		},
	}
	h := NewEnrollmentHandler(stub)

	c, rec := enrollmentContext(e, http.MethodPost, "/enrollments/course-1", domain.Identity{ID: "stu-1", Role: domain.RoleStudent})
	c.SetParamNames("courseId")
	c.SetParamValues("course-1")

	if err := h.Enroll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp enrollResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Inscrição realizada com sucesso" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Enrollment.ID != "enr-1" || resp.Enrollment.Curso != "course-1" {
		t.Fatalf("unexpected enrollment: %+v", resp.Enrollment)
	}
}

func TestEnrollmentHandler_Enroll_DuplicatePropagates(t *testing.T) {
	e := newTestEcho()
	h := NewEnrollmentHandler(&stubEnrollmentService{
		enrollFn: func(_ context.Context, _ domain.Identity, _ string) (*domain.Enrollment, error) {
			return nil, domain.ErrDuplicateEnrollment
		},
	})

	c, _ := enrollmentContext(e, http.MethodPost, "/enrollments/course-1", domain.Identity{ID: "stu-1", Role: domain.RoleStudent})
	c.SetParamNames("courseId")
	c.SetParamValues("course-1")

	// The sentinel reaches the central error handler untouched, which
	// renders it as 400 with its dedicated message.
	if err := h.Enroll(c); err != domain.ErrDuplicateEnrollment {
		t.Fatalf("expected ErrDuplicateEnrollment, got %v", err)
	}
}

func TestEnrollmentHandler_Mine(t *testing.T) {
	e := newTestEcho()
	now := time.Now().UTC()
	h := NewEnrollmentHandler(&stubEnrollmentService{
		listMineFn: func(_ context.Context, _ domain.Identity) ([]ports.EnrollmentWithCourse, error) {
			return []ports.EnrollmentWithCourse{
				{
					Enrollment: &domain.Enrollment{ID: "enr-1", AlunoID: "stu-1", CursoID: "course-1", Data: now},
					Curso:      &domain.Course{ID: "course-1", Titulo: "Go do zero", Descricao: "Curso completo"},
				},
				{
					// Course deleted after enrollment.
					Enrollment: &domain.Enrollment{ID: "enr-2", AlunoID: "stu-1", CursoID: "course-2", Data: now},
				},
			}, nil
		},
	})

	c, rec := enrollmentContext(e, http.MethodGet, "/enrollments/me", domain.Identity{ID: "stu-1", Role: domain.RoleStudent})

	if err := h.Mine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []myEnrollmentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp))
	}
	if resp[0].Curso == nil || resp[0].Curso.Titulo != "Go do zero" {
		t.Fatalf("unexpected curso: %+v", resp[0].Curso)
	}
	if resp[1].Curso != nil {
		t.Fatalf("expected null curso for deleted course, got %+v", resp[1].Curso)
	}
}

func TestEnrollmentHandler_ForCourse(t *testing.T) {
	e := newTestEcho()
	now := time.Now().UTC()
	h := NewEnrollmentHandler(&stubEnrollmentService{
		listForCourseFn: func(_ context.Context, identity domain.Identity, cursoID string) ([]ports.EnrollmentWithStudent, error) {
			if identity.ID != "inst-1" || cursoID != "course-1" {
				t.Fatalf("unexpected args: %s %s", identity.ID, cursoID)
			}
			return []ports.EnrollmentWithStudent{
				{
					Enrollment: &domain.Enrollment{ID: "enr-1", AlunoID: "stu-1", CursoID: cursoID, Data: now},
					Aluno:      &domain.User{ID: "stu-1", Nome: "João", Email: "joao@example.com", Role: domain.RoleStudent},
				},
			}, nil
		},
	})

	c, rec := enrollmentContext(e, http.MethodGet, "/enrollments/course/course-1", domain.Identity{ID: "inst-1", Role: domain.RoleInstructor})
	c.SetParamNames("courseId")
	c.SetParamValues("course-1")

	if err := h.ForCourse(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []rosterEntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(resp))
	}
	if resp[0].Aluno == nil || resp[0].Aluno.Nome != "João" {
		t.Fatalf("unexpected aluno: %+v", resp[0].Aluno)
	}
}

func TestEnrollmentHandler_Cancel(t *testing.T) {
	e := newTestEcho()
	h := NewEnrollmentHandler(&stubEnrollmentService{
		cancelFn: func(_ context.Context, identity domain.Identity, cursoID string) error {
			if identity.ID != "stu-1" || cursoID != "course-1" {
				t.Fatalf("unexpected args: %s %s", identity.ID, cursoID)
			}
			return nil
		},
	})

	c, rec := enrollmentContext(e, http.MethodDelete, "/enrollments/course-1", domain.Identity{ID: "stu-1", Role: domain.RoleStudent})
	c.SetParamNames("courseId")
	c.SetParamValues("course-1")

	if err := h.Cancel(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Inscrição cancelada com sucesso" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestEnrollmentHandler_Cancel_NotFoundPropagates(t *testing.T) {
	e := newTestEcho()
	h := NewEnrollmentHandler(&stubEnrollmentService{
		cancelFn: func(_ context.Context, _ domain.Identity, _ string) error {
			return domain.ErrEnrollmentNotFound
		},
	})

	c, _ := enrollmentContext(e, http.MethodDelete, "/enrollments/course-1", domain.Identity{ID: "stu-1", Role: domain.RoleStudent})
	c.SetParamNames("courseId")
	c.SetParamValues("course-1")

	if err := h.Cancel(c); err != domain.ErrEnrollmentNotFound {
		t.Fatalf("expected ErrEnrollmentNotFound, got %v", err)
	}
}
