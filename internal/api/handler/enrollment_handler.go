package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aulahub/course-platform/internal/api/metrics"
	"github.com/aulahub/course-platform/internal/core/domain"
	"github.com/aulahub/course-platform/internal/core/ports"
)

// EnrollmentHandler handles HTTP requests for the enrollment ledger.
type EnrollmentHandler struct {
	service ports.EnrollmentService
}

func NewEnrollmentHandler(service ports.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

type enrollmentResponse struct {
	ID    string    `json:"id"`
	Aluno string    `json:"aluno"`
	Curso string    `json:"curso"`
	Data  time.Time `json:"data"`
}

type enrollResponse struct {
	Message    string             `json:"message"`
	Enrollment enrollmentResponse `json:"enrollment"`
}

type courseSummary struct {
	ID        string `json:"id"`
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
}

type myEnrollmentResponse struct {
	ID    string         `json:"id"`
	Curso *courseSummary `json:"curso"`
	Data  time.Time      `json:"data"`
}

type rosterEntryResponse struct {
	ID    string       `json:"id"`
	Aluno *userSummary `json:"aluno"`
	Data  time.Time    `json:"data"`
}

func toEnrollmentResponse(e *domain.Enrollment) enrollmentResponse {
	return enrollmentResponse{ID: e.ID, Aluno: e.AlunoID, Curso: e.CursoID, Data: e.Data}
}

// Enroll handles POST /enrollments/:courseId. Role gating (aluno only) runs
// in the route middleware. A duplicate pair surfaces as 400 with its own
// message, distinct from any generic failure.
//
// @Summary      Enroll in a course
// @Tags         enrollments
// @Produce      json
// @Param        courseId  path      string  true  "Course id"
// @Success      201       {object}  enrollResponse
// @Failure      400       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /enrollments/{courseId} [post]
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	enrollment, err := h.service.Enroll(c.Request().Context(), identity, c.Param("courseId"))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEnrollment) {
			metrics.EnrollmentsTotal.WithLabelValues("duplicate").Inc()
		}
		return err
	}

	metrics.EnrollmentsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, enrollResponse{
		Message:    "Inscrição realizada com sucesso",
		Enrollment: toEnrollmentResponse(enrollment),
	})
}

// Mine handles GET /enrollments/me.
//
// @Summary      List own enrollments
// @Tags         enrollments
// @Produce      json
// @Success      200  {array}   myEnrollmentResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /enrollments/me [get]
func (h *EnrollmentHandler) Mine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	enrollments, err := h.service.ListMine(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	out := make([]myEnrollmentResponse, len(enrollments))
	for i, e := range enrollments {
		item := myEnrollmentResponse{ID: e.Enrollment.ID, Data: e.Enrollment.Data}
		if e.Curso != nil {
			item.Curso = &courseSummary{ID: e.Curso.ID, Titulo: e.Curso.Titulo, Descricao: e.Curso.Descricao}
		}
		out[i] = item
	}
	return c.JSON(http.StatusOK, out)
}

// ForCourse handles GET /enrollments/course/:courseId, the owning
// instructor's roster view.
//
// @Summary      List enrolled students
// @Tags         enrollments
// @Produce      json
// @Param        courseId  path      string  true  "Course id"
// @Success      200       {array}   rosterEntryResponse
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /enrollments/course/{courseId} [get]
func (h *EnrollmentHandler) ForCourse(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	roster, err := h.service.ListForCourse(c.Request().Context(), identity, c.Param("courseId"))
	if err != nil {
		return err
	}

	out := make([]rosterEntryResponse, len(roster))
	for i, e := range roster {
		item := rosterEntryResponse{ID: e.Enrollment.ID, Data: e.Enrollment.Data}
		if e.Aluno != nil {
			summary := toUserSummary(e.Aluno)
			item.Aluno = &summary
		}
		out[i] = item
	}
	return c.JSON(http.StatusOK, out)
}

// Cancel handles DELETE /enrollments/:courseId, self-service cancellation.
//
// @Summary      Cancel own enrollment
// @Tags         enrollments
// @Produce      json
// @Param        courseId  path      string  true  "Course id"
// @Success      200       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /enrollments/{courseId} [delete]
func (h *EnrollmentHandler) Cancel(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Cancel(c.Request().Context(), identity, c.Param("courseId")); err != nil {
		return err
	}

	metrics.EnrollmentsCancelledTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Inscrição cancelada com sucesso"})
}
