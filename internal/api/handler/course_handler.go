package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aulahub/course-platform/internal/api/metrics"
	"github.com/aulahub/course-platform/internal/core/domain"
	"github.com/aulahub/course-platform/internal/core/ports"
)

// CourseHandler handles HTTP requests for course operations.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

func toLessonResponses(aulas []domain.Lesson) []lessonResponse {
	out := make([]lessonResponse, len(aulas))
	for i, a := range aulas {
		out[i] = lessonResponse{Titulo: a.Titulo, URL: a.StorageKey}
	}
	return out
}

func toCourseResponse(course *domain.Course) courseResponse {
	return courseResponse{
		ID:        course.ID,
		Titulo:    course.Titulo,
		Descricao: course.Descricao,
		Instrutor: course.InstrutorID,
		Aulas:     toLessonResponses(course.Aulas),
		CriadoEm:  course.CriadoEm,
	}
}

func toCourseDetailResponse(cw ports.CourseWithInstructor) courseDetailResponse {
	resp := courseDetailResponse{
		ID:        cw.Course.ID,
		Titulo:    cw.Course.Titulo,
		Descricao: cw.Course.Descricao,
		Aulas:     toLessonResponses(cw.Course.Aulas),
		CriadoEm:  cw.Course.CriadoEm,
	}
	if cw.Instrutor != nil {
		resp.Instrutor = &instructorSummary{
			ID:    cw.Instrutor.ID,
			Nome:  cw.Instrutor.Nome,
			Email: cw.Instrutor.Email,
		}
	}
	return resp
}

func bindCourseLessons(aulas []lessonRequest) []ports.LessonInput {
	out := make([]ports.LessonInput, len(aulas))
	for i, a := range aulas {
		out[i] = ports.LessonInput{Titulo: a.Titulo, StorageKey: a.URL}
	}
	return out
}

// Create handles POST /courses. Role gating (instrutor only) runs in the
// route middleware; the owning instructor is always the caller.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        body  body      createCourseRequest  true  "Course details"
// @Success      201   {object}  courseResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Payload inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	course, err := h.service.Create(c.Request().Context(), ports.CreateCourseInput{
		Titulo:      req.Titulo,
		Descricao:   req.Descricao,
		Aulas:       bindCourseLessons(req.Aulas),
		InstrutorID: identity.ID,
	})
	if err != nil {
		return err
	}

	metrics.CoursesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toCourseResponse(course))
}

// List handles GET /courses (public).
//
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Success      200  {array}  courseDetailResponse
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]courseDetailResponse, len(courses))
	for i, cw := range courses {
		out[i] = toCourseDetailResponse(cw)
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /courses/:id (public).
//
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  courseDetailResponse
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	cw, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseDetailResponse(*cw))
}

// Update handles PUT /courses/:id. The service resolves the course first
// (404 when absent) and then checks ownership (403), in that order.
//
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Course id"
// @Param        body  body      updateCourseRequest  true  "Course details"
// @Success      200   {object}  courseResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /courses/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Payload inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	course, err := h.service.Update(c.Request().Context(), ports.UpdateCourseInput{
		CourseID:  c.Param("id"),
		Titulo:    req.Titulo,
		Descricao: req.Descricao,
		Aulas:     bindCourseLessons(req.Aulas),
		Identity:  identity,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCourseResponse(course))
}

// Delete handles DELETE /courses/:id.
//
// @Summary      Delete a course
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), identity); err != nil {
		return err
	}

	metrics.CoursesDeletedTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Curso removido com sucesso"})
}

// Lessons handles GET /courses/:id/lessons, returning one freshly signed,
// time-limited download URL per lesson for the owning instructor or an
// enrolled student.
//
// @Summary      Get lesson download URLs
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course id"
// @Success      200  {array}   signedLessonResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id}/lessons [get]
func (h *CourseHandler) Lessons(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	lessons, err := h.service.Lessons(c.Request().Context(), c.Param("id"), identity)
	if err != nil {
		return err
	}

	out := make([]signedLessonResponse, len(lessons))
	for i, l := range lessons {
		out[i] = signedLessonResponse{Titulo: l.Titulo, URL: l.URL}
	}
	metrics.LessonURLsIssuedTotal.Add(float64(len(out)))
	return c.JSON(http.StatusOK, out)
}
