package ports

import (
	"context"

	"github.com/aulahub/course-platform/internal/core/domain"
)

// LessonInput carries one lesson from the transport layer.
type LessonInput struct {
	Titulo     string
	StorageKey string
}

// CreateCourseInput is the DTO for course creation. InstrutorID comes from
// the authenticated identity, never from the request body.
type CreateCourseInput struct {
	Titulo      string
	Descricao   string
	Aulas       []LessonInput
	InstrutorID string
}

// UpdateCourseInput is the DTO for course updates. The identity is required
// for the ownership check.
type UpdateCourseInput struct {
	CourseID  string
	Titulo    string
	Descricao string
	Aulas     []LessonInput
	Identity  domain.Identity
}

// CourseWithInstructor pairs a course with its owning instructor's account.
// Instrutor is nil when the account no longer exists.
type CourseWithInstructor struct {
	Course    *domain.Course
	Instrutor *domain.User
}

// SignedLesson is one lesson with a freshly signed, time-limited download URL.
type SignedLesson struct {
	Titulo string
	URL    string
}

// CourseService owns course lifecycle and lesson-content access.
type CourseService interface {
	Create(ctx context.Context, in CreateCourseInput) (*domain.Course, error)
	List(ctx context.Context) ([]CourseWithInstructor, error)
	Get(ctx context.Context, id string) (*CourseWithInstructor, error)
	// Update fails with domain.ErrCourseNotFound when the course is absent
	// and domain.ErrForbidden when the identity does not own it, in that
	// order.
	Update(ctx context.Context, in UpdateCourseInput) (*domain.Course, error)
	// Delete applies the same predicate chain as Update, then removes the
	// record and best-effort-deletes each lesson's storage object. Storage
	// failures are logged, never returned.
	Delete(ctx context.Context, id string, identity domain.Identity) error
	// Lessons returns one signed URL per lesson, order preserved, for the
	// owning instructor or a currently enrolled student; anyone else gets
	// domain.ErrForbidden.
	Lessons(ctx context.Context, courseID string, identity domain.Identity) ([]SignedLesson, error)
}
