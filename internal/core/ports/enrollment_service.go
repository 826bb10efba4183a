package ports

import (
	"context"

	"github.com/aulahub/course-platform/internal/core/domain"
)

// EnrollmentWithCourse pairs an enrollment with a summary of its course.
// Curso is nil when the course was deleted after enrollment.
type EnrollmentWithCourse struct {
	Enrollment *domain.Enrollment
	Curso      *domain.Course
}

// EnrollmentWithStudent pairs an enrollment with the enrolled student.
type EnrollmentWithStudent struct {
	Enrollment *domain.Enrollment
	Aluno      *domain.User
}

// EnrollmentService owns the enrollment ledger operations. Role gating
// (aluno for self-service, instrutor for roster access) happens at the
// route layer; resource predicates live here.
type EnrollmentService interface {
	// Enroll records identity's enrollment in the course. Fails with
	// domain.ErrCourseNotFound when the course is absent and
	// domain.ErrDuplicateEnrollment when the pair already exists.
	Enroll(ctx context.Context, identity domain.Identity, cursoID string) (*domain.Enrollment, error)
	// Cancel removes identity's own enrollment; domain.ErrEnrollmentNotFound
	// when no record matches.
	Cancel(ctx context.Context, identity domain.Identity, cursoID string) error
	ListMine(ctx context.Context, identity domain.Identity) ([]EnrollmentWithCourse, error)
	// ListForCourse returns the roster of a course owned by identity;
	// domain.ErrForbidden for any other instructor.
	ListForCourse(ctx context.Context, identity domain.Identity, cursoID string) ([]EnrollmentWithStudent, error)
}
