package ports

import (
	"context"

	"github.com/aulahub/course-platform/internal/core/domain"
)

// EnrollmentRepository defines persistence operations for the enrollment
// ledger. Uniqueness of (aluno, curso) is enforced by the store itself, not
// by a read-then-write check in the caller.
type EnrollmentRepository interface {
	// Create inserts an enrollment. Returns domain.ErrDuplicateEnrollment
	// when the unique (aluno, curso) index is violated.
	Create(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error)
	// Delete removes the enrollment for the pair. Returns
	// domain.ErrEnrollmentNotFound when no record matches.
	Delete(ctx context.Context, alunoID, cursoID string) error
	Exists(ctx context.Context, alunoID, cursoID string) (bool, error)
	ListByStudent(ctx context.Context, alunoID string) ([]*domain.Enrollment, error)
	ListByCourse(ctx context.Context, cursoID string) ([]*domain.Enrollment, error)
}
