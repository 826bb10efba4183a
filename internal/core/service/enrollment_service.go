package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/aulahub/course-platform/internal/core/domain"
	"github.com/aulahub/course-platform/internal/core/ports"
)

// EnrollmentService implements the enrollment ledger operations.
type EnrollmentService struct {
	enrollments ports.EnrollmentRepository
	courses     ports.CourseRepository
	users       ports.UserRepository
	logger      zerolog.Logger
}

func NewEnrollmentService(
	enrollments ports.EnrollmentRepository,
	courses ports.CourseRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		courses:     courses,
		users:       users,
		logger:      logger,
	}
}

// Enroll verifies the course exists and inserts the ledger record. There is
// no "already enrolled" pre-check: the unique index on (aluno, curso) is
// the authority, so two concurrent requests cannot both succeed.
func (s *EnrollmentService) Enroll(ctx context.Context, identity domain.Identity, cursoID string) (*domain.Enrollment, error) {
	course, err := s.courses.FindByID(ctx, cursoID)
	if err != nil {
		return nil, err
	}

	enrollment := &domain.Enrollment{
		AlunoID: identity.ID,
		CursoID: course.ID,
		Data:    time.Now().UTC(),
	}

	created, err := s.enrollments.Create(ctx, enrollment)
	if err != nil {
		if !errors.Is(err, domain.ErrDuplicateEnrollment) {
			s.logger.Error().Err(err).Str("aluno", identity.ID).Str("curso", cursoID).Msg("failed to create enrollment")
		}
		return nil, err
	}

	s.logger.Info().Str("aluno", identity.ID).Str("curso", cursoID).Msg("student enrolled")
	return created, nil
}

func (s *EnrollmentService) Cancel(ctx context.Context, identity domain.Identity, cursoID string) error {
	if err := s.enrollments.Delete(ctx, identity.ID, cursoID); err != nil {
		return err
	}
	s.logger.Info().Str("aluno", identity.ID).Str("curso", cursoID).Msg("enrollment cancelled")
	return nil
}

func (s *EnrollmentService) ListMine(ctx context.Context, identity domain.Identity) ([]ports.EnrollmentWithCourse, error) {
	enrollments, err := s.enrollments.ListByStudent(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	out := make([]ports.EnrollmentWithCourse, 0, len(enrollments))
	for _, e := range enrollments {
		course, err := s.courses.FindByID(ctx, e.CursoID)
		if err != nil {
			if errors.Is(err, domain.ErrCourseNotFound) {
				out = append(out, ports.EnrollmentWithCourse{Enrollment: e})
				continue
			}
			return nil, err
		}
		out = append(out, ports.EnrollmentWithCourse{Enrollment: e, Curso: course})
	}
	return out, nil
}

// ListForCourse returns the roster. Predicate order: course exists, then
// the caller owns it.
func (s *EnrollmentService) ListForCourse(ctx context.Context, identity domain.Identity, cursoID string) ([]ports.EnrollmentWithStudent, error) {
	course, err := s.courses.FindByID(ctx, cursoID)
	if err != nil {
		return nil, err
	}
	if !course.OwnedBy(identity.ID) {
		return nil, domain.ErrForbidden
	}

	enrollments, err := s.enrollments.ListByCourse(ctx, cursoID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		ids = append(ids, e.AlunoID)
	}
	students, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]ports.EnrollmentWithStudent, len(enrollments))
	for i, e := range enrollments {
		out[i] = ports.EnrollmentWithStudent{Enrollment: e, Aluno: students[e.AlunoID]}
	}
	return out, nil
}
