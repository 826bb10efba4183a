package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/aulahub/course-platform/internal/core/domain"
	"github.com/aulahub/course-platform/internal/core/ports"
)

// CourseService implements course lifecycle and lesson-content access.
type CourseService struct {
	courses     ports.CourseRepository
	users       ports.UserRepository
	enrollments ports.EnrollmentRepository
	signer      ports.StorageSigner
	urlTTL      time.Duration
	logger      zerolog.Logger
}

func NewCourseService(
	courses ports.CourseRepository,
	users ports.UserRepository,
	enrollments ports.EnrollmentRepository,
	signer ports.StorageSigner,
	urlTTL time.Duration,
	logger zerolog.Logger,
) *CourseService {
	if urlTTL <= 0 {
		urlTTL = time.Hour
	}
	return &CourseService{
		courses:     courses,
		users:       users,
		enrollments: enrollments,
		signer:      signer,
		urlTTL:      urlTTL,
		logger:      logger,
	}
}

func (s *CourseService) Create(ctx context.Context, in ports.CreateCourseInput) (*domain.Course, error) {
	aulas := make([]domain.Lesson, len(in.Aulas))
	for i, a := range in.Aulas {
		aulas[i] = domain.Lesson{Titulo: a.Titulo, StorageKey: a.StorageKey}
	}

	course := &domain.Course{
		Titulo:      in.Titulo,
		Descricao:   in.Descricao,
		InstrutorID: in.InstrutorID,
		Aulas:       aulas,
		CriadoEm:    time.Now().UTC(),
	}

	created, err := s.courses.Create(ctx, course)
	if err != nil {
		s.logger.Error().Err(err).Str("instrutor", in.InstrutorID).Msg("failed to create course")
		return nil, err
	}

	s.logger.Info().Str("course", created.ID).Str("instrutor", in.InstrutorID).Msg("course created")
	return created, nil
}

func (s *CourseService) List(ctx context.Context) ([]ports.CourseWithInstructor, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.InstrutorID)
	}
	instructors, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]ports.CourseWithInstructor, len(courses))
	for i, c := range courses {
		out[i] = ports.CourseWithInstructor{Course: c, Instrutor: instructors[c.InstrutorID]}
	}
	return out, nil
}

func (s *CourseService) Get(ctx context.Context, id string) (*ports.CourseWithInstructor, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	instructor, err := s.users.FindByID(ctx, course.InstrutorID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	return &ports.CourseWithInstructor{Course: course, Instrutor: instructor}, nil
}

// Update enforces the mutation predicate chain: course exists, then the
// caller owns it. Admins get no special treatment here; they manage users,
// not course content.
func (s *CourseService) Update(ctx context.Context, in ports.UpdateCourseInput) (*domain.Course, error) {
	course, err := s.courses.FindByID(ctx, in.CourseID)
	if err != nil {
		return nil, err
	}
	if !course.OwnedBy(in.Identity.ID) {
		return nil, domain.ErrForbidden
	}

	course.Titulo = in.Titulo
	course.Descricao = in.Descricao
	course.Aulas = make([]domain.Lesson, len(in.Aulas))
	for i, a := range in.Aulas {
		course.Aulas[i] = domain.Lesson{Titulo: a.Titulo, StorageKey: a.StorageKey}
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Str("course", course.ID).Msg("course updated")
	return course, nil
}

// Delete removes the course record, then best-effort-deletes each lesson's
// storage object. A storage failure never blocks or rolls back the record
// deletion; it is logged and the loop continues.
func (s *CourseService) Delete(ctx context.Context, id string, identity domain.Identity) error {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !course.OwnedBy(identity.ID) {
		return domain.ErrForbidden
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}

	for _, aula := range course.Aulas {
		if aula.StorageKey == "" {
			continue
		}
		if err := s.signer.DeleteObject(ctx, aula.StorageKey); err != nil {
			s.logger.Warn().Err(err).
				Str("course", id).
				Str("key", aula.StorageKey).
				Msg("failed to delete lesson object")
		}
	}

	s.logger.Info().Str("course", id).Int("aulas", len(course.Aulas)).Msg("course deleted")
	return nil
}

// Lessons resolves the course and gates content access: the owning
// instructor always passes; a student passes only with a current
// enrollment; everyone else is forbidden. One URL is signed per lesson,
// order preserved, all with the same expiry window.
func (s *CourseService) Lessons(ctx context.Context, courseID string, identity domain.Identity) ([]ports.SignedLesson, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if !course.OwnedBy(identity.ID) {
		if identity.Role != domain.RoleStudent {
			return nil, domain.ErrForbidden
		}
		enrolled, err := s.enrollments.Exists(ctx, identity.ID, courseID)
		if err != nil {
			return nil, err
		}
		if !enrolled {
			return nil, domain.ErrForbidden
		}
	}

	signed := make([]ports.SignedLesson, len(course.Aulas))
	for i, aula := range course.Aulas {
		signed[i] = ports.SignedLesson{Titulo: aula.Titulo}
		// A lesson without a stored object has nothing to sign; it is
		// returned with an empty URL rather than a presign of "".
		if aula.StorageKey == "" {
			continue
		}
		url, err := s.signer.SignDownload(ctx, aula.StorageKey, s.urlTTL)
		if err != nil {
			return nil, err
		}
		signed[i].URL = url
	}
	return signed, nil
}
