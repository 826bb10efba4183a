package ports

import (
	"context"

	"github.com/aulahub/course-platform/internal/core/domain"
)

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	// Update replaces titulo, descricao and aulas of an existing course.
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id string) error
}
