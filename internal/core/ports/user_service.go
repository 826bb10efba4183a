package ports

import (
	"context"

	"github.com/aulahub/course-platform/internal/core/domain"
)

// UserService covers profile lookup and the admin user-management surface.
type UserService interface {
	Profile(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// UpdateRole changes a user's role. Fails with domain.ErrInvalidRole
	// for values outside the closed enumeration, then
	// domain.ErrUserNotFound when the user is absent.
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
}
