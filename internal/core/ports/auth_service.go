package ports

import (
	"context"

	"github.com/aulahub/course-platform/internal/core/domain"
)

// AuthService implements registration, login and logout.
type AuthService interface {
	// Register creates an account. An empty role defaults to aluno.
	Register(ctx context.Context, nome, email, senha string, role domain.Role) (*domain.User, error)
	// Login verifies credentials and returns a signed session token plus
	// the authenticated user.
	Login(ctx context.Context, email, senha string) (string, *domain.User, error)
	// Logout puts the token id on the revocation deny-list until the
	// token's natural expiry.
	Logout(ctx context.Context, identity domain.Identity) error
}
