package domain

import (
	"errors"
	"time"
)

// Role is the closed set of authorization roles. The values are stored
// verbatim in Mongo documents and JWT claims, so they keep the product's
// original Portuguese wording.
type Role string

const (
	RoleStudent    Role = "aluno"
	RoleInstructor Role = "instrutor"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")

// User models a registered account. PasswordHash never leaves the backend.
type User struct {
	ID           string `json:"id"`
	Nome         string `json:"nome"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// Identity is the decoded session token payload attached to each request.
// It is trusted as of issuance time; role changes made afterwards do not
// take effect until the token is reissued.
type Identity struct {
	ID        string
	Nome      string
	Email     string
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}
