package domain

import (
	"errors"
	"time"
)

var ErrCourseNotFound = errors.New("course not found")
var ErrForbidden = errors.New("access forbidden")

// Lesson is a single video lesson inside a course. StorageKey is the opaque
// object-storage key of the video, not a fetchable URL; download URLs are
// signed on demand with a short expiry.
type Lesson struct {
	Titulo     string
	StorageKey string
}

// Course is the aggregate published by an instructor. InstrutorID is a
// reference to the owning user; only that user may mutate or delete the
// course, regardless of role.
type Course struct {
	ID          string
	Titulo      string
	Descricao   string
	InstrutorID string
	Aulas       []Lesson
	CriadoEm    time.Time
}

// OwnedBy reports whether userID is the owning instructor.
func (c *Course) OwnedBy(userID string) bool {
	return c.InstrutorID != "" && c.InstrutorID == userID
}
