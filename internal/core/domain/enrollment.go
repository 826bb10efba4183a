package domain

import (
	"errors"
	"time"
)

var ErrEnrollmentNotFound = errors.New("enrollment not found")
var ErrDuplicateEnrollment = errors.New("enrollment already exists")

// Enrollment is one (student, course) record in the ledger. The pair is
// unique; the constraint lives in the store so concurrent enrollment
// attempts cannot both succeed.
type Enrollment struct {
	ID      string
	AlunoID string
	CursoID string
	Data    time.Time
}
