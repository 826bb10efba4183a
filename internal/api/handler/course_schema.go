package handler

import "time"

// --- Request types ---

type lessonRequest struct {
	Titulo string `json:"titulo" validate:"required,min=3"`
	// URL carries the object-storage key returned by POST /upload.
	URL string `json:"url" validate:"required"`
}

type createCourseRequest struct {
	Titulo    string          `json:"titulo"    validate:"required,min=3"`
	Descricao string          `json:"descricao" validate:"required,min=10"`
	Aulas     []lessonRequest `json:"aulas"     validate:"required,min=1,dive"`
}

type updateCourseRequest struct {
	Titulo    string          `json:"titulo"    validate:"required,min=3"`
	Descricao string          `json:"descricao" validate:"required,min=10"`
	Aulas     []lessonRequest `json:"aulas"     validate:"required,min=1,dive"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept separate from the
// domain so the JSON contract is not coupled to internal changes.

type lessonResponse struct {
	Titulo string `json:"titulo"`
	URL    string `json:"url"`
}

type instructorSummary struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// courseResponse is returned from create/update, where the instructor is
// the caller and only the id is echoed.
type courseResponse struct {
	ID        string           `json:"id"`
	Titulo    string           `json:"titulo"`
	Descricao string           `json:"descricao"`
	Instrutor string           `json:"instrutor"`
	Aulas     []lessonResponse `json:"aulas"`
	CriadoEm  time.Time        `json:"criadoEm"`
}

// courseDetailResponse is returned from list/get, with the instructor
// account populated. Instrutor is null when the account no longer exists.
type courseDetailResponse struct {
	ID        string             `json:"id"`
	Titulo    string             `json:"titulo"`
	Descricao string             `json:"descricao"`
	Instrutor *instructorSummary `json:"instrutor"`
	Aulas     []lessonResponse   `json:"aulas"`
	CriadoEm  time.Time          `json:"criadoEm"`
}

type signedLessonResponse struct {
	Titulo string `json:"titulo"`
	URL    string `json:"url"`
}
