package pkg

import (
	"errors"
	"net/http"
)

// Error kinds. Every use-case sentinel wraps exactly one of these so the
// transport layer can classify it with errors.Is.
var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrPreconditionFailed    = errors.New("precondition failed")
	ErrForbidden             = errors.New("forbidden")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrUnauthorized          = errors.New("unauthorized")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// NewKindError returns a sentinel that matches both itself and kind.
func NewKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

type kindMapping struct {
	kind   error
	code   string
	status int
}

var kindMappings = []kindMapping{
	{ErrNotFound, "NOT_FOUND", http.StatusNotFound},
	{ErrInvalidArgument, "INVALID_ARGUMENT", http.StatusBadRequest},
	{ErrPreconditionFailed, "PRECONDITION_FAILED", http.StatusForbidden},
	{ErrForbidden, "FORBIDDEN", http.StatusForbidden},
	{ErrConflict, "CONFLICT", http.StatusConflict},
	{ErrDependencyUnavailable, "DEPENDENCY_UNAVAILABLE", http.StatusServiceUnavailable},
	{ErrUnauthorized, "UNAUTHORIZED", http.StatusUnauthorized},
}

// FromError classifies err by kind. Unknown errors become INTERNAL_ERROR and
// keep the cause for debugging.
func FromError(err error) *AppError {
	for _, m := range kindMappings {
		if errors.Is(err, m.kind) {
			return NewDomainError(m.code, err.Error(), nil, m.status)
		}
	}
	return NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
