// Package errs defines the error kinds the catalog pipeline reports.
//
// Repositories raise Storage errors for failed collaborator calls; use
// cases raise Validation, Conflict, NotFound and NotFoundReference
// errors with human-readable messages. The HTTP layer currently maps
// every kind to the same status, but callers and tests can still tell
// them apart through KindOf / IsKind.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// KindValidation marks a bad, missing or out-of-range input field.
	KindValidation Kind = iota
	// KindConflict marks a natural-key uniqueness violation.
	KindConflict
	// KindNotFound marks a missing update/delete target.
	KindNotFound
	// KindNotFoundReference marks a foreign natural key that does not
	// resolve to an existing record.
	KindNotFoundReference
	// KindStorage marks a failed storage collaborator call.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindNotFoundReference:
		return "not_found_reference"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error is a classified error with a client-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Validationf builds a KindValidation error.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a KindConflict error.
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a KindNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NotFoundReferencef builds a KindNotFoundReference error.
func NotFoundReferencef(format string, args ...any) *Error {
	return &Error{Kind: KindNotFoundReference, Message: fmt.Sprintf(format, args...)}
}

// Storage wraps a collaborator failure, keeping the underlying error
// available through Unwrap.
func Storage(err error, format string, args ...any) *Error {
	return &Error{Kind: KindStorage, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the kind of err if it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Kind, true
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
