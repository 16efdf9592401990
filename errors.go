package multiform

import (
	"errors"
	"fmt"
	"net/http"
)

// Decode-time errors. Any of these aborts the whole decode: no partial form
// is ever returned and temp files created so far are removed.
var (
	// ErrHeader is returned when a part has a non-form-data disposition or
	// carries no field name.
	ErrHeader = errors.New("multiform: malformed part header")

	// ErrTooManyParts is returned when the body contains more parts than
	// Config.MaxParts allows.
	ErrTooManyParts = errors.New("multiform: too many parts")

	// ErrIncomplete is returned when the upstream stream fails or terminates
	// before the body is complete, including client disconnects surfaced
	// through context cancellation.
	ErrIncomplete = errors.New("multiform: incomplete multipart body")

	// ErrIO is returned when a temp file cannot be created or written.
	// Unlike the rest of the decode taxonomy this is a server fault, not a
	// client error.
	ErrIO = errors.New("multiform: temp file I/O failed")

	// ErrNotMultipart is returned by DecodeRequest when the request body is
	// not multipart/form-data.
	ErrNotMultipart = errors.New("multiform: request is not multipart/form-data")

	// ErrMissingBoundary is returned by DecodeRequest when the content type
	// carries no boundary parameter.
	ErrMissingBoundary = errors.New("multiform: missing multipart boundary")
)

// Extraction-time errors. These are scoped to a single named field and do not
// invalidate the rest of the form.
var (
	// ErrNotFound is returned when an exactly-one extraction matches no field.
	ErrNotFound = errors.New("multiform: field not found")

	// ErrDuplicateField is returned when a scalar or optional extraction
	// matches more than one field.
	ErrDuplicateField = errors.New("multiform: duplicate field")
)

// BudgetKind identifies which byte budget was exhausted.
type BudgetKind string

const (
	BudgetText BudgetKind = "text"
	BudgetFile BudgetKind = "file"
)

// BudgetError reports that the cumulative bytes of one kind exceeded the
// configured budget. The current part's bytes are discarded; nothing is
// truncated.
type BudgetError struct {
	Kind  BudgetKind
	Limit int64
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("multiform: %s budget of %d bytes exceeded", e.Kind, e.Limit)
}

// TypeError reports that a text field's value could not be parsed into the
// requested type.
type TypeError struct {
	Field string
	Type  string
	Value string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("multiform: field %q: cannot parse %q as %s", e.Field, e.Value, e.Type)
}

// UTF8Error reports that a text part's bytes are not valid UTF-8.
// Offset is the byte offset of the first invalid byte within the part.
type UTF8Error struct {
	Field  string
	Offset int
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("multiform: field %q: invalid UTF-8 at byte %d", e.Field, e.Offset)
}

// StatusCode maps an error from this package onto an HTTP status code,
// distinguishing malformed or over-budget requests (4xx) from internal
// faults (5xx). Unknown errors map to 500.
func StatusCode(err error) int {
	var (
		budgetErr *BudgetError
		typeErr   *TypeError
		utf8Err   *UTF8Error
	)
	switch {
	case errors.As(err, &budgetErr), errors.Is(err, ErrTooManyParts):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrHeader),
		errors.Is(err, ErrIncomplete),
		errors.Is(err, ErrNotMultipart),
		errors.Is(err, ErrMissingBoundary),
		errors.As(err, &utf8Err):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrDuplicateField),
		errors.As(err, &typeErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
