package catalog

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcelsud/local-library/internal/validator"
)

// ErrNotFound is returned by every store when an id does not resolve
var ErrNotFound = errors.New("not found")

// ErrBookInUse is returned when a book still has copies referencing it
var ErrBookInUse = errors.New("book has copies")

/* Error carries an HTTP-equivalent status alongside the cause
 * Handlers use Status to pick the response code of the error view
 */
type Error struct {
	Status int
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound builds the error returned when an entity id does not resolve
func NotFound(entity, id string) *Error {
	return &Error{
		Status: http.StatusNotFound,
		Msg:    fmt.Sprintf("%s not found: %s", entity, id),
		Err:    ErrNotFound,
	}
}

// StatusCode maps an error to the status of the error view
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

// ValidationError is returned when a submitted book fails its field rules.
// Book holds the sanitized input so the form can be rendered again.
type ValidationError struct {
	Book   Book
	Fields []validator.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid book: %d field(s) failed validation", len(e.Fields))
}
