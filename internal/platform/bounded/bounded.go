// Package bounded holds the capacity constants and failure taxonomy shared by
// the fixed-size containers (appointment queue, emergency heap, visit history).
package bounded

import (
	"errors"
	"fmt"
	"net/http"
)

// Capacity is the slot count of every fixed-size container.
const Capacity = 10

// TextLimit is the maximum number of characters kept in a patient's name or
// disease field.
const TextLimit = 50

// Kind classifies a capacity failure.
type Kind int

const (
	Full Kind = iota + 1
	Empty
)

func (k Kind) String() string {
	switch k {
	case Full:
		return "full"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Error reports that a container rejected an operation because it was full
// or empty. A rejected operation never changes the container.
type Error struct {
	Container string
	Kind      Kind
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s is %s", e.Container, e.Kind)
}

// Is matches any *Error of the same Kind, so callers can test against
// ErrFull or ErrEmpty without knowing which container failed.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Container != "" && t.Container != e.Container {
		return false
	}
	return t.Kind == e.Kind
}

// Class errors for errors.Is.
var (
	ErrFull  = &Error{Kind: Full}
	ErrEmpty = &Error{Kind: Empty}
)

// NewFull returns the full-condition error for the named container.
func NewFull(container string) *Error {
	return &Error{Container: container, Kind: Full}
}

// NewEmpty returns the empty-condition error for the named container.
func NewEmpty(container string) *Error {
	return &Error{Container: container, Kind: Empty}
}

// HTTPStatus maps a capacity failure onto the status the API reports:
// 409 when full, 404 when empty, 500 for anything else.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrFull):
		return http.StatusConflict
	case errors.Is(err, ErrEmpty):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
