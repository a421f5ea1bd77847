package bounded

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestError_Message(t *testing.T) {
	err := NewFull("appointment queue")
	if got := err.Error(); got != "appointment queue is full" {
		t.Errorf("Error() = %q, want %q", got, "appointment queue is full")
	}
	if got := NewEmpty("visit history").Error(); got != "visit history is empty" {
		t.Errorf("Error() = %q, want %q", got, "visit history is empty")
	}
}

func TestError_IsClass(t *testing.T) {
	full := NewFull("emergency heap")
	if !errors.Is(full, ErrFull) {
		t.Error("expected full error to match ErrFull")
	}
	if errors.Is(full, ErrEmpty) {
		t.Error("full error must not match ErrEmpty")
	}

	wrapped := fmt.Errorf("insert: %w", NewEmpty("emergency heap"))
	if !errors.Is(wrapped, ErrEmpty) {
		t.Error("expected wrapped empty error to match ErrEmpty")
	}
}

func TestError_IsContainer(t *testing.T) {
	queueFull := NewFull("appointment queue")
	if !errors.Is(queueFull, NewFull("appointment queue")) {
		t.Error("expected match for same container and kind")
	}
	if errors.Is(queueFull, NewFull("visit history")) {
		t.Error("expected no match across containers")
	}
	if errors.Is(queueFull, errors.New("appointment queue is full")) {
		t.Error("expected no match against an unrelated error")
	}
}

func TestKind_String(t *testing.T) {
	if Full.String() != "full" || Empty.String() != "empty" {
		t.Errorf("unexpected kind names: %s %s", Full, Empty)
	}
	if Kind(0).String() != "unknown" {
		t.Errorf("expected unknown for zero kind, got %s", Kind(0))
	}
}

func TestHTTPStatus(t *testing.T) {
	if got := HTTPStatus(NewFull("emergency heap")); got != http.StatusConflict {
		t.Errorf("full: got %d, want 409", got)
	}
	if got := HTTPStatus(fmt.Errorf("pop: %w", NewEmpty("visit history"))); got != http.StatusNotFound {
		t.Errorf("empty: got %d, want 404", got)
	}
	if got := HTTPStatus(errors.New("other")); got != http.StatusInternalServerError {
		t.Errorf("other: got %d, want 500", got)
	}
}
