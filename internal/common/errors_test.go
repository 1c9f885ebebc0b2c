package common

import (
	"errors"
	"testing"
)

func TestAppErrorUnwraps(t *testing.T) {
	err := NewAppError("CACHE_ERROR", "store failed", ErrIO)
	if !errors.Is(err, ErrIO) {
		t.Fatalf("AppError does not unwrap to its cause: %v", err)
	}
	if got := err.Error(); got != "CACHE_ERROR: store failed: io error" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestAppErrorWithoutCause(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "missing value", nil)
	if got := err.Error(); got != "CONFIG_ERROR: missing value" {
		t.Fatalf("Error() = %q", got)
	}
	if errors.Unwrap(err) != nil {
		t.Fatal("unexpected cause")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Fatal("WrapError(nil) should be nil")
	}
	wrapped := WrapError(ErrDatabase, "alias lookup")
	if !errors.Is(wrapped, ErrDatabase) {
		t.Fatalf("wrapped error lost its cause: %v", wrapped)
	}
	if wrapped.Error() != "alias lookup: database error" {
		t.Fatalf("Error() = %q", wrapped.Error())
	}
}
