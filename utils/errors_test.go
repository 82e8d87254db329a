package utils

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"validation", ValidationError("bad input"), KindValidation},
		{"not found", NotFoundError("missing"), KindNotFound},
		{"conflict", ConflictError("duplicate"), KindConflict},
		{"forbidden", ForbiddenError("denied"), KindForbidden},
		{"internal", InternalErrorf("boom", errors.New("cause")), KindInternal},
		{"plain error defaults to internal", errors.New("plain"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", NotFoundError("missing"))
	if got := KindOf(wrapped); got != KindNotFound {
		t.Errorf("KindOf(wrapped) = %q, want %q", got, KindNotFound)
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := InternalErrorf("db down", cause)

	if !errors.Is(err, cause) {
		t.Error("internal error should wrap its cause")
	}
	if err.Error() != "db down: connection refused" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
