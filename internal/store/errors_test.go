package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestStorageError_RendersCodeOpAndCause(t *testing.T) {
	err := writeError("save scenario", errors.New("disk full"))

	want := "STORAGE_WRITE: save scenario: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestStorageError_UnwrapReachesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := readError("list scenarios", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(%v, cause) = false, want true", err)
	}
}

func TestIsHelpers_MatchOnlyTheirCode(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name      string
		err       error
		wantInit  bool
		wantRead  bool
		wantWrite bool
	}{
		{name: "init", err: initError("open database", cause), wantInit: true},
		{name: "read", err: readError("get scenario", cause), wantRead: true},
		{name: "write", err: writeError("delete scenario", cause), wantWrite: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInitError(tt.err); got != tt.wantInit {
				t.Errorf("IsInitError() = %v, want %v", got, tt.wantInit)
			}
			if got := IsReadError(tt.err); got != tt.wantRead {
				t.Errorf("IsReadError() = %v, want %v", got, tt.wantRead)
			}
			if got := IsWriteError(tt.err); got != tt.wantWrite {
				t.Errorf("IsWriteError() = %v, want %v", got, tt.wantWrite)
			}
		})
	}
}

func TestIsHelpers_HandleWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("outer context: %w", writeError("save scenario", errors.New("boom")))

	if !IsWriteError(wrapped) {
		t.Errorf("IsWriteError(%v) = false for wrapped error, want true", wrapped)
	}
	if IsReadError(wrapped) {
		t.Errorf("IsReadError(%v) = true for write error, want false", wrapped)
	}
}

func TestIsHelpers_RejectPlainErrors(t *testing.T) {
	plain := errors.New("not a storage error")

	if IsInitError(plain) || IsReadError(plain) || IsWriteError(plain) {
		t.Errorf("Is* helpers matched a plain error: %v", plain)
	}
}
