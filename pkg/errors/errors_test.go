// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/codemerge/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "access_error",
			code:    errors.ErrAccess,
			message: "cannot stat entry",
			wantStr: "[ACCESS] cannot stat entry",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrPathTooLong, "path of %d bytes exceeds %d", 5000, 4096)
	if want := "path of 5000 bytes exceeds 4096"; err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("disk full")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrCopy, "write failed")

		if err.Code != errors.ErrCopy {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrCopy)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[COPY] write failed: disk full"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrCopy, "write failed")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrOutputCreate, "cannot create %s", "merged.txt")
		if want := "[OUTPUT_CREATE] cannot create merged.txt: disk full"; err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrAccess, "denied").
		WithDetail("path", "/test/path").
		WithDetail("op", "lstat")

	if err.Details["path"] != "/test/path" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "/test/path")
	}

	if err.Details["op"] != "lstat" {
		t.Errorf("WithDetail() op = %v, want %v", err.Details["op"], "lstat")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrCopy, "error 1")
	err2 := errors.New(errors.ErrCopy, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with CodedError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrTraversal, "root unreadable"),
			code:     errors.ErrTraversal,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrTraversal, "root unreadable"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrAccess, "denied"),
			code:     errors.ErrAccess,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrAccess,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrAccess,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "coded_error",
			err:      errors.New(errors.ErrAllocation, "limit reached"),
			expected: errors.ErrAllocation,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"access", errors.New(errors.ErrAccess, "x"), false},
		{"path too long", errors.New(errors.ErrPathTooLong, "x"), false},
		{"copy", errors.New(errors.ErrCopy, "x"), true},
		{"allocation", errors.New(errors.ErrAllocation, "x"), true},
		{"plain error", stderrors.New("boom"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsFatal(tt.err); got != tt.want {
				t.Errorf("IsFatal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	accessErr := errors.Wrap(rootCause, errors.ErrAccess, "cannot read file")
	copyErr := errors.Wrap(accessErr, errors.ErrCopy, "merge aborted")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(copyErr, errors.ErrCopy) {
			t.Error("Top level should have ErrCopy code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var codedErr *errors.CodedError
		if stderrors.As(copyErr.Unwrap(), &codedErr) {
			if !errors.IsErrorCode(codedErr, errors.ErrAccess) {
				t.Error("Middle error should have ErrAccess code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(copyErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
