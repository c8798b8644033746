package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeEmptyScale, "scale %s has no labels", "agree")

	if err.Code != ErrCodeEmptyScale {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeEmptyScale)
	}

	if err.Message != "scale agree has no labels" {
		t.Errorf("Message = %v, want %v", err.Message, "scale agree has no labels")
	}

	expected := "EMPTY_SCALE: scale agree has no labels"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidConfig, cause, "failed to read config")

	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidConfig)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "INVALID_CONFIG: failed to read config: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidScaleLength, "test"),
			code:     ErrCodeInvalidScaleLength,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidScaleLength, "test"),
			code:     ErrCodeEmptyScale,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidChart, New(ErrCodeColorCountMismatch, "inner"), "outer"),
			code:     ErrCodeInvalidChart,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmtWrap(New(ErrCodeColumnNotFound, "q1")),
			code:     ErrCodeColumnNotFound,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeColorCountMismatch, "test"),
			expected: ErrCodeColorCountMismatch,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeUnknownScale, "unknown scale %q", "quality"),
			expected: `unknown scale "quality"`,
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func fmtWrap(err error) error {
	return &wrapped{err}
}

type wrapped struct{ err error }

func (w *wrapped) Error() string { return "context: " + w.err.Error() }
func (w *wrapped) Unwrap() error { return w.err }

func TestHint(t *testing.T) {
	if h := Hint(fmtWrap(New(ErrCodeInvalidScaleLength, "scale has 4 labels"))); !strings.Contains(h, "five-point") {
		t.Errorf("Hint() = %q, want five-point suggestion", h)
	}
	if h := Hint(New(ErrCodeInternal, "boom")); h != "" {
		t.Errorf("Hint(internal) = %q, want empty", h)
	}
	if h := Hint(errors.New("plain")); h != "" {
		t.Errorf("Hint(plain) = %q, want empty", h)
	}
}
