package errors

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidFormat, cause, "failed to decode")

	if err.Code != ErrCodeInvalidFormat {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidFormat)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
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
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidTopology,
			expected: false,
		},
		{
			name:     "wrapped by fmt",
			err:      fmt.Errorf("context: %w", New(ErrCodeMalformedName, "test")),
			code:     ErrCodeMalformedName,
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
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
	if got := GetCode(New(ErrCodeUnsupported, "x")); got != ErrCodeUnsupported {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeUnsupported)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "bad line %d", 3)); got != "bad line 3" {
		t.Errorf("UserMessage() = %q, want %q", got, "bad line 3")
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q, want %q", got, "plain")
	}
}

func TestInvalidTopology(t *testing.T) {
	err := InvalidTopology([]string{"A", "B"}, 1000)

	if !Is(err, ErrCodeInvalidTopology) {
		t.Errorf("Is(INVALID_TOPOLOGY) = false for %v", err)
	}

	var te *TopologyError
	if !errors.As(err, &te) {
		t.Fatal("errors.As(*TopologyError) = false")
	}
	if te.Code() != ErrCodeInvalidTopology {
		t.Errorf("Code() = %v, want %v", te.Code(), ErrCodeInvalidTopology)
	}
	if te.Ceiling != 1000 {
		t.Errorf("Ceiling = %d, want 1000", te.Ceiling)
	}

	wrapped := fmt.Errorf("generate: %w", err)
	if got := OffendingStates(wrapped); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("OffendingStates() = %v, want [A B]", got)
	}
	if got := OffendingStates(errors.New("plain")); got != nil {
		t.Errorf("OffendingStates(plain) = %v, want nil", got)
	}

	want := "depth reached 1000 for 2 state(s): A, B"
	if te.Error() != want {
		t.Errorf("TopologyError.Error() = %q, want %q", te.Error(), want)
	}
}
