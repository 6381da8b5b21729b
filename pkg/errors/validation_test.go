package errors

import (
	"strings"
	"testing"

	"github.com/matzehuels/hsmgraph/pkg/hsm"
)

func TestValidateStateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"NS::State<T>", false},
		{"S", false},
		{"", true},
		{" ", true},
		{"bad\nname", true},
	}

	for _, tt := range tests {
		err := ValidateStateName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStateName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeMalformedName) {
			t.Errorf("ValidateStateName(%q) code = %v, want %v", tt.name, GetCode(err), ErrCodeMalformedName)
		}
	}
}

func TestValidateTransitions(t *testing.T) {
	ok := []hsm.Transition{{Source: "A", Kind: hsm.Inner, Target: "B"}}
	if err := ValidateTransitions(ok); err != nil {
		t.Errorf("ValidateTransitions() error = %v", err)
	}

	badName := []hsm.Transition{{Source: "A", Kind: hsm.Inner, Target: ""}}
	if err := ValidateTransitions(badName); !Is(err, ErrCodeMalformedName) {
		t.Errorf("ValidateTransitions(empty target) = %v, want MALFORMED_NAME", err)
	}

	sameID := []hsm.Transition{{Source: "A::B", Kind: hsm.Sibling, Target: "A__B"}}
	if err := ValidateTransitions(sameID); !Is(err, ErrCodeMalformedName) {
		t.Errorf("ValidateTransitions(A::B, A__B) = %v, want MALFORMED_NAME", err)
	}

	sameCluster := []hsm.Transition{{Source: "A::B::X", Kind: hsm.Sibling, Target: "A__B::Y"}}
	if err := ValidateTransitions(sameCluster); !Is(err, ErrCodeMalformedName) {
		t.Errorf("ValidateTransitions(A::B::X, A__B::Y) = %v, want MALFORMED_NAME", err)
	}

	repeated := []hsm.Transition{
		{Source: "M::A", Kind: hsm.Sibling, Target: "M::B"},
		{Source: "M::B", Kind: hsm.Sibling, Target: "M::A"},
		{Source: "M::A", Kind: hsm.Sibling, Target: "M::A"},
	}
	if err := ValidateTransitions(repeated); err != nil {
		t.Errorf("ValidateTransitions(repeated names) error = %v", err)
	}

	badKind := []hsm.Transition{{Source: "A", Kind: hsm.TransitionKind(9), Target: "B"}}
	if err := ValidateTransitions(badKind); !Is(err, ErrCodeInvalidKind) {
		t.Errorf("ValidateTransitions(bad kind) = %v, want INVALID_KIND", err)
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"out.dot", false},
		{"build/graphs/hsm.svg", false},
		{"", true},
		{strings.Repeat("a", 501), true},
		{"bad\x00path", true},
		{" out.dot", true},
	}

	for _, tt := range tests {
		err := ValidatePath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidTopology,
		ErrCodeMalformedName,
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidKind,
		ErrCodeInvalidPath,
		ErrCodeFileNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, c := range codes {
		if seen[c] {
			t.Errorf("duplicate error code: %s", c)
		}
		seen[c] = true
	}
}
