package hsm

import (
	"regexp"
	"slices"
	"testing"
)

func TestNamespace(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"NS::Outer::Inner<T>", "NS::Outer"},
		{"A::B::C<D>", "A::B"},
		{"A::B<C<D::E::F>>::G", "A"},
		{"A::B", "A"},
		{"Root", ""},
		{"Root<X::Y>", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Namespace(tt.name); got != tt.want {
			t.Errorf("Namespace(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFriendlyName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"NS::Outer::Inner<T>", "Inner<T>"},
		{"A::B::C<D>", "C<D>"},
		{"A::B<C<D::E::F>>::G", "B<C<D::E::F>>::G"},
		{"Plain", "Plain"},
		{"Plain<A::B>", "Plain<A::B>"},
	}

	for _, tt := range tests {
		if got := FriendlyName(tt.name); got != tt.want {
			t.Errorf("FriendlyName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNamespaceParts(t *testing.T) {
	if got := NamespaceParts(""); got != nil {
		t.Errorf("NamespaceParts(\"\") = %v, want nil", got)
	}
	got := NamespaceParts("A::B::C")
	if want := []string{"A", "B", "C"}; !slices.Equal(got, want) {
		t.Errorf("NamespaceParts() = %v, want %v", got, want)
	}
}

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func TestNodeID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"NS::Outer::Inner<T>", "NS__Outer__Inner_T_"},
		{"simple_name", "simple_name"},
		{"A<B, C*>", "A_B__C__"},
		{"1st", "_1st"},
		{"Zustand::Größe", "Zustand__Gr__e"},
		{"Node", "_Node"},
		{"Nodes", "Nodes"},
	}

	for _, tt := range tests {
		got := NodeID(tt.name)
		if got != tt.want {
			t.Errorf("NodeID(%q) = %q, want %q", tt.name, got, tt.want)
		}
		if !idPattern.MatchString(got) {
			t.Errorf("NodeID(%q) = %q, not a valid identifier", tt.name, got)
		}
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr error
	}{
		{"A::B", nil},
		{"", ErrEmptyName},
		{"   ", ErrEmptyName},
		{"bad\x00name", ErrControlChars},
		{"tab\tname", ErrControlChars},
	}

	for _, tt := range tests {
		if err := ValidateName(tt.name); err != tt.wantErr {
			t.Errorf("ValidateName(%q) = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}
