package hsm

import (
	"slices"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    TransitionKind
		wantErr bool
	}{
		{"Sibling", Sibling, false},
		{"inner", Inner, false},
		{"InnerEntry", InnerEntry, false},
		{"inner_entry", InnerEntry, false},
		{"inner-entry", InnerEntry, false},
		{"--->", Sibling, false},
		{"==>>", Inner, false},
		{"===>", InnerEntry, false},
		{"No", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTransitionKindString(t *testing.T) {
	if got := InnerEntry.String(); got != "InnerEntry" {
		t.Errorf("String() = %q, want %q", got, "InnerEntry")
	}
	if got := TransitionKind(7).String(); got != "TransitionKind(7)" {
		t.Errorf("String() = %q, want %q", got, "TransitionKind(7)")
	}
	if TransitionKind(-1).Valid() {
		t.Error("Valid() = true for negative kind")
	}
}

func TestTransitionString(t *testing.T) {
	tr := Transition{Source: "A", Kind: Inner, Target: "B"}
	if got := tr.String(); got != "A ==>> B" {
		t.Errorf("String() = %q, want %q", got, "A ==>> B")
	}
}

func TestMapDeduplicates(t *testing.T) {
	m := NewMap(
		Transition{"A", Inner, "B"},
		Transition{"A", Inner, "B"},
		Transition{"A", Sibling, "B"},
	)

	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
	if m.Add(Transition{"A", Inner, "B"}) {
		t.Error("Add() of existing transition returned true")
	}
	if !m.Contains(Transition{"A", Sibling, "B"}) {
		t.Error("Contains() = false for present transition")
	}
}

func TestMapTransitionsOrderIndependent(t *testing.T) {
	ts := []Transition{
		{"C", Sibling, "B"},
		{"A", Inner, "B"},
		{"B", Sibling, "C"},
		{"A", InnerEntry, "B"},
	}
	reversed := slices.Clone(ts)
	slices.Reverse(reversed)

	got1 := NewMap(ts...).Transitions()
	got2 := NewMap(reversed...).Transitions()
	if !slices.Equal(got1, got2) {
		t.Errorf("Transitions() depends on insertion order: %v vs %v", got1, got2)
	}

	want := []Transition{
		{"A", Inner, "B"},
		{"A", InnerEntry, "B"},
		{"B", Sibling, "C"},
		{"C", Sibling, "B"},
	}
	if !slices.Equal(got1, want) {
		t.Errorf("Transitions() = %v, want %v", got1, want)
	}
}

func TestMapStates(t *testing.T) {
	m := NewMap(Transition{"B", Inner, "C"}, Transition{"A", Sibling, "B"})
	if got, want := m.States(), []string{"A", "B", "C"}; !slices.Equal(got, want) {
		t.Errorf("States() = %v, want %v", got, want)
	}
}

func TestZeroMap(t *testing.T) {
	var m Map
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
	m.Add(Transition{"A", Sibling, "B"})
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}

	var nilMap *Map
	if nilMap.Transitions() != nil {
		t.Error("Transitions() on nil map should be nil")
	}
}
