package hsm

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// TransitionKind classifies a transition by how it moves through the
// state hierarchy.
type TransitionKind int

const (
	// Sibling moves to a state at the same nesting level.
	Sibling TransitionKind = iota
	// Inner moves to a state nested one level deeper.
	Inner
	// InnerEntry moves to the designated entry state of a nested region.
	InnerEntry
)

var kindNames = [...]string{"Sibling", "Inner", "InnerEntry"}

// kindArrows are the arrows used by the textual map format.
var kindArrows = [...]string{"--->", "==>>", "===>"}

// String returns the kind name ("Sibling", "Inner" or "InnerEntry").
func (k TransitionKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("TransitionKind(%d)", int(k))
	}
	return kindNames[k]
}

// Arrow returns the arrow used for the kind in the textual map format.
func (k TransitionKind) Arrow() string {
	if !k.Valid() {
		return "????"
	}
	return kindArrows[k]
}

// Valid reports whether k is one of the three defined kinds.
func (k TransitionKind) Valid() bool {
	return k >= Sibling && k <= InnerEntry
}

// IsInner reports whether k nests the target below the source.
func (k TransitionKind) IsInner() bool {
	return k == Inner || k == InnerEntry
}

// ParseKind parses a kind from its name or its arrow. Names are matched
// case-insensitively and may use "_" or "-" separators ("inner_entry").
func ParseKind(s string) (TransitionKind, error) {
	s = strings.TrimSpace(s)
	for i, a := range kindArrows {
		if s == a {
			return TransitionKind(i), nil
		}
	}
	norm := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(s))
	for i, n := range kindNames {
		if norm == strings.ToLower(n) {
			return TransitionKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown transition kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k TransitionKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid transition kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *TransitionKind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Transition is a single labeled edge between two states.
type Transition struct {
	Source string
	Kind   TransitionKind
	Target string
}

// String formats the transition as "<source> <arrow> <target>".
func (t Transition) String() string {
	return t.Source + " " + t.Kind.Arrow() + " " + t.Target
}

// Compare orders transitions by source, then target, then kind.
func (t Transition) Compare(o Transition) int {
	if c := cmp.Compare(t.Source, o.Source); c != 0 {
		return c
	}
	if c := cmp.Compare(t.Target, o.Target); c != 0 {
		return c
	}
	return cmp.Compare(t.Kind, o.Kind)
}

// Map is a set of transitions. Two transitions are the same entry only when
// source, kind and target all match.
//
// The zero value is an empty map ready to use. Map is not safe for
// concurrent mutation.
type Map struct {
	set map[Transition]struct{}
}

// NewMap returns a map holding the given transitions, duplicates dropped.
func NewMap(ts ...Transition) *Map {
	m := &Map{set: make(map[Transition]struct{}, len(ts))}
	for _, t := range ts {
		m.Add(t)
	}
	return m
}

// Add inserts t and reports whether it was not already present.
func (m *Map) Add(t Transition) bool {
	if m.set == nil {
		m.set = make(map[Transition]struct{})
	}
	if _, ok := m.set[t]; ok {
		return false
	}
	m.set[t] = struct{}{}
	return true
}

// Contains reports whether t is in the map.
func (m *Map) Contains(t Transition) bool {
	if m == nil {
		return false
	}
	_, ok := m.set[t]
	return ok
}

// Len returns the number of distinct transitions.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.set)
}

// Transitions returns all transitions sorted by [Transition.Compare].
// The result is a fresh slice; insertion order never affects it.
func (m *Map) Transitions() []Transition {
	if m == nil {
		return nil
	}
	return slices.SortedFunc(maps.Keys(m.set), Transition.Compare)
}

// States returns every state name referenced as a source or target, sorted.
func (m *Map) States() []string {
	if m == nil {
		return nil
	}
	seen := make(map[string]struct{}, 2*len(m.set))
	for t := range m.set {
		seen[t.Source] = struct{}{}
		seen[t.Target] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}
