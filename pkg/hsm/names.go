package hsm

import (
	"errors"
	"strings"
	"unicode"
)

// ScopeSeparator delimits the segments of a qualified state name.
const ScopeSeparator = "::"

var (
	// ErrEmptyName is returned by [ValidateName] for an empty state name.
	ErrEmptyName = errors.New("state name must not be empty")

	// ErrControlChars is returned by [ValidateName] when a state name
	// contains control characters.
	ErrControlChars = errors.New("state name contains control characters")
)

// ValidateName rejects names that cannot be turned into a usable node.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return ErrControlChars
		}
	}
	return nil
}

// scopeEnd returns the index of the first template delimiter, or len(name).
// Scope separators inside template arguments never split a name.
func scopeEnd(name string) int {
	if i := strings.IndexByte(name, '<'); i >= 0 {
		return i
	}
	return len(name)
}

// Namespace returns the scope a state is declared in: everything before the
// last "::" that precedes the first '<'. It returns "" for unscoped names.
//
//	Namespace("A::B::C<D>")        == "A::B"
//	Namespace("A::B<C<D::E>>::G")  == "A"
//
// Templated namespaces are not recognized: "A<B>::S" yields "".
func Namespace(name string) string {
	if i := strings.LastIndex(name[:scopeEnd(name)], ScopeSeparator); i >= 0 {
		return name[:i]
	}
	return ""
}

// FriendlyName strips the scope qualification from a state name but keeps
// any template suffix.
//
//	FriendlyName("NS::Outer::Inner<T>") == "Inner<T>"
//	FriendlyName("A::B<C<D::E>>::G")    == "B<C<D::E>>::G"
func FriendlyName(name string) string {
	if i := strings.LastIndexByte(name[:scopeEnd(name)], ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// NamespaceParts splits a namespace into its segments, outermost first.
// The global namespace "" has no parts.
func NamespaceParts(ns string) []string {
	if ns == "" {
		return nil
	}
	return strings.Split(ns, ScopeSeparator)
}

// NodeID turns a state name into an identifier made only of ASCII letters,
// digits and underscores. Every other character becomes '_'. A leading digit
// gets an extra '_' prefix so the result is never read as a number, and so do
// names that collide with a DOT keyword ("node", "Graph", ...).
func NodeID(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 1)
	for i, r := range name {
		if i == 0 && r >= '0' && r <= '9' {
			b.WriteByte('_')
		}
		if isIDChar(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	id := b.String()
	if dotKeywords[strings.ToLower(id)] {
		return "_" + id
	}
	return id
}

var dotKeywords = map[string]bool{
	"node": true, "edge": true, "graph": true,
	"digraph": true, "subgraph": true, "strict": true,
}

func isIDChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
