package errors

import (
	"strings"
	"unicode"

	"github.com/matzehuels/hsmgraph/pkg/hsm"
)

// ValidateStateName checks that a state name can become a graph node.
// Failures carry ErrCodeMalformedName.
func ValidateStateName(name string) error {
	if err := hsm.ValidateName(name); err != nil {
		return Wrap(ErrCodeMalformedName, err, "state %q", name)
	}
	return nil
}

// ValidateTransitions checks every state name referenced by ts and returns
// the first failure. Distinct states or namespaces whose DOT identifiers
// would coincide (e.g. "A::B" and "A__B") fail with ErrCodeMalformedName.
func ValidateTransitions(ts []hsm.Transition) error {
	states := idOwners{}
	clusters := idOwners{}
	for _, t := range ts {
		if !t.Kind.Valid() {
			return New(ErrCodeInvalidKind, "transition %q -> %q has unknown kind %d", t.Source, t.Target, int(t.Kind))
		}
		for _, name := range []string{t.Source, t.Target} {
			if err := ValidateStateName(name); err != nil {
				return err
			}
			if err := states.claim(name, "state"); err != nil {
				return err
			}
			ns := hsm.Namespace(name)
			if ns == "" {
				continue
			}
			parts := hsm.NamespaceParts(ns)
			for i := range parts {
				if err := clusters.claim(strings.Join(parts[:i+1], hsm.ScopeSeparator), "namespace"); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// idOwners maps a DOT identifier to the name it was derived from.
type idOwners map[string]string

func (o idOwners) claim(name, what string) error {
	id := hsm.NodeID(name)
	owner, ok := o[id]
	if !ok {
		o[id] = name
		return nil
	}
	if owner != name {
		return New(ErrCodeMalformedName, "%s %q and %q share the identifier %s", what, owner, name, id)
	}
	return nil
}

// ValidatePath validates an output path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path has leading or trailing whitespace")
	}

	return nil
}
