// Package hsm defines the transition map that the layering engine consumes.
//
// # Overview
//
// A hierarchical state machine is described here only by its transitions.
// Each [Transition] names a source state, a target state and a
// [TransitionKind]:
//
//   - [Sibling]: the target lives at the same nesting level as the source
//   - [Inner]: the target is nested one level below the source
//   - [InnerEntry]: like Inner, but the target is the entry point of the
//     nested region
//
// A [Map] is a set of transitions, deduplicated on the full triple. How the
// transitions were discovered (parsing source code, hand-written fixtures) is
// outside this package.
//
// # State Names
//
// State names are fully qualified, "::"-delimited identifiers that may carry
// template arguments in angle brackets, e.g. "Game::Menu::Idle<Foo::Bar>".
// The helpers [Namespace], [FriendlyName], [NamespaceParts] and [NodeID]
// derive the grouping key, display label and a renderer-safe identifier:
//
//	hsm.Namespace("NS::Outer::Inner<T>")    // "NS::Outer"
//	hsm.FriendlyName("NS::Outer::Inner<T>") // "Inner<T>"
//	hsm.NodeID("NS::Outer::Inner<T>")       // "NS__Outer__Inner_T_"
//
// # Usage
//
//	m := hsm.NewMap(
//	    hsm.Transition{Source: "A", Kind: hsm.Inner, Target: "B"},
//	    hsm.Transition{Source: "B", Kind: hsm.Sibling, Target: "C"},
//	)
//	for _, t := range m.Transitions() {
//	    fmt.Println(t)
//	}
package hsm
