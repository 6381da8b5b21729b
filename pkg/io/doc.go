// Package io reads and writes transition maps.
//
// # Formats
//
// Text is one transition per line, the form printed by "hsmgraph map":
//
//	# comment
//	Machine ==>> Machine::Idle
//	Machine::Idle ---> Machine::Busy
//	Machine::Busy ===> Machine::Busy::Load<Disk>
//
// The arrow gives the kind: "--->" Sibling, "==>>" Inner, "===>" InnerEntry.
// State names may contain spaces; everything left of the arrow is the source
// and everything right of it the target. A line of exactly three fields may
// also name the kind instead ("A Inner B").
//
// JSON, YAML and TOML share one document shape, a list of transitions with
// the kind spelled by name or by arrow:
//
//	{
//	  "transitions": [
//	    {"source": "Machine", "kind": "Inner", "target": "Machine::Idle"}
//	  ]
//	}
//
//	[[transitions]]
//	source = "Machine"
//	kind = "Inner"
//	target = "Machine::Idle"
//
// Readers only check syntax and kinds; state names are validated when the
// map is turned into a graph. Duplicate transitions collapse silently.
package io
