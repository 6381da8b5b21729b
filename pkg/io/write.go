package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/hsmgraph/pkg/hsm"
)

// Write encodes m to w. Transitions are written in map order (source,
// target, kind), so equal maps encode identically.
func Write(w io.Writer, m *hsm.Map, format Format) error {
	if format == FormatText {
		return WriteText(w, m)
	}

	doc := document{Transitions: make([]transition, 0, m.Len())}
	for _, t := range m.Transitions() {
		doc.Transitions = append(doc.Transitions, transition{
			Source: t.Source,
			Kind:   t.Kind.String(),
			Target: t.Target,
		})
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return wrapEncode(enc.Encode(doc))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return wrapEncode(err)
		}
		return wrapEncode(enc.Close())
	case FormatTOML:
		return wrapEncode(toml.NewEncoder(w).Encode(doc))
	default:
		_, err := ParseFormat(string(format))
		return err
	}
}

// WriteText writes one "<source> <arrow> <target>" line per transition.
func WriteText(w io.Writer, m *hsm.Map) error {
	bw := bufio.NewWriter(w)
	for _, t := range m.Transitions() {
		if _, err := fmt.Fprintln(bw, t.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ExportFile writes m to path, replacing any existing file.
func ExportFile(path string, m *hsm.Map, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, m, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func wrapEncode(err error) error {
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
