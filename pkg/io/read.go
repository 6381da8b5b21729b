package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/hsmgraph/pkg/errors"
	"github.com/matzehuels/hsmgraph/pkg/hsm"
)

type document struct {
	Transitions []transition `json:"transitions" yaml:"transitions" toml:"transitions"`
}

type transition struct {
	Source string `json:"source" yaml:"source" toml:"source"`
	Kind   string `json:"kind" yaml:"kind" toml:"kind"`
	Target string `json:"target" yaml:"target" toml:"target"`
}

// Read decodes a transition map from r. Read does not close r.
func Read(r io.Reader, format Format) (*hsm.Map, error) {
	switch format {
	case FormatText:
		return ReadText(r)
	case FormatJSON, FormatYAML, FormatTOML:
		var doc document
		if err := decode(r, format, &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s", format)
		}
		return doc.toMap()
	default:
		_, err := ParseFormat(string(format))
		return nil, err
	}
}

func decode(r io.Reader, format Format, doc *document) error {
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(doc)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(doc)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(doc)
	}
	if err == io.EOF {
		return nil
	}
	return err
}

func (d document) toMap() (*hsm.Map, error) {
	m := hsm.NewMap()
	for i, t := range d.Transitions {
		k, err := hsm.ParseKind(t.Kind)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidKind, err, "transition %d (%s -> %s)", i, t.Source, t.Target)
		}
		m.Add(hsm.Transition{Source: t.Source, Kind: k, Target: t.Target})
	}
	return m, nil
}

// ReadText decodes the line-based text format.
func ReadText(r io.Reader) (*hsm.Map, error) {
	m := hsm.NewMap()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		t, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", n)
		}
		m.Add(t)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read")
	}
	return m, nil
}

func parseLine(line string) (hsm.Transition, error) {
	for _, k := range []hsm.TransitionKind{hsm.Sibling, hsm.Inner, hsm.InnerEntry} {
		src, dst, ok := strings.Cut(line, k.Arrow())
		if !ok {
			continue
		}
		src, dst = strings.TrimSpace(src), strings.TrimSpace(dst)
		if src == "" || dst == "" {
			return hsm.Transition{}, fmt.Errorf("%q: missing state around %s", line, k.Arrow())
		}
		return hsm.Transition{Source: src, Kind: k, Target: dst}, nil
	}

	if f := strings.Fields(line); len(f) == 3 {
		k, err := hsm.ParseKind(f[1])
		if err != nil {
			return hsm.Transition{}, err
		}
		return hsm.Transition{Source: f[0], Kind: k, Target: f[2]}, nil
	}
	return hsm.Transition{}, fmt.Errorf("%q: expected \"<source> <arrow> <target>\"", line)
}

// ImportFile reads the transition map at path. An empty format is detected
// from the file extension.
func ImportFile(path string, format Format) (*hsm.Map, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	if format == "" {
		f, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = f
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Read(f, format)
}
