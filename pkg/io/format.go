package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/hsmgraph/pkg/errors"
)

// Format identifies a transition map encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML}

var extensions = map[string]Format{
	".txt":  FormatText,
	".map":  FormatText,
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".toml": FormatTOML,
}

// ParseFormat parses a format name. "yml" and "txt" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "txt":
		return FormatText, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unknown input format %q (must be one of: text, json, yaml, toml)", s)
}

// DetectFormat picks a format from the file extension of path.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"cannot infer input format from %q; use one of .txt, .map, .json, .yaml, .yml, .toml or set the format", path)
}
