// Package parsers reads and writes movement snapshots in JSON and YAML.
package parsers

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a snapshot serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ForFormat returns the format with the given name.
// Supported formats: "json", "yaml" ("yml").
func ForFormat(format string) (Format, error) {
	switch strings.ToLower(format) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use json or yaml)", format)
	}
}

// ForFile returns the format based on file extension.
func ForFile(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported file type: %q (use .json, .yaml or .yml)", ext)
	}
}
