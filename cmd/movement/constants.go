package main

import "github.com/ersonp/movement-core/internal/application/handlers"

// DefaultSnapshot is the snapshot used when --snapshot is not given.
const DefaultSnapshot = handlers.DefaultSnapshot

// Default limits for CLI commands.
const (
	DefaultHistoryLimit = 20
)

// Output formats.
const (
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
	formatCSV   = "csv"
)

// Valid output formats per command family.
var (
	validDataFormats   = []string{formatJSON, formatYAML}
	validViewFormats   = []string{formatJSON, formatYAML, formatTable}
	validMatrixFormats = []string{formatJSON, formatYAML, formatTable, formatCSV}
)
