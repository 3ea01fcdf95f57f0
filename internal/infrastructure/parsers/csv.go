package parsers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ersonp/movement-core/internal/domain/services"
)

// CellValue is one explicit binding value read from CSV.
type CellValue struct {
	DimensionID string
	MovementID  string
	// Value is nil for an empty column, which clears the explicit value.
	Value any
	// Notes is only applied when HasNotes is set.
	Notes    *string
	HasNotes bool
	LineNum  int
}

// ParseBindingCSV reads explicit binding values.
// Expected columns: dimensionId, movementId, value, notes (optional).
// Values that parse as JSON (numbers, booleans, lists) keep their type;
// anything else is kept as text.
func ParseBindingCSV(r io.Reader) ([]CellValue, error) {
	reader := csv.NewReader(r)

	colIndex, err := readHeader(reader)
	if err != nil {
		return nil, err
	}

	return readCells(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}

	requiredCols := []string{"dimensionId", "movementId", "value"}
	for _, col := range requiredCols {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readCells reads all data rows.
func readCells(reader *csv.Reader, colIndex map[string]int) ([]CellValue, error) {
	var cells []CellValue
	_, hasNotes := colIndex["notes"]
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		cell := CellValue{
			DimensionID: getColumn(record, colIndex, "dimensionId"),
			MovementID:  getColumn(record, colIndex, "movementId"),
			Value:       ParseCellValue(getColumn(record, colIndex, "value")),
			HasNotes:    hasNotes,
			LineNum:     lineNum,
		}
		if cell.DimensionID == "" || cell.MovementID == "" {
			return nil, fmt.Errorf("line %d: dimensionId and movementId are required", lineNum)
		}
		if notes := getColumn(record, colIndex, "notes"); notes != "" {
			cell.Notes = &notes
		}
		cells = append(cells, cell)
	}

	return cells, nil
}

// ParseCellValue interprets one raw binding value. Empty text is nil.
func ParseCellValue(raw string) any {
	if raw == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil && v != nil {
		return v
	}
	return raw
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}

// EncodeMatrixCSV writes a comparison matrix with one row per dimension and
// one column per movement.
func EncodeMatrixCSV(w io.Writer, m *services.ComparisonMatrix) error {
	writer := csv.NewWriter(w)

	header := []string{"dimension"}
	for _, mov := range m.Movements {
		header = append(header, mov.ShortName)
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, row := range m.Rows {
		record := []string{row.Label}
		for _, cell := range row.Cells {
			record = append(record, FormatCellValue(cell.Value))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing CSV row %s: %w", row.DimensionID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// FormatCellValue renders a matrix value as text. Nil is empty.
func FormatCellValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(data)
	}
}
