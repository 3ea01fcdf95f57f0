package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/movement-core/internal/domain/entities"
	"github.com/ersonp/movement-core/internal/domain/services"
	"github.com/ersonp/movement-core/internal/infrastructure/parsers"
)

func TestCheckFormat(t *testing.T) {
	require.NoError(t, checkFormat("yaml", validDataFormats))
	require.NoError(t, checkFormat("csv", validMatrixFormats))

	err := checkFormat("csv", validViewFormats)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "csv"`)
}

func TestWithOutput(t *testing.T) {
	write := func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	}

	t.Run("stdout", func(t *testing.T) {
		var stdout bytes.Buffer
		require.NoError(t, withOutput(&stdout, "", write))
		assert.Equal(t, "hello", stdout.String())
	})

	t.Run("file", func(t *testing.T) {
		var stdout bytes.Buffer
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, withOutput(&stdout, path, write))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
		assert.Empty(t, stdout.String())
	})

	t.Run("unwritable path", func(t *testing.T) {
		err := withOutput(io.Discard, filepath.Join(t.TempDir(), "missing", "out.txt"), write)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "creating file")
	})
}

func TestExportFormat(t *testing.T) {
	tests := []struct {
		name    string
		flags   exportFlags
		want    string
		wantErr bool
	}{
		{name: "default", flags: exportFlags{}, want: "json"},
		{name: "explicit", flags: exportFlags{format: "yaml", output: "out.json"}, want: "yaml"},
		{name: "from extension", flags: exportFlags{output: "out.yml"}, want: "yaml"},
		{name: "invalid explicit", flags: exportFlags{format: "csv"}, wantErr: true},
		{name: "unknown extension", flags: exportFlags{output: "out.txt"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := exportFormat(tt.flags)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordFormat(t *testing.T) {
	f, err := recordFormat("-", "auto")
	require.NoError(t, err)
	assert.Equal(t, parsers.FormatJSON, f)

	f, err = recordFormat("-", "yaml")
	require.NoError(t, err)
	assert.Equal(t, parsers.FormatYAML, f)

	f, err = recordFormat("entity.yaml", "")
	require.NoError(t, err)
	assert.Equal(t, parsers.FormatYAML, f)

	_, err = recordFormat("entity.txt", "auto")
	require.Error(t, err)
}

func TestGraphRequest(t *testing.T) {
	req := graphRequest(&viewFlags{movementID: "m1", depth: -1}, 2)
	assert.Nil(t, req.Depth)

	req = graphRequest(&viewFlags{movementID: "m1", centerEntityID: "e1", depth: -1}, 2)
	require.NotNil(t, req.Depth)
	assert.Equal(t, 2, *req.Depth)

	req = graphRequest(&viewFlags{movementID: "m1", centerEntityID: "e1", depth: 0}, 2)
	require.NotNil(t, req.Depth)
	assert.Equal(t, 0, *req.Depth)
}

func TestCellsFromFlags(t *testing.T) {
	newSetCmd := func(args ...string) (*cobra.Command, setFlags) {
		cmd := newCompareSetCmd()
		require.NoError(t, cmd.ParseFlags(args))
		var flags setFlags
		flags.file, _ = cmd.Flags().GetString("file")
		flags.dimensionID, _ = cmd.Flags().GetString("dimension")
		flags.movementID, _ = cmd.Flags().GetString("movement")
		flags.value, _ = cmd.Flags().GetString("value")
		flags.notes, _ = cmd.Flags().GetString("notes")
		return cmd, flags
	}

	t.Run("single value keeps JSON type", func(t *testing.T) {
		cmd, flags := newSetCmd("--dimension", "d1", "--movement", "m1", "--value", "3")
		cells, err := cellsFromFlags(cmd, flags)
		require.NoError(t, err)
		require.Len(t, cells, 1)
		assert.Equal(t, float64(3), cells[0].Value)
		assert.False(t, cells[0].HasNotes)
	})

	t.Run("empty notes clear", func(t *testing.T) {
		cmd, flags := newSetCmd("--dimension", "d1", "--movement", "m1", "--value", "yes please", "--notes", "")
		cells, err := cellsFromFlags(cmd, flags)
		require.NoError(t, err)
		assert.Equal(t, "yes please", cells[0].Value)
		assert.True(t, cells[0].HasNotes)
		assert.Nil(t, cells[0].Notes)
	})

	t.Run("csv file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cells.csv")
		require.NoError(t, os.WriteFile(path, []byte("dimensionId,movementId,value\nd1,m1,true\nd1,m2,\n"), 0644))

		cmd, flags := newSetCmd("--file", path)
		cells, err := cellsFromFlags(cmd, flags)
		require.NoError(t, err)
		require.Len(t, cells, 2)
		assert.Equal(t, true, cells[0].Value)
		assert.Nil(t, cells[1].Value)
	})

	t.Run("missing target", func(t *testing.T) {
		cmd, flags := newSetCmd("--value", "3")
		_, err := cellsFromFlags(cmd, flags)
		require.Error(t, err)
	})
}

func TestWriteMatrix(t *testing.T) {
	matrix := &services.ComparisonMatrix{
		Movements: []services.MatrixMovement{{ID: "m1", ShortName: "A"}, {ID: "m2", ShortName: "B"}},
		Rows: []services.MatrixRow{
			{DimensionID: "d1", Label: "Deities", Cells: []services.MatrixCell{
				{MovementID: "m1", Value: 2}, {MovementID: "m2", Value: nil},
			}},
			{DimensionID: "d2", Label: "Tags", Cells: []services.MatrixCell{
				{MovementID: "m1", Value: []any{"x", "y"}}, {MovementID: "m2", Value: false},
			}},
		},
	}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeMatrix(&buf, matrix, formatTable, parsers.VocabularyMovement))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, []string{"DIMENSION", "A", "B"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"Deities", "2", "-"}, strings.Fields(lines[1]))
		assert.Equal(t, []string{"Tags", `["x","y"]`, "false"}, strings.Fields(lines[2]))
	})

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeMatrix(&buf, matrix, formatCSV, parsers.VocabularyMovement))
		assert.True(t, strings.HasPrefix(buf.String(), "dimension,A,B\nDeities,2,\n"))
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeMatrix(&buf, matrix, formatJSON, parsers.VocabularyMovement))
		assert.Contains(t, buf.String(), `"dimensionId": "d1"`)
	})
}

func TestPrintCounts(t *testing.T) {
	var buf bytes.Buffer
	counts := map[entities.Collection]int{
		entities.CollectionEntities:  2,
		entities.CollectionMovements: 1,
		entities.CollectionTexts:     0,
	}

	require.NoError(t, printCounts(&buf, counts, parsers.VocabularyReligion.External))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"COLLECTION", "RECORDS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"religions", "1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"entities", "2"}, strings.Fields(lines[2]))
}
