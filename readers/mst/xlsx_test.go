package mst

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeXLSX(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", rawDataSheet))

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(rawDataSheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeXLSX(t, [][]any{
		{"Origin of exported data"},
		{"Exported at:", "2024-05-01"},
		{"Analysis Settings"},
		{"Analysis Type:", "Manual"},
		{"Sample Information"},
		{"Target:", "ATP", nil, "Target:", "ATP"},
		{"Ligand Concentration:", 13.5, nil, "Ligand Concentration:", 6.75},
		{"Measurement Settings"},
		{"MST-Power:", "Medium", nil, "MST-Power:", "Medium"},
		{"Capillary Position:", 1, nil, "Capillary Position:", 2},
		{"Included"},
		{"Time [s]", "Raw Fluorescence [counts]", nil, "Time [s]", "Raw Fluorescence [counts]"},
		{0, 100.5, nil, 0, 200.5},
		{0.5, 101, nil, 0.5, 201},
		{1, nil, nil, 1, 202},
	})

	measurements, err := New().Read(path)
	require.NoError(t, err)
	require.Len(t, measurements, 2)

	first := measurements[0]
	assert.Equal(t, []string{
		"Target",
		"Ligand Concentration",
		"MST-Power",
		"Capillary Position",
		"Time [s]",
		"Raw Fluorescence [counts]",
	}, fieldNames(first))

	target, ok := first.Get("Target")
	require.True(t, ok)
	assert.Equal(t, "ATP", target.StringVal())

	conc, ok := first.Get("Ligand Concentration")
	require.True(t, ok)
	assert.Equal(t, 13.5, conc.FloatVal())

	position, ok := first.Get("Capillary Position")
	require.True(t, ok)
	assert.Equal(t, int64(1), position.IntVal())

	times, ok := first.Get("Time [s]")
	require.True(t, ok)
	assert.Equal(t, "[0,0.5,1]", times.JSON())

	// the y cell of the last row is empty on the first pair
	counts, ok := first.Get("Raw Fluorescence [counts]")
	require.True(t, ok)
	assert.Equal(t, "[100.5,101,NaN]", counts.JSON())

	second := measurements[1]

	conc, ok = second.Get("Ligand Concentration")
	require.True(t, ok)
	assert.Equal(t, 6.75, conc.FloatVal())

	position, ok = second.Get("Capillary Position")
	require.True(t, ok)
	assert.Equal(t, int64(2), position.IntVal())

	counts, ok = second.Get("Raw Fluorescence [counts]")
	require.True(t, ok)
	assert.Equal(t, "[200.5,201,202]", counts.JSON())
}

func TestReadXLSXRequiresAllSections(t *testing.T) {
	path := writeXLSX(t, [][]any{
		{"Sample Information"},
		{"Target:", "ATP"},
	})

	_, err := New().Read(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "not an MST spreadsheet export")
	assert.ErrorContains(t, err, `caption "Origin of exported data" not found`)
	assert.ErrorContains(t, err, `caption "Included" not found`)
	assert.NotContains(t, err.Error(), `caption "Sample Information" not found`)
}

func TestReadXLSXMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	path := filepath.Join(t.TempDir(), "plain.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := New().Read(path)
	assert.ErrorContains(t, err, "failed to read sheet RawData")
}

func TestCellValue(t *testing.T) {
	assert.False(t, cellValue("").IsValid())
	assert.Equal(t, int64(3), cellValue("3").IntVal())
	assert.Equal(t, 2.5, cellValue("2.5").FloatVal())
	assert.Equal(t, "Medium", cellValue("Medium").StringVal())
}

func TestTrimLastRune(t *testing.T) {
	assert.Equal(t, "Target", trimLastRune("Target:"))
	assert.Equal(t, "α", trimLastRune("αβ"))
}
