package mst

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"biometa-converter/convert"
	"biometa-converter/document"
	"biometa-converter/internal/common"
)

// The tab-separated export strips all metadata except the ligand
// concentration, which rides in each pair's first column header as
// "<concentration>_<label>". Data cells are written at float32
// precision; overflowing values appear as the vendor NA markers.

var txtNAValues = map[string]bool{
	"****.*****": true,
	"****.****":  true,
	"":           true,
}

func (r *Reader) readTXT(path string) ([]convert.Measurement, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	tsv := csv.NewReader(file)
	tsv.Comma = '\t'
	tsv.FieldsPerRecord = -1
	tsv.LazyQuotes = true

	rows, err := tsv.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if common.IsEmpty(rows) {
		return nil, fmt.Errorf("%s holds no data", path)
	}

	header := padRows(rows)
	data := dropEmptyRows(rows[1:])
	cols := usedTxtColumns(header, data)

	var measurements []convert.Measurement

	for p := 0; p+1 < len(cols); p += 2 {
		m, err := txtSample(header, data, cols[p], cols[p+1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		measurements = append(measurements, m)
	}

	r.logger.Debug("decoded tab-separated export",
		zap.Int("samples", len(measurements)))

	return measurements, nil
}

// txtSample decodes one column pair: the ligand concentration from the
// first column's header, then the time and fluorescence traces.
func txtSample(header []string, data [][]string, xCol, yCol int) (convert.Measurement, error) {
	conc, err := headerConcentration(header[xCol])
	if err != nil {
		return convert.Measurement{}, err
	}

	xs := make([]float64, 0, len(data))
	ys := make([]float64, 0, len(data))

	for i, row := range data {
		x, err := txtCell(row[xCol])
		if err != nil {
			return convert.Measurement{}, fmt.Errorf("column %q row %d: %w", header[xCol], i+2, err)
		}

		y, err := txtCell(row[yCol])
		if err != nil {
			return convert.Measurement{}, fmt.Errorf("column %q row %d: %w", header[yCol], i+2, err)
		}

		xs = append(xs, x)
		ys = append(ys, y)
	}

	return convert.NewMeasurement(
		convert.Field{Name: "Ligand Concentration", Value: document.NewFloat(conc)},
		convert.Field{Name: "Time [s]", Value: document.NewFloatList(xs)},
		convert.Field{Name: "Raw Fluorescence [counts]", Value: document.NewFloatList(ys)},
	), nil
}

// headerConcentration parses the numeric prefix of a trace column name,
// the naming scheme the instrument software uses on export.
func headerConcentration(name string) (float64, error) {
	prefix, _, _ := strings.Cut(name, "_")

	conc, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q does not start with a ligand concentration", name)
	}

	return conc, nil
}

// txtCell decodes one data cell at the precision the file was written
// with.
func txtCell(cell string) (float64, error) {
	if txtNAValues[cell] {
		return math.NaN(), nil
	}

	f, err := strconv.ParseFloat(cell, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", cell)
	}

	return f, nil
}

// padRows widens every row to the header width and returns the header.
func padRows(rows [][]string) []string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	for i, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			rows[i] = padded
		}
	}

	return rows[0]
}

func dropEmptyRows(rows [][]string) [][]string {
	kept := rows[:0]

	for _, row := range rows {
		for _, cell := range row {
			if !txtNAValues[cell] {
				kept = append(kept, row)
				break
			}
		}
	}

	return kept
}

// usedTxtColumns returns the indices of columns holding any data.
func usedTxtColumns(header []string, data [][]string) []int {
	var cols []int

	for c := range header {
		for _, row := range data {
			if !txtNAValues[row[c]] {
				cols = append(cols, c)
				break
			}
		}
	}

	return cols
}
