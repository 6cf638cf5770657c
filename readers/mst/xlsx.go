package mst

import (
	"fmt"
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"biometa-converter/convert"
	"biometa-converter/document"
	"biometa-converter/internal/diagnostic"
)

// The spreadsheet export carries one sheet of interest, RawData: caption
// rows split column A into metadata sections, then every capillary owns
// a column pair (time, fluorescence) with the metadata keys repeated in
// the pair's first column and a trace header row under Included.
const rawDataSheet = "RawData"

// spacerColumn is the mostly-empty padding column the export writes
// third; it is dropped by position, not content.
const spacerColumn = 2

// sections holds the row index of each caption in column A.
type sections struct {
	origin       int
	analysis     int
	sampleInfo   int
	measSettings int
	included     int
}

func (r *Reader) readXLSX(path string) ([]convert.Measurement, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(rawDataSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s of %s: %w", rawDataSheet, path, err)
	}

	g := newGrid(rows)

	s, err := findSections(g)
	if err != nil {
		return nil, fmt.Errorf("%s is not an MST spreadsheet export: %w", path, err)
	}

	cols := g.usedColumns()

	var measurements []convert.Measurement

	// two columns describe each sample; a trailing unpaired column is
	// ignored
	for p := 0; p+1 < len(cols); p += 2 {
		var m convert.Measurement

		metaFields(g, s, &m, cols[p], cols[p+1])
		traceFields(g, s, &m, cols[p], cols[p+1])

		measurements = append(measurements, m)
	}

	r.logger.Debug("decoded spreadsheet export",
		zap.Int("samples", len(measurements)),
		zap.Int("columns", len(cols)))

	return measurements, nil
}

// metaFields collects the key/value rows between the Sample Information
// caption and the Included caption, skipping the Measurement Settings
// caption and padding rows. Keys lose their trailing separator
// character.
func metaFields(g *grid, s sections, m *convert.Measurement, xCol, yCol int) {
	for i := s.sampleInfo + 1; i < s.included; i++ {
		if i == s.measSettings {
			continue
		}

		key := g.cells[i][xCol]
		if key == "" {
			continue
		}

		m.Add(trimLastRune(key), cellValue(g.cells[i][yCol]))
	}
}

// traceFields reads the pair's own column names from the header row
// under the Included caption, then the data rows below it. A cell empty
// on one side of a surviving row decodes to NaN.
func traceFields(g *grid, s sections, m *convert.Measurement, xCol, yCol int) {
	header := s.included + 1
	if header >= len(g.cells) {
		return
	}

	xKey := g.cells[header][xCol]
	yKey := g.cells[header][yCol]
	if xKey == "" && yKey == "" {
		return
	}

	var xs, ys []float64

	for i := header + 1; i < len(g.cells); i++ {
		xCell, yCell := g.cells[i][xCol], g.cells[i][yCol]
		if xCell == "" && yCell == "" {
			continue
		}

		xs = append(xs, floatCell(xCell))
		ys = append(ys, floatCell(yCell))
	}

	m.Add(xKey, document.NewFloatList(xs))
	m.Add(yKey, document.NewFloatList(ys))
}

// findSections locates every caption row, reporting all missing ones at
// once.
func findSections(g *grid) (sections, error) {
	var diags diagnostic.Diagnostics

	find := func(caption string) int {
		for i := range g.cells {
			if g.cells[i][0] == caption {
				return i
			}
		}

		diags.AddError("missing_section",
			fmt.Sprintf("caption %q not found in column A", caption), "", rawDataSheet)

		return -1
	}

	s := sections{
		origin:       find("Origin of exported data"),
		analysis:     find("Analysis Settings"),
		sampleInfo:   find("Sample Information"),
		measSettings: find("Measurement Settings"),
		included:     find("Included"),
	}

	if err := diags.Error(); err != nil {
		return sections{}, err
	}

	return s, nil
}

// grid is the RawData sheet as a dense cell matrix: every row padded to
// the same width so column access never bounds-checks.
type grid struct {
	cells [][]string
	width int
}

func newGrid(rows [][]string) *grid {
	width := 1
	for _, row := range rows {
		width = max(width, len(row))
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		cells[i] = padded
	}

	return &grid{cells: cells, width: width}
}

// usedColumns returns, in order, the indices of columns holding any
// content, minus the spacer column.
func (g *grid) usedColumns() []int {
	var cols []int

	for c := range g.width {
		if c == spacerColumn {
			continue
		}

		for _, row := range g.cells {
			if row[c] != "" {
				cols = append(cols, c)
				break
			}
		}
	}

	return cols
}

// cellValue types a sheet cell the way the spreadsheet engine displays
// it: integer, then float, then text.
func cellValue(cell string) document.Value {
	if cell == "" {
		return document.Value{}
	}

	if i, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return document.NewInt(i)
	}

	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return document.NewFloat(f)
	}

	return document.NewString(cell)
}

func floatCell(cell string) float64 {
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}

	return f
}

func trimLastRune(s string) string {
	runes := []rune(s)

	return string(runes[:len(runes)-1])
}
