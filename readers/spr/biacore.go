package spr

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/richardlehane/mscfb"
	"go.uber.org/zap"

	"biometa-converter/convert"
	"biometa-converter/document"
	"biometa-converter/internal/common"
	"biometa-converter/readers"
)

// Stream is one named OLE stream with its payload, decoupled from the
// container walk so sensorgram extraction is testable on synthetic data.
type Stream struct {
	Path []string // ancestor entry names, root first
	Name string
	Data []byte
}

// Label renders the full stream path for logs and errors.
func (s Stream) Label() string {
	return strings.Join(append(append([]string(nil), s.Path...), s.Name), " ")
}

// flowCell extracts the flow cell number, the trailing digit of the
// stream's root entry name.
func (s Stream) flowCell() (int, error) {
	root := s.Name
	if first, ok := common.First(s.Path); ok {
		root = first
	}

	runes := []rune(root)
	if common.IsEmpty(runes) || !unicode.IsDigit(runes[len(runes)-1]) {
		return 0, fmt.Errorf("no flow cell number in stream root %q", root)
	}

	return int(runes[len(runes)-1] - '0'), nil
}

// collectStreams drains the compound document into memory. Sensorgram
// payloads are small, a few thousand points per flow cell.
func collectStreams(doc *mscfb.Reader) ([]Stream, error) {
	var streams []Stream

	for {
		entry, err := doc.Next()
		if errors.Is(err, io.EOF) {
			return streams, nil
		}

		if err != nil {
			return nil, err
		}

		if entry.Size == 0 {
			continue
		}

		data := make([]byte, entry.Size)
		if _, err := io.ReadFull(entry, data); err != nil {
			return nil, fmt.Errorf("failed to read stream %s: %w", entry.Name, err)
		}

		streams = append(streams, Stream{
			Path: append([]string(nil), entry.Path...),
			Name: entry.Name,
			Data: data,
		})
	}
}

// sensorgramMeasurements converts every XYData stream into one flow cell
// measurement. The payload holds the time axis in its first half and the
// response in the second, with one trailing padding element dropped.
func sensorgramMeasurements(streams []Stream, logger *zap.Logger) ([]convert.Measurement, error) {
	var measurements []convert.Measurement

	for _, s := range streams {
		if s.Name != "XYData" {
			continue
		}

		values, err := readers.Float32Slice(s.Data)
		if err != nil {
			return nil, fmt.Errorf("stream %s: %w", s.Label(), err)
		}

		cell, err := s.flowCell()
		if err != nil {
			return nil, err
		}

		half := len(values) / 2

		xs := values[:half]
		var ys []float64
		if half < len(values) {
			ys = values[half : len(values)-1]
		}

		logger.Debug("decoded sensorgram",
			zap.Int("flow_cell", cell),
			zap.Int("points", len(xs)))

		measurements = append(measurements, convert.NewMeasurement(
			convert.Field{Name: "Flow Cell", Value: document.NewInt(int64(cell))},
			convert.Field{Name: "Stream Label", Value: document.NewString(s.Label())},
			convert.Field{Name: "Time [s]", Value: document.NewFloatList(xs)},
			convert.Field{Name: "Response [RU]", Value: document.NewFloatList(ys)},
		))
	}

	return measurements, nil
}
