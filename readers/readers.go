package readers

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"biometa-converter/convert"
	"biometa-converter/internal/common"
	"biometa-converter/internal/similar"
	"biometa-converter/schema"
)

var (
	// ErrSingleFile is returned by single-file formats handed any other
	// number of paths.
	ErrSingleFile = errors.New("exactly one input file is allowed")
)

// Reader is the contract every vendor family decoder satisfies: turn the
// input files into the ordered measurements the conversion engine folds.
type Reader interface {
	Read(paths ...string) ([]convert.Measurement, error)
}

// Single returns the only element of paths. Formats storing a whole run
// in one file call it before decoding anything.
func Single(paths []string) (string, error) {
	if !common.IsSingle(paths) {
		return "", fmt.Errorf("%w, %d were supplied", ErrSingleFile, len(paths))
	}

	path, _ := common.First(paths)

	return path, nil
}

// Float32Slice decodes a little-endian float32 buffer, the raw trace
// layout all supported instruments share, widening each element to
// float64.
func Float32Slice(b []byte) ([]float64, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("raw data length %d is not a multiple of 4", len(b))
	}

	out := make([]float64, 0, len(b)/4)
	for i := 0; i < len(b); i += 4 {
		bits := binary.LittleEndian.Uint32(b[i:])
		out = append(out, float64(math.Float32frombits(bits)))
	}

	return out, nil
}

// LogUnmapped reports, at debug level, every extracted field the table
// cannot place, with the closest known field names next to it. The
// engine drops such fields silently; this is the only trace they leave.
func LogUnmapped(logger *zap.Logger, table *schema.Table, measurements []convert.Measurement) {
	known := table.Fields()
	seen := make(map[string]struct{})

	for _, m := range measurements {
		for _, name := range convert.UnmappedFields(table, m) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}

			logger.Debug("extracted field has no template entry",
				zap.String("field", name),
				zap.Strings("closest", similar.Closest(name, known, 3)),
			)
		}
	}
}
