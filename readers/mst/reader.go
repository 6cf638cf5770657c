package mst

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"biometa-converter/convert"
	"biometa-converter/readers"
)

// Reader decodes NanoTemper MST files.
type Reader struct {
	logger *zap.Logger
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger decode observability goes to. The default
// discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

// New returns an MST reader.
func New(opts ...Option) *Reader {
	r := &Reader{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

var _ readers.Reader = (*Reader)(nil)

// Read decodes the single input file into ordered capillary
// measurements. The format is picked by extension; magic bytes might be
// a more robust approach in the long run.
func (r *Reader) Read(paths ...string) ([]convert.Measurement, error) {
	path, err := readers.Single(paths)
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	default:
		return nil, fmt.Errorf("%q is not a known MST file type", ext)
	case ".moc":
		return r.readMOC(path)
	case ".xlsx":
		return r.readXLSX(path)
	case ".txt":
		return r.readTXT(path)
	}
}

// Convert runs the full pipeline over one file: decode, project, fold,
// render.
func (r *Reader) Convert(paths ...string) (string, error) {
	table, err := Table()
	if err != nil {
		return "", err
	}

	measurements, err := r.Read(paths...)
	if err != nil {
		return "", err
	}

	readers.LogUnmapped(r.logger, table, measurements)

	return convert.ToJSON(table, measurements)
}

// Convert is the one-call conversion of a single MST file.
func Convert(path string) (string, error) {
	return New().Convert(path)
}
