package spr

import (
	"fmt"
	"os"

	"github.com/richardlehane/mscfb"
	"go.uber.org/zap"

	"biometa-converter/convert"
	"biometa-converter/readers"
)

// Reader decodes Biacore SPR files.
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

// New returns an SPR reader.
func New(opts ...Option) *Reader {
	r := &Reader{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

var _ readers.Reader = (*Reader)(nil)

// Read decodes the single input file into flow cell measurements in
// stream order.
func (r *Reader) Read(paths ...string) ([]convert.Measurement, error) {
	path, err := readers.Single(paths)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	doc, err := mscfb.New(file)
	if err != nil {
		return nil, fmt.Errorf("%s is not an OLE compound file: %w", path, err)
	}

	streams, err := collectStreams(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", path, err)
	}

	return sensorgramMeasurements(streams, r.logger)
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

// Convert is the one-call conversion of a single SPR file.
func Convert(path string) (string, error) {
	return New().Convert(path)
}
