package bli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"biometa-converter/convert"
	"biometa-converter/internal/common"
	"biometa-converter/readers"
)

// Reader decodes Octet .frd sensor files.
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

// New returns a BLI reader.
func New(opts ...Option) *Reader {
	r := &Reader{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

var _ readers.Reader = (*Reader)(nil)

// Read decodes a sensor file set into ordered measurements, one per
// kinetic step per sensor, sensors in argument order.
func (r *Reader) Read(paths ...string) ([]convert.Measurement, error) {
	if common.IsEmpty(paths) {
		return nil, errors.New("no input files were supplied")
	}

	for _, path := range paths {
		if ext := strings.ToLower(filepath.Ext(path)); ext != ".frd" {
			return nil, fmt.Errorf("only raw BLI Octet data files (.frd) are allowed, got %q", ext)
		}
	}

	files := make([]frdFile, 0, len(paths))
	for _, path := range paths {
		file, err := readFRD(path)
		if err != nil {
			return nil, err
		}

		files = append(files, file)
	}

	r.checkSingleRun(paths, files)

	var measurements []convert.Measurement

	for i, file := range files {
		ms, err := sensorMeasurements(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", paths[i], err)
		}

		measurements = append(measurements, ms...)
	}

	return measurements, nil
}

// checkSingleRun verifies the inputs came from one instrument run. The
// run id is a uuid every sensor file of the run repeats. Mixed runs
// still convert, so a mismatch only warns.
//
// TODO: when files come from different runs, check that a compatible
// protocol was used in all of them.
func (r *Reader) checkSingleRun(paths []string, files []frdFile) {
	runs := make(map[uuid.UUID]struct{})

	for i, file := range files {
		id, err := uuid.Parse(file.ExperimentInfo.RunID)
		if err != nil {
			r.logger.Warn("run id is not a uuid",
				zap.String("file", paths[i]),
				zap.String("run_id", file.ExperimentInfo.RunID))

			continue
		}

		runs[id] = struct{}{}
	}

	if len(runs) > 1 {
		r.logger.Warn("the files originate from multiple runs",
			zap.Int("runs", len(runs)))
	}
}

// Convert runs the full pipeline over a sensor file set: decode,
// project, fold, render.
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

// Convert is the one-call conversion of a sensor file set.
func Convert(paths ...string) (string, error) {
	return New().Convert(paths...)
}
