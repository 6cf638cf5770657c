package mst

import (
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"biometa-converter/convert"
	"biometa-converter/document"
	"biometa-converter/readers"
)

// A .moc file is an sqlite database written by the instrument control
// software: one mMst row per capillary, joined to its container slot.
// Sample annotations hang off a separate table, referenced by ids packed
// into a single ';'-separated string column.
const (
	mocCapillaryQuery = `
		SELECT
			mMst.ID, tCapillary.Annotations, IndexOnParentContainer,
			ExcitationPower, MstPower, MstTrace
		FROM
			mMst
		INNER JOIN
			tCapillary ON mMst.container = tCapillary.ID`

	mocAnnotationQuery = `
		SELECT
			AnnotationRole, AnnotationType, Caption, NumericValue
		FROM
			Annotation
		WHERE ID = :anno_id`
)

func (r *Reader) readMOC(path string) ([]convert.Measurement, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(mocCapillaryQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query capillaries in %s: %w", path, err)
	}
	defer rows.Close()

	var measurements []convert.Measurement

	for rows.Next() {
		var (
			id          any
			annotations string
			slot        int64
			excitation  any
			mstPower    any
			trace       []byte
		)

		if err := rows.Scan(&id, &annotations, &slot, &excitation, &mstPower, &trace); err != nil {
			return nil, fmt.Errorf("failed to scan capillary row: %w", err)
		}

		m := convert.NewMeasurement(
			convert.Field{Name: "Capillary Position", Value: document.NewInt(slot + 1)},
			convert.Field{Name: "Excitation-Power", Value: sqlValue(excitation)},
			convert.Field{Name: "MST-Power", Value: sqlValue(mstPower)},
		)

		if err := annotate(db, &m, annotations); err != nil {
			return nil, fmt.Errorf("capillary %v: %w", id, err)
		}

		times, counts, err := splitTrace(trace)
		if err != nil {
			return nil, fmt.Errorf("capillary %v: %w", id, err)
		}

		m.Add("Time [s]", document.NewFloatList(times))
		m.Add("Raw Fluorescence [counts]", document.NewFloatList(counts))

		r.logger.Debug("decoded capillary",
			zap.Any("id", id),
			zap.Int64("position", slot+1),
			zap.Int("points", len(times)))

		measurements = append(measurements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read capillaries in %s: %w", path, err)
	}

	return measurements, nil
}

// annotate resolves the annotation ids attached to a capillary and adds
// the sample fields they describe. Concentrations are stored in mM for
// unknown reasons and rescale to M on the way out.
func annotate(db *sql.DB, m *convert.Measurement, annotations string) error {
	for _, annoID := range strings.Split(annotations, ";") {
		if annoID == "" {
			continue
		}

		var (
			role    string
			kind    sql.NullString
			caption sql.NullString
			numeric sql.NullFloat64
		)

		row := db.QueryRow(mocAnnotationQuery, sql.Named("anno_id", annoID))
		if err := row.Scan(&role, &kind, &caption, &numeric); err != nil {
			return fmt.Errorf("failed to resolve annotation %s: %w", annoID, err)
		}

		switch role {
		default:
			return fmt.Errorf("unknown annotation role %q (type %s)", role, kind.String)
		case "ligand":
			m.Add("Ligand", document.NewString(caption.String))
			m.Add("Ligand Concentration", document.NewFloat(numeric.Float64*1e-3))
		case "target":
			m.Add("Target", document.NewString(caption.String))
			m.Add("TargetConcentration", document.NewFloat(numeric.Float64*1e-3))
		case "dilutionseries":
			// the series annotation carries nothing the document stores
		}
	}

	return nil
}

// splitTrace decodes the interleaved trace blob: even offsets hold time
// in seconds, odd offsets raw fluorescence counts.
func splitTrace(blob []byte) (times, counts []float64, err error) {
	values, err := readers.Float32Slice(blob)
	if err != nil {
		return nil, nil, fmt.Errorf("bad MstTrace blob: %w", err)
	}

	times = make([]float64, 0, (len(values)+1)/2)
	counts = make([]float64, 0, len(values)/2)

	for i, v := range values {
		if i%2 == 0 {
			times = append(times, v)
		} else {
			counts = append(counts, v)
		}
	}

	return times, counts, nil
}

// sqlValue types whatever the driver produced, keeping the vendor's
// storage classes: powers are REAL in some file versions and TEXT in
// others.
func sqlValue(v any) document.Value {
	switch x := v.(type) {
	default:
		return document.NewString(fmt.Sprint(x))
	case nil:
		return document.Value{}
	case int64:
		return document.NewInt(x)
	case float64:
		return document.NewFloat(x)
	case string:
		return document.NewString(x)
	case []byte:
		return document.NewString(string(x))
	case bool:
		return document.NewBool(x)
	}
}
