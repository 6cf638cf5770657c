package convert

import (
	"biometa-converter/schema"
)

// ComposeMeasurement projects every mapped field of the measurement and
// unions the fragments into one record. Fields without a table entry are
// silently dropped.
func ComposeMeasurement(table *schema.Table, m Measurement) (Record, error) {
	fragments := make([]Fragment, 0, m.Len())

	for _, f := range m.Fields() {
		if frag, ok := Project(table, f); ok {
			fragments = append(fragments, frag)
		}
	}

	return ComposeRecord(fragments...)
}

// UnmappedFields returns the names of the measurement's fields that have
// no table entry, in measurement order. Decoders surface these in their
// logs so a dropped field is at least visible.
func UnmappedFields(table *schema.Table, m Measurement) []string {
	var unmapped []string

	for _, f := range m.Fields() {
		if _, ok := table.Lookup(f.Name); !ok {
			unmapped = append(unmapped, f.Name)
		}
	}

	return unmapped
}

// ToJSON runs the full pipeline over the ordered measurements and
// renders the aggregate as indented JSON. The same table and the same
// measurement order always yield byte-identical output.
func ToJSON(table *schema.Table, measurements []Measurement) (string, error) {
	return ToJSONWith(DefaultConfig(), table, measurements)
}

// ToJSONWith is ToJSON under an explicit aggregation configuration.
func ToJSONWith(cfg Config, table *schema.Table, measurements []Measurement) (string, error) {
	agg := New(cfg)

	for _, m := range measurements {
		record, err := ComposeMeasurement(table, m)
		if err != nil {
			return "", err
		}

		if err := agg.Fold(record); err != nil {
			return "", err
		}
	}

	return agg.Document().JSONIndent(), nil
}
