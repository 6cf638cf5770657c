package convert

import (
	"errors"
	"fmt"
	"strings"

	"biometa-converter/document"
)

var (
	// ErrRecordConflict is returned when two fragments of the same
	// measurement claim the same path with anything but two mappings.
	ErrRecordConflict = errors.New("conflicting record fragments")
)

// ComposeRecord unions the fragments of one measurement into a single
// record. Fragments never overwrite each other: where two of them reach
// the same key, both values must be mappings and the union recurses.
// Anything else at a shared key, including two equal scalars, means two
// templates were written to populate the same target and is reported as
// ErrRecordConflict.
func ComposeRecord(fragments ...Fragment) (Record, error) {
	record := document.NewMapping()

	for _, f := range fragments {
		if f.Kind() != document.KindMapping {
			return Record{}, fmt.Errorf("%w: fragment root is %s, expected a mapping",
				ErrRecordConflict, f.Kind())
		}

		if err := union(record.Map(), f.Map(), nil); err != nil {
			return Record{}, err
		}
	}

	return record, nil
}

func union(dst, src *document.Mapping, path []string) error {
	for _, e := range src.Entries() {
		existing, ok := dst.Lookup(e.Key.Name)
		if !ok {
			dst.Put(e.Key, e.Value.Clone())
			continue
		}

		if existing.Key != e.Key {
			return fmt.Errorf("%w at %s: array marker disagreement",
				ErrRecordConflict, joinPath(path, e.Key.Name))
		}

		if existing.Value.Kind() != document.KindMapping || e.Value.Kind() != document.KindMapping {
			return fmt.Errorf("%w at %s: %s vs %s", ErrRecordConflict,
				joinPath(path, e.Key.Name), existing.Value.Kind(), e.Value.Kind())
		}

		if err := union(existing.Value.Map(), e.Value.Map(), append(path, e.Key.String())); err != nil {
			return err
		}
	}

	return nil
}

func joinPath(path []string, name string) string {
	if len(path) == 0 {
		return name
	}

	return strings.Join(path, ".") + "." + name
}
