package document

import (
	"errors"
	"fmt"
	"strings"
)

// ArrayMarker is the key suffix declaring that a branch collapses into an
// ordered list when records are aggregated.
const ArrayMarker = "[]"

// Key identifies one entry of a Mapping. The source-form "[]" suffix is
// resolved into the Repeatable flag exactly once, at parse time; no other
// code re-inspects key spellings.
type Key struct {
	Name       string
	Repeatable bool
}

// ParseKey parses a source-form key.
// Supports: "position", "measurements[]".
func ParseKey(s string) (Key, error) {
	if s == "" {
		return Key{}, errors.New("empty key")
	}

	if !strings.HasSuffix(s, ArrayMarker) {
		return Key{Name: s}, nil
	}

	name := strings.TrimSuffix(s, ArrayMarker)
	if name == "" {
		return Key{}, fmt.Errorf("invalid key %q: marker without a name", s)
	}

	return Key{Name: name, Repeatable: true}, nil
}

// MustKey is ParseKey for statically known keys; it panics on malformed input.
func MustKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}

	return k
}

// Plain returns the key with the marker cleared.
func (k Key) Plain() Key {
	return Key{Name: k.Name}
}

// String renders the key back in source form, marker suffix included.
func (k Key) String() string {
	if k.Repeatable {
		return k.Name + ArrayMarker
	}

	return k.Name
}
