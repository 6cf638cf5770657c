package document

// Value is one node of a converted document: a tagged variant over the
// shapes instrument metadata can take. The zero Value is invalid (its Kind
// is the zero KindEnum); construct values with the New* functions.
type Value struct {
	kind KindEnum

	str     string
	integer int64
	float   float64
	boolean bool
	items   []Value
	mapping *Mapping
}

// NewString returns a string value.
func NewString(s string) Value {
	return Value{kind: KindString, str: s}
}

// NewInt returns an integer value.
func NewInt(i int64) Value {
	return Value{kind: KindInt, integer: i}
}

// NewFloat returns a floating point value.
func NewFloat(f float64) Value {
	return Value{kind: KindFloat, float: f}
}

// NewBool returns a boolean value.
func NewBool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// NewList returns a list value owning the given elements.
func NewList(items ...Value) Value {
	return Value{kind: KindList, items: items}
}

// NewFloatList returns a list value holding one float element per input.
// Decoded instrument traces arrive this way.
func NewFloatList(fs []float64) Value {
	items := make([]Value, len(fs))
	for i, f := range fs {
		items[i] = NewFloat(f)
	}

	return NewList(items...)
}

// NewStringList returns a list value holding one string element per input.
func NewStringList(ss []string) Value {
	items := make([]Value, len(ss))
	for i, s := range ss {
		items[i] = NewString(s)
	}

	return NewList(items...)
}

// NewMapping returns a mapping value holding the given entries in order.
// A later entry with an already used name replaces the earlier one in place.
func NewMapping(entries ...Entry) Value {
	m := &Mapping{}
	for _, e := range entries {
		m.Put(e.Key, e.Value)
	}

	return Value{kind: KindMapping, mapping: m}
}

// KV builds a mapping entry from a source-form key; malformed keys panic.
func KV(key string, v Value) Entry {
	return Entry{Key: MustKey(key), Value: v}
}

// Kind returns the kind tag of the value.
func (v Value) Kind() KindEnum {
	return v.kind
}

// IsValid reports whether the value was built by a constructor.
func (v Value) IsValid() bool {
	return v.kind != 0
}

// StringVal returns the string content, or "" for other kinds.
func (v Value) StringVal() string {
	return v.str
}

// IntVal returns the integer content, or 0 for other kinds.
func (v Value) IntVal() int64 {
	return v.integer
}

// FloatVal returns the float content, or 0 for other kinds.
func (v Value) FloatVal() float64 {
	return v.float
}

// BoolVal returns the boolean content, or false for other kinds.
func (v Value) BoolVal() bool {
	return v.boolean
}

// Items returns the list elements, or nil for other kinds.
// The slice is the value's own storage; callers must not modify it.
func (v Value) Items() []Value {
	return v.items
}

// Map returns the mapping content, or nil for other kinds.
func (v Value) Map() *Mapping {
	return v.mapping
}

// Clone returns a deep structural copy sharing no mutable state with the
// receiver.
func (v Value) Clone() Value {
	switch v.kind {
	default:
		return v

	case KindList:
		items := make([]Value, len(v.items))
		for i := range v.items {
			items[i] = v.items[i].Clone()
		}

		return Value{kind: KindList, items: items}

	case KindMapping:
		entries := make([]Entry, 0, v.mapping.Len())
		for _, e := range v.mapping.entries {
			entries = append(entries, Entry{Key: e.Key, Value: e.Value.Clone()})
		}

		return Value{kind: KindMapping, mapping: &Mapping{entries: entries}}
	}
}

// Equal reports structural equality. Mappings compare as unordered sets of
// (key, value) pairs, lists compare elementwise in order, and numbers
// compare across the int/float divide so that a value decoded as 1 equals
// one decoded as 1.0. NaN never equals anything, itself included. Two zero
// values are equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return equalCrossKind(v, other)
	}

	switch v.kind {
	default:
		// only the zero Value lands here; it holds no content to compare
		return true

	case KindString:
		return v.str == other.str

	case KindInt:
		return v.integer == other.integer

	case KindFloat:
		return v.float == other.float

	case KindBool:
		return v.boolean == other.boolean

	case KindList:
		if len(v.items) != len(other.items) {
			return false
		}

		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}

		return true

	case KindMapping:
		return v.mapping.equal(other.mapping)
	}
}

// equalCrossKind handles the single pair of kinds that compare despite
// differing tags: int against float.
func equalCrossKind(a, b Value) bool {
	switch {
	default:
		return false
	case a.kind == KindInt && b.kind == KindFloat:
		return float64(a.integer) == b.float
	case a.kind == KindFloat && b.kind == KindInt:
		return a.float == float64(b.integer)
	}
}
