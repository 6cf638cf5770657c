package document

// Entry is one key/value pair of a Mapping.
type Entry struct {
	Key   Key
	Value Value
}

// Mapping is an insertion-ordered collection of entries with names unique
// per level. Order is externally observable through JSON rendering; the
// aggregation fold relies on it for first-seen list order.
type Mapping struct {
	entries []Entry
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}

	return len(m.entries)
}

// Entries returns the backing entry slice in insertion order.
// Callers must not modify it; use Put to change the mapping.
func (m *Mapping) Entries() []Entry {
	if m == nil {
		return nil
	}

	return m.entries
}

// Lookup returns the entry stored under the given name.
func (m *Mapping) Lookup(name string) (Entry, bool) {
	if m == nil {
		return Entry{}, false
	}

	for _, e := range m.entries {
		if e.Key.Name == name {
			return e, true
		}
	}

	return Entry{}, false
}

// Get returns the value stored under the given name.
func (m *Mapping) Get(name string) (Value, bool) {
	e, ok := m.Lookup(name)

	return e.Value, ok
}

// Has reports whether an entry with the given name exists.
func (m *Mapping) Has(name string) bool {
	_, ok := m.Lookup(name)

	return ok
}

// Put stores the value under the key. A new name appends at the end; an
// existing name keeps its position and has both its stored key and value
// replaced, which is how marker flags are rewritten without reordering.
func (m *Mapping) Put(key Key, v Value) {
	for i := range m.entries {
		if m.entries[i].Key.Name == key.Name {
			m.entries[i] = Entry{Key: key, Value: v}

			return
		}
	}

	m.entries = append(m.entries, Entry{Key: key, Value: v})
}

// equal compares two mappings as unordered sets of (key, value) pairs.
// Key equality covers the Repeatable flag, not just the name.
func (m *Mapping) equal(other *Mapping) bool {
	if m.Len() != other.Len() {
		return false
	}

	for _, e := range m.Entries() {
		found, ok := other.Lookup(e.Key.Name)
		if !ok || found.Key != e.Key || !found.Value.Equal(e.Value) {
			return false
		}
	}

	return true
}
