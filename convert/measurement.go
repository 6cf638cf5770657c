package convert

import (
	"biometa-converter/document"
)

// Field is one extracted vendor fact: an instrument-native field name and
// its decoded value.
type Field struct {
	Name  string
	Value document.Value
}

// Measurement is the ordered field sequence a decoder emits for one
// physical unit of acquisition, a capillary, a sensor step, a flow cell.
// Order is part of the contract: it drives fragment composition and,
// through folding, the order of every collected list.
type Measurement struct {
	fields []Field
}

// NewMeasurement returns a measurement holding the given fields in order.
func NewMeasurement(fields ...Field) Measurement {
	var m Measurement
	for _, f := range fields {
		m.Add(f.Name, f.Value)
	}

	return m
}

// Add appends a field. When the name is already present its value is
// replaced in place and the original position kept.
func (m *Measurement) Add(name string, v document.Value) {
	for i := range m.fields {
		if m.fields[i].Name == name {
			m.fields[i].Value = v
			return
		}
	}

	m.fields = append(m.fields, Field{Name: name, Value: v})
}

// Get returns the value stored under the field name.
func (m Measurement) Get(name string) (document.Value, bool) {
	for _, f := range m.fields {
		if f.Name == name {
			return f.Value, true
		}
	}

	return document.Value{}, false
}

// Fields returns the fields in order. Callers must not modify the
// returned slice.
func (m Measurement) Fields() []Field {
	return m.fields
}

// Len returns the number of fields.
func (m Measurement) Len() int {
	return len(m.fields)
}
