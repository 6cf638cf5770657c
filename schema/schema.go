package schema

import (
	"errors"

	"biometa-converter/document"
)

// Placeholder is the sentinel scalar marking the slot a projection fills.
const Placeholder = "#_insert"

// ErrMalformedTemplate marks configuration faults found while loading a
// table: templates with zero or several placeholders, unparseable keys,
// or non-mapping roots.
var ErrMalformedTemplate = errors.New("malformed schema template")

// Template is one vendor field's immutable document template. It is built
// by Load or NewTable after validation, so it always holds exactly one
// placeholder.
type Template struct {
	field string
	path  string
	root  document.Value
}

// Field returns the vendor field name the template is registered under.
func (t Template) Field() string {
	return t.field
}

// Path returns the document path of the placeholder, resolved at load
// time, e.g. "method_specific_parameters.measurements[].position".
func (t Template) Path() string {
	return t.path
}

// Fill returns a fresh document with the placeholder replaced by a clone
// of the given value. The template itself is never mutated; repeated
// fills are independent. A list value fills the slot as one list, never
// flattened.
func (t Template) Fill(v document.Value) document.Value {
	filled, _ := fill(t.root, v, false)

	return filled
}

// fill rebuilds the template tree depth-first in document order, swapping
// the first placeholder encountered for a clone of the replacement.
func fill(node, repl document.Value, done bool) (document.Value, bool) {
	switch node.Kind() {
	default:
		return node, done

	case document.KindString:
		if !done && node.StringVal() == Placeholder {
			return repl.Clone(), true
		}

		return node, done

	case document.KindList:
		items := make([]document.Value, len(node.Items()))
		for i, item := range node.Items() {
			items[i], done = fill(item, repl, done)
		}

		return document.NewList(items...), done

	case document.KindMapping:
		entries := make([]document.Entry, 0, node.Map().Len())
		for _, e := range node.Map().Entries() {
			var child document.Value
			child, done = fill(e.Value, repl, done)
			entries = append(entries, document.Entry{Key: e.Key, Value: child})
		}

		return document.NewMapping(entries...), done
	}
}

// Table is the read-only vendor-field to template collection of one
// instrument family.
type Table struct {
	templates map[string]Template
	fields    []string
}

// Lookup returns the template registered for the vendor field name.
func (t *Table) Lookup(field string) (Template, bool) {
	if t == nil {
		return Template{}, false
	}

	tmpl, ok := t.templates[field]

	return tmpl, ok
}

// Fields returns the vendor field names in declaration order.
func (t *Table) Fields() []string {
	if t == nil {
		return nil
	}

	fields := make([]string, len(t.fields))
	copy(fields, t.fields)

	return fields
}

// Len returns the number of registered templates.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.templates)
}

func (t *Table) put(tmpl Template) {
	t.templates[tmpl.field] = tmpl
	t.fields = append(t.fields, tmpl.field)
}
