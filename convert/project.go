package convert

import (
	"biometa-converter/document"
	"biometa-converter/schema"
)

// Fragment is a filled-in template: one vendor field's contribution to a
// record, shaped like the slice of the canonical document it populates.
type Fragment = document.Value

// Record is the union of one measurement's fragments.
type Record = document.Value

// Project fills the template registered for the vendor field with the
// field's value. The false return means the table has no entry for this
// name; such fields are expected and silently dropped, not errors.
func Project(table *schema.Table, f Field) (Fragment, bool) {
	tmpl, ok := table.Lookup(f.Name)
	if !ok {
		return Fragment{}, false
	}

	return tmpl.Fill(f.Value), true
}
