package mst

import (
	_ "embed"
	"sync"

	"biometa-converter/schema"
)

//go:embed table.yaml
var tableYAML []byte

// Table returns the MST template table. The embedded YAML parses once;
// all callers share the same read-only table.
var Table = sync.OnceValues(func() (*schema.Table, error) {
	return schema.Load(tableYAML)
})
