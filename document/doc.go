// Package document provides the typed recursive value model for converted
// instrument metadata: tagged values, ordered mappings, array-marked keys,
// and JSON text rendering.
//
// Key capabilities:
//   - Tagged Value variant (mapping | list | string | int | float | bool)
//   - Insertion-ordered Mapping with by-name lookup
//   - Key descriptor resolving the "[]" marker suffix exactly once
//   - Structural equality with cross-kind numeric comparison
//   - Deep cloning with no shared state between copies
//   - Compact and 2-space indented JSON text, NaN and Infinity included
package document
