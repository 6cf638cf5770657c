// Package similar provides vendor field name normalization, Levenshtein
// distance, and nearest-name ranking.
//
// Readers use it to suggest the closest template table entries when an
// extracted vendor field turns out to be unmapped. Suggestions are
// reporting only; they never change what the engine does with a field.
package similar
