// Package convert is the format-agnostic conversion engine: it projects
// extracted vendor fields onto schema templates and folds the resulting
// records into one aggregate document.
//
// Key capabilities:
//   - Project one (field, value) pair through its template into a Fragment
//   - Union a measurement's fragments into a Record, conflicts surfaced
//   - Fold ordered Records into one document, array-marked branches
//     collapsing into deduplicated first-seen-order lists
//   - Serialize the fold as indented JSON text
//
// The pipeline is synchronous and deterministic: the same table and the
// same ordered measurements always produce byte-identical JSON. Records
// fold strictly in extraction order; that order decides which list
// element was seen first and is part of the engine's contract.
//
// # Array semantics
//
// A key spelled "name[]" in a template declares that its branch collects
// one list element per record. While folding, every still-marked key at a
// visited level is first rewritten into a plain key holding a one-element
// list; an incoming marked value is then appended unless a structurally
// equal element is already present. Two normalization modes exist:
// NormalizeLazy only rewrites levels the fold actually visits, which
// reproduces the historical behavior of leaving a nested marker suffix
// untouched when only a single record ever contributed that branch;
// NormalizeEager rewrites every marker at insertion so no suffix can
// survive into the output. See Config.
package convert
