// Package diagnostic provides structured fault collection for template
// table loading and decoder validation.
//
// Key capabilities:
//   - Collect every fault of a load in one pass instead of failing on the first
//   - Per-fault vendor field and document path attribution
//   - Severity levels with a combined error rendering
package diagnostic
