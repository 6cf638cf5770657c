// Package schema provides the declarative template tables that drive
// conversion: per instrument family, one nested document template per
// vendor field name, each with exactly one placeholder.
//
// Key capabilities:
//   - YAML table declarations with order-preserving parsing
//   - Programmatic table construction for embedded and test use
//   - Load-time validation collecting every fault before failing
//   - Immutable templates filled by clone, never by mutation
//
// # Table YAML
//
// A table file is one YAML mapping from vendor field name to template
// tree. Keys inside templates may carry the "[]" array marker; the
// placeholder is the string "#_insert":
//
//	MST-Power:
//	  method_specific_parameters:
//	    ir_mst_laser_power: "#_insert"
//	"Capillary Position":
//	  method_specific_parameters:
//	    "measurements[]":
//	      position: "#_insert"
package schema
