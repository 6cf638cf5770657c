// Package mst decodes MicroScale Thermophoresis runs written by
// NanoTemper instruments. Three storage formats carry the same logical
// content and share one template table:
//
//   - .moc, the instrument's own sqlite database
//   - .xlsx, the spreadsheet export of a .moc file
//   - .txt, the tab-separated export, raw traces plus ligand
//     concentrations only
//
// One file holds one run; the reader emits one measurement per
// capillary, fields ordered the way each format presents them.
package mst
