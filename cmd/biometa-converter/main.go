// Package main provides the CLI entrypoint for biometa-converter.
//
// biometa-converter turns raw biophysical instrument files into one
// canonical JSON metadata document:
//   - Decodes MST (.moc, .xlsx, .txt), BLI (.frd) and SPR (OLE) exports
//   - Projects vendor fields through per-family template tables
//   - Folds per-measurement records into a single document
//   - Renders indented JSON with NaN-preserving number formatting
package main

import (
	"fmt"
	"os"
)

func main() {
	// TODO: Implement CLI commands: mst, bli, spr
	fmt.Println("biometa-converter - converts raw instrument files to canonical JSON metadata")
	fmt.Println("Commands: mst | bli | spr")
	fmt.Println("Run with -help for usage information")
	os.Exit(0)
}
