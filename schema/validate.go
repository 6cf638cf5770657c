package schema

import (
	"fmt"
	"strconv"
	"strings"

	"biometa-converter/document"
	"biometa-converter/internal/common"
	"biometa-converter/internal/diagnostic"
)

// validate checks one template tree and reports its faults. On success it
// returns the placeholder path.
func validate(field string, root document.Value, diags *diagnostic.Diagnostics) (string, bool) {
	if root.Kind() != document.KindMapping {
		diags.AddError("bad_root",
			"template root must be a mapping, got "+root.Kind().String(), field, "")

		return "", false
	}

	paths := placeholderPaths(root)
	switch {
	case common.IsEmpty(paths):
		diags.AddError("no_placeholder", "template contains no placeholder", field, "")

		return "", false

	case common.IsMultiple(paths):
		diags.AddError("multiple_placeholders",
			fmt.Sprintf("template contains %d placeholders", len(paths)),
			field, strings.Join(paths, ", "))

		return "", false
	}

	return paths[0], true
}

// placeholderPaths collects the document paths of every placeholder in
// the tree, depth-first in document order. List levels contribute their
// element index as a path segment.
func placeholderPaths(v document.Value) []string {
	var paths []string

	walkPlaceholders(v, "", &paths)

	return paths
}

func walkPlaceholders(v document.Value, path string, paths *[]string) {
	switch v.Kind() {
	case document.KindString:
		if v.StringVal() == Placeholder {
			*paths = append(*paths, path)
		}

	case document.KindList:
		for i, item := range v.Items() {
			walkPlaceholders(item, childPath(path, strconv.Itoa(i)), paths)
		}

	case document.KindMapping:
		for _, e := range v.Map().Entries() {
			walkPlaceholders(e.Value, childPath(path, e.Key.String()), paths)
		}
	}
}

func childPath(parent, segment string) string {
	if parent == "" {
		return segment
	}

	return parent + "." + segment
}
