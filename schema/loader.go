package schema

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"biometa-converter/document"
	"biometa-converter/internal/diagnostic"
)

// LoadFile loads and validates a YAML table file from the given path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file %s: %w", path, err)
	}

	return Load(data)
}

// Load parses and validates YAML table data. Every template of the table
// is checked before failing, so one load reports all configuration faults
// at once.
func Load(data []byte) (*Table, error) {
	root, err := unmarshalRoot(data)
	if err != nil {
		return nil, err
	}

	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: table root must be a mapping", ErrMalformedTemplate)
	}

	table := &Table{templates: make(map[string]Template)}

	var diags diagnostic.Diagnostics

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		field := keyNode.Value

		if _, exists := table.templates[field]; exists {
			diags.AddError("duplicate_field", "vendor field declared twice", field, "")

			continue
		}

		tmplRoot, err := parseNode(valNode)
		if err != nil {
			diags.AddError("bad_template", err.Error(), field, "")

			continue
		}

		if path, ok := validate(field, tmplRoot, &diags); ok {
			table.put(Template{field: field, path: path, root: tmplRoot})
		}
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTemplate, diags.Error())
	}

	return table, nil
}

// NewTable builds a validated table from already parsed templates, keyed
// by vendor field name. Fields register in sorted name order.
func NewTable(templates map[string]document.Value) (*Table, error) {
	fields := make([]string, 0, len(templates))
	for field := range templates {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	table := &Table{templates: make(map[string]Template)}

	var diags diagnostic.Diagnostics

	for _, field := range fields {
		if path, ok := validate(field, templates[field], &diags); ok {
			table.put(Template{field: field, path: path, root: templates[field]})
		}
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTemplate, diags.Error())
	}

	return table, nil
}

// ParseValue parses one YAML document into a document value, resolving
// "[]" key markers. Tests and table fixtures lean on it for terse nested
// documents.
func ParseValue(data []byte) (document.Value, error) {
	root, err := unmarshalRoot(data)
	if err != nil {
		return document.Value{}, err
	}

	return parseNode(root)
}

func unmarshalRoot(data []byte) (*yaml.Node, error) {
	var root yaml.Node

	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) != 1 {
			return nil, fmt.Errorf("expected one YAML document, got %d", len(node.Content))
		}

		node = node.Content[0]
	}

	return node, nil
}

// parseNode converts one YAML node into a document value. Keys run
// through document.ParseKey, duplicate resolved names at one level are
// rejected, and null values have no representation in converted
// documents.
func parseNode(n *yaml.Node) (document.Value, error) {
	switch n.Kind {
	default:
		return document.Value{}, fmt.Errorf("line %d: unsupported YAML node kind", n.Line)

	case yaml.AliasNode:
		return parseNode(n.Alias)

	case yaml.ScalarNode:
		return parseScalar(n)

	case yaml.SequenceNode:
		items := make([]document.Value, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := parseNode(c)
			if err != nil {
				return document.Value{}, err
			}

			items = append(items, item)
		}

		return document.NewList(items...), nil

	case yaml.MappingNode:
		entries := make([]document.Entry, 0, len(n.Content)/2)
		seen := make(map[string]struct{})

		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]

			key, err := document.ParseKey(keyNode.Value)
			if err != nil {
				return document.Value{}, fmt.Errorf("line %d: %w", keyNode.Line, err)
			}

			if _, dup := seen[key.Name]; dup {
				return document.Value{}, fmt.Errorf("line %d: duplicate key %q", keyNode.Line, key.Name)
			}

			seen[key.Name] = struct{}{}

			val, err := parseNode(valNode)
			if err != nil {
				return document.Value{}, err
			}

			entries = append(entries, document.Entry{Key: key, Value: val})
		}

		return document.NewMapping(entries...), nil
	}
}

func parseScalar(n *yaml.Node) (document.Value, error) {
	switch n.Tag {
	default:
		return document.Value{}, fmt.Errorf("line %d: unsupported scalar tag %s", n.Line, n.Tag)

	case "!!str":
		return document.NewString(n.Value), nil

	case "!!int":
		i, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			return document.Value{}, fmt.Errorf("line %d: invalid integer %q", n.Line, n.Value)
		}

		return document.NewInt(i), nil

	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return document.Value{}, fmt.Errorf("line %d: invalid float %q", n.Line, n.Value)
		}

		return document.NewFloat(f), nil

	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return document.Value{}, fmt.Errorf("line %d: invalid bool %q", n.Line, n.Value)
		}

		return document.NewBool(b), nil

	case "!!null":
		return document.Value{}, fmt.Errorf("line %d: null values are not supported", n.Line)
	}
}
