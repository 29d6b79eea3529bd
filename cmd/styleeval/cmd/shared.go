package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/sjson"

	"github.com/tschaub/openlayers/pkg/styleexpr"
)

// typeFlags maps the --type flag's accepted spellings to their
// styleexpr.Type.
var typeFlags = map[string]styleexpr.Type{
	"boolean":      styleexpr.Boolean,
	"number":       styleexpr.Number,
	"string":       styleexpr.String,
	"color":        styleexpr.ColorType,
	"number-array": styleexpr.NumberArray,
	"size":         styleexpr.SizeType,
}

func parseType(name string) (styleexpr.Type, error) {
	t, ok := typeFlags[name]
	if !ok {
		return "", fmt.Errorf("unknown --type %q (want one of boolean, number, string, color, number-array, size)", name)
	}
	return t, nil
}

// loadContextDocument reads contextFile (YAML or JSON, detected by
// extension; YAML is converted to JSON via goccy/go-yaml) and layers the
// --set key=value pairs on top using sjson, returning the resulting JSON
// document. With no contextFile, the document starts as "{}".
func loadContextDocument(contextFile string, sets []string) ([]byte, error) {
	doc := []byte("{}")

	if contextFile != "" {
		raw, err := os.ReadFile(contextFile)
		if err != nil {
			return nil, fmt.Errorf("reading context file: %w", err)
		}
		if strings.HasSuffix(contextFile, ".yaml") || strings.HasSuffix(contextFile, ".yml") {
			converted, err := yaml.YAMLToJSON(raw)
			if err != nil {
				return nil, fmt.Errorf("parsing YAML context file: %w", err)
			}
			doc = converted
		} else {
			doc = raw
		}
	}

	for _, set := range sets {
		key, value, ok := strings.Cut(set, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q, want key=value", set)
		}
		updated, err := sjson.SetBytes(doc, key, value)
		if err != nil {
			return nil, fmt.Errorf("applying --set %q: %w", set, err)
		}
		doc = updated
	}

	return doc, nil
}

// decodeExpression parses the command line's JSON-encoded expression
// argument, e.g. ["interpolate",["linear"],["zoom"],0,4,18,20].
func decodeExpression(encoded string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(encoded), &v); err != nil {
		return nil, fmt.Errorf("parsing expression: %w", err)
	}
	return v, nil
}
