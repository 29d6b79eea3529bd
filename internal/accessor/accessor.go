package accessor

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/tschaub/openlayers/internal/parsectx"
	"github.com/tschaub/openlayers/internal/valuetype"
)

// Value is a processed accessor value: a typed, coerced value tagged with
// the slug its accessor was registered under.
type Value struct {
	Slug  string
	Type  valuetype.Type
	Value any
}

// Process walks raw (a JSON document) for every accessor in metadata and
// returns a flat lookup from accessor key to processed value. An accessor
// whose path is missing in raw and has no registered default is omitted
// from the result entirely, never an error.
func Process(raw []byte, metadata map[string]*parsectx.Accessor, parseColor valuetype.ColorParser) (map[string]Value, error) {
	out := make(map[string]Value, len(metadata))
	parsed := gjson.ParseBytes(raw)

	for key, info := range metadata {
		resolved, ok := resolve(parsed, info)
		if !ok {
			continue
		}
		coerced, err := valuetype.Coerce(resolved, info.Type, parseColor)
		if err != nil {
			return nil, err
		}
		out[key] = Value{Slug: info.Slug, Type: info.Type, Value: coerced}
	}

	return out, nil
}

// ProcessMap is Process's convenience form for callers that already have a
// decoded map/slice tree (typical for in-process Go callers assembling a
// feature's properties by hand rather than from a JSON payload).
func ProcessMap(raw map[string]any, metadata map[string]*parsectx.Accessor, parseColor valuetype.ColorParser) (map[string]Value, error) {
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	return Process(encoded, metadata, parseColor)
}

// resolve walks doc along info.Path, returning the leaf value (JSON-native:
// bool, float64, string, []any, map[string]any, or nil) and true, or the
// declared default and true if the path is missing but a default was
// registered, or (nil, false) if the accessor is absent with no default.
func resolve(doc gjson.Result, info *parsectx.Accessor) (any, bool) {
	result := doc.Get(gjsonPath(info.Path))
	if result.Exists() {
		return result.Value(), true
	}
	if info.HasDefault {
		return info.Default, true
	}
	return nil, false
}

// gjsonPath renders an accessor path as a gjson query path, escaping the
// characters gjson treats specially within a path segment.
func gjsonPath(path []any) string {
	parts := make([]string, len(path))
	for i, seg := range path {
		switch v := seg.(type) {
		case string:
			parts[i] = escapeSegment(v)
		case int:
			parts[i] = strconv.Itoa(v)
		default:
			parts[i] = escapeSegment(fallbackString(v))
		}
	}
	return strings.Join(parts, ".")
}

var gjsonSpecial = strings.NewReplacer(
	".", `\.`,
	"*", `\*`,
	"?", `\?`,
	"|", `\|`,
	"#", `\#`,
)

func escapeSegment(s string) string {
	return gjsonSpecial.Replace(s)
}

func fallbackString(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(n, 10)
	default:
		return ""
	}
}
