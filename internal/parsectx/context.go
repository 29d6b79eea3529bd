package parsectx

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tschaub/openlayers/internal/valuetype"
)

// Accessor is the per-unique-accessor metadata record. Two accessors are
// the same iff (Path, Type, Default) match exactly.
type Accessor struct {
	Path       []any
	Type       valuetype.Type
	Default    any
	HasDefault bool
	Slug       string
}

// Context accumulates accessor metadata during a single parse. Its zero
// value is not usable; construct one with New.
type Context struct {
	properties    map[string]*Accessor
	propertyOrder []string
	variables     map[string]*Accessor
	variableOrder []string
	featureID     bool
	geometryType  bool
}

// New returns a fresh, empty parsing context.
func New() *Context {
	return &Context{
		properties: make(map[string]*Accessor),
		variables:  make(map[string]*Accessor),
	}
}

// RegisterProperty registers a "get"/"has" accessor against the properties
// mapping, returning the deduplicated metadata and its lookup key.
// Registering the same (path, type, default) twice returns the existing
// entry and preserves its original slug.
func (c *Context) RegisterProperty(path []any, t valuetype.Type, def any, hasDefault bool) (*Accessor, string) {
	return register(c.properties, &c.propertyOrder, path, t, def, hasDefault)
}

// RegisterVariable is RegisterProperty's analogue for the variables
// mapping; slug counters are kept separately per accessor kind.
func (c *Context) RegisterVariable(path []any, t valuetype.Type, def any, hasDefault bool) (*Accessor, string) {
	return register(c.variables, &c.variableOrder, path, t, def, hasDefault)
}

func register(table map[string]*Accessor, order *[]string, path []any, t valuetype.Type, def any, hasDefault bool) (*Accessor, string) {
	key := canonicalKey(path, t, def, hasDefault)
	if existing, ok := table[key]; ok {
		return existing, key
	}
	n := len(*order)
	acc := &Accessor{
		Path:       path,
		Type:       t,
		Default:    def,
		HasDefault: hasDefault,
		Slug:       slugFor(path, n),
	}
	table[key] = acc
	*order = append(*order, key)
	return acc, key
}

// slugFor builds "path.join('_') + '_' + n".
func slugFor(path []any, n int) string {
	parts := make([]string, len(path))
	for i, seg := range path {
		switch v := seg.(type) {
		case string:
			parts[i] = v
		case int:
			parts[i] = strconv.Itoa(v)
		default:
			parts[i] = strconv.Itoa(int(toInt(v)))
		}
	}
	return strings.Join(parts, "_") + "_" + strconv.Itoa(n)
}

func toInt(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	default:
		return 0
	}
}

// canonicalKey serializes (path, type, default) into a stable lookup key.
func canonicalKey(path []any, t valuetype.Type, def any, hasDefault bool) string {
	tuple := struct {
		Path       []any          `json:"path"`
		Type       valuetype.Type `json:"type"`
		Default    any            `json:"default,omitempty"`
		HasDefault bool           `json:"hasDefault"`
	}{Path: path, Type: t, Default: def, HasDefault: hasDefault}
	// json.Marshal on a fixed struct shape with deterministic field order
	// is a stable serialization; errors are unreachable since every field
	// is built from coerced primitives, strings, and numbers.
	b, _ := json.Marshal(tuple)
	return string(b)
}

// MarkFeatureID records that an "id" node appears in the expression.
func (c *Context) MarkFeatureID() { c.featureID = true }

// MarkGeometryType records that a "geometry-type" node appears in the
// expression.
func (c *Context) MarkGeometryType() { c.geometryType = true }

// UsesFeatureID reports whether "id" appears anywhere in the expression.
func (c *Context) UsesFeatureID() bool { return c.featureID }

// UsesGeometryType reports whether "geometry-type" appears anywhere in the
// expression.
func (c *Context) UsesGeometryType() bool { return c.geometryType }

// Properties returns the registered property accessors keyed by lookup key.
func (c *Context) Properties() map[string]*Accessor { return c.properties }

// Variables returns the registered variable accessors keyed by lookup key.
func (c *Context) Variables() map[string]*Accessor { return c.variables }
