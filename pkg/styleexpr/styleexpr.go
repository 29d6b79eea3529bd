// Package styleexpr is the public facade over the style-expression engine:
// parsing encoded expressions into a typed tree, processing a feature's
// raw JSON properties against the accessor metadata a parse collected, and
// compiling a parsed tree into a reusable CPU evaluation closure.
//
// A typical caller parses once per style rule at style-load time, builds
// one EvaluationContext per feature render, and evaluates the compiled
// expression against it — the same split the underlying engine packages
// (exprparser, accessor, evaluator) keep internally.
package styleexpr

import (
	"github.com/tschaub/openlayers/internal/accessor"
	"github.com/tschaub/openlayers/internal/colorparse"
	"github.com/tschaub/openlayers/internal/evaluator"
	"github.com/tschaub/openlayers/internal/exprast"
	"github.com/tschaub/openlayers/internal/exprparser"
	"github.com/tschaub/openlayers/internal/parsectx"
	"github.com/tschaub/openlayers/internal/valuetype"
)

// Type re-exports the closed value-type set so callers never need to
// import internal/valuetype directly.
type Type = valuetype.Type

const (
	Boolean     = valuetype.Boolean
	Number      = valuetype.Number
	String      = valuetype.String
	ColorType   = valuetype.ColorType
	NumberArray = valuetype.NumberArray
	SizeType    = valuetype.SizeType
)

// Color and Size re-export the structured value types.
type Color = valuetype.Color
type Size = valuetype.Size

// Undefined is the sentinel value a compiled expression evaluates to when
// it reads an accessor absent from the evaluation context and with no
// registered default. Compare a result against it with `==`.
var Undefined = evaluator.Undefined

// ParsingContext accumulates accessor metadata across one or more Parse
// calls. Create one per style rule (or per layer, if its rules share
// accessors) and pass it to every Parse call for that rule.
type ParsingContext struct {
	inner *parsectx.Context
}

// NewParsingContext returns a fresh, empty parsing context.
func NewParsingContext() *ParsingContext {
	return &ParsingContext{inner: parsectx.New()}
}

// Accessor describes one deduplicated "get"/"var" accessor collected
// during parsing.
type Accessor struct {
	Slug       string
	Path       []any
	Type       Type
	Default    any
	HasDefault bool
}

// Properties returns every "get"/"has" accessor this context collected,
// sorted by slug using natural (numeric-aware) ordering so "prop_2" sorts
// before "prop_10".
func (p *ParsingContext) Properties() []Accessor {
	return sortedAccessors(p.inner.Properties())
}

// Variables returns every "var" accessor this context collected, sorted
// the same way as Properties.
func (p *ParsingContext) Variables() []Accessor {
	return sortedAccessors(p.inner.Variables())
}

// UsesFeatureID reports whether any parsed expression reads "id".
func (p *ParsingContext) UsesFeatureID() bool { return p.inner.UsesFeatureID() }

// UsesGeometryType reports whether any parsed expression reads
// "geometry-type".
func (p *ParsingContext) UsesGeometryType() bool { return p.inner.UsesGeometryType() }

// Expression is a parsed, type-checked style expression, ready to compile.
type Expression struct {
	node exprast.Expression
}

// Type reports the expression's declared result type.
func (e *Expression) Type() Type { return e.node.Type() }

func (e *Expression) String() string { return e.node.String() }

// Parse parses an encoded expression — an array whose first element names
// an operator, or a bare primitive literal — into a type-checked
// Expression of type t, recording any accessors it reads into ctx. Color
// literals are parsed with the CSS color grammar (named colors, hex,
// rgb()/rgba()).
func Parse(encoded any, t Type, ctx *ParsingContext) (*Expression, error) {
	node, err := exprparser.Parse(encoded, t, ctx.inner, colorparse.Parse)
	if err != nil {
		return nil, err
	}
	return &Expression{node: node}, nil
}

// CompiledExpression is a parsed expression ready to evaluate repeatedly
// against different EvaluationContexts.
type CompiledExpression struct {
	fn evaluator.Func
}

// Compile turns a parsed Expression into a reusable evaluation closure.
func Compile(expr *Expression) (*CompiledExpression, error) {
	fn, err := evaluator.Compile(expr.node)
	if err != nil {
		return nil, err
	}
	return &CompiledExpression{fn: fn}, nil
}

// Eval runs the compiled expression against ctx.
func (c *CompiledExpression) Eval(ctx *EvaluationContext) (any, error) {
	return c.fn(ctx.inner)
}

// BuildExpression is Parse followed by Compile, for callers that never
// need the intermediate Expression.
func BuildExpression(encoded any, t Type, ctx *ParsingContext) (*CompiledExpression, error) {
	expr, err := Parse(encoded, t, ctx)
	if err != nil {
		return nil, err
	}
	return Compile(expr)
}

// EvaluationContext carries per-feature, per-view state a compiled
// expression reads: feature properties, style variables, feature id,
// geometry type, resolution/zoom, time, and line metric.
type EvaluationContext struct {
	inner *evaluator.EvaluationContext
}

// NewEvaluationContext returns an empty evaluation context.
func NewEvaluationContext() *EvaluationContext {
	return &EvaluationContext{inner: evaluator.NewEvaluationContext()}
}

// SetProperty records the value a "get"/"has" accessor with this
// canonical accessor key reads. Use ProcessAccessorValues to populate
// every accessor from a feature's raw JSON properties at once.
func (c *EvaluationContext) SetProperty(slug string, value any) { c.inner.SetProperty(slug, value) }

// SetVariable records the value a "var" accessor with this canonical
// accessor key reads.
func (c *EvaluationContext) SetVariable(slug string, value any) { c.inner.SetVariable(slug, value) }

// SetFeatureID sets the value "id" reads.
func (c *EvaluationContext) SetFeatureID(id any) { c.inner.SetFeatureID(id) }

// SetGeometryType sets the value "geometry-type" reads.
func (c *EvaluationContext) SetGeometryType(t string) { c.inner.SetGeometryType(t) }

// SetResolution sets the value "resolution" reads.
func (c *EvaluationContext) SetResolution(r float64) { c.inner.SetResolution(r) }

// SetZoom sets the value "zoom" reads.
func (c *EvaluationContext) SetZoom(z float64) { c.inner.SetZoom(z) }

// SetTime sets the value "time" reads.
func (c *EvaluationContext) SetTime(t float64) { c.inner.SetTime(t) }

// SetLineMetric sets the value "line-metric" reads.
func (c *EvaluationContext) SetLineMetric(m float64) { c.inner.SetLineMetric(m) }

// ProcessAccessorValues walks raw feature JSON against every accessor
// collected in ctx (properties and variables both) and populates an
// EvaluationContext with the coerced results, applying configured
// defaults for accessors the JSON doesn't satisfy.
func ProcessAccessorValues(raw []byte, ctx *ParsingContext) (*EvaluationContext, error) {
	evalCtx := NewEvaluationContext()

	// Process keys its result by the same canonical accessor key that
	// exprparser embeds in each "get"/"has"/"var" call node, so the
	// evaluator's lookup key always matches a parse's lookup key exactly.
	values, err := accessor.Process(raw, ctx.inner.Properties(), colorparse.Parse)
	if err != nil {
		return nil, err
	}
	for key, v := range values {
		evalCtx.SetProperty(key, v.Value)
	}

	varValues, err := accessor.Process(raw, ctx.inner.Variables(), colorparse.Parse)
	if err != nil {
		return nil, err
	}
	for key, v := range varValues {
		evalCtx.SetVariable(key, v.Value)
	}

	return evalCtx, nil
}

func sortedAccessors(table map[string]*parsectx.Accessor) []Accessor {
	out := make([]Accessor, 0, len(table))
	for _, acc := range table {
		out = append(out, Accessor{
			Slug:       acc.Slug,
			Path:       acc.Path,
			Type:       acc.Type,
			Default:    acc.Default,
			HasDefault: acc.HasDefault,
		})
	}
	naturalSortAccessors(out)
	return out
}
