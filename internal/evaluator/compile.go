package evaluator

import (
	"fmt"

	"github.com/tschaub/openlayers/internal/exprast"
)

// Func is a compiled expression: a pure function from evaluation state to
// a value of whatever type the source expression declared.
type Func func(*EvaluationContext) (any, error)

type compileFn func(*exprast.Call) (Func, error)

var compilers map[string]compileFn

func init() {
	compilers = map[string]compileFn{
		"get": compileAccessor(func(c *EvaluationContext, slug string) (any, bool) { return c.property(slug) }),
		"var": compileAccessor(func(c *EvaluationContext, slug string) (any, bool) { return c.variable(slug) }),
		"has": compileHas,

		"id":            compileID,
		"geometry-type": compileGeometryType,
		"resolution":    compileReader(func(c *EvaluationContext) any { return c.resolution }),
		"zoom":          compileReader(func(c *EvaluationContext) any { return c.zoom }),
		"time":          compileReader(func(c *EvaluationContext) any { return c.time }),
		"line-metric":   compileReader(func(c *EvaluationContext) any { return c.lineMetric }),

		"concat":    compileConcat,
		"to-string": nil, // unreachable: parseToString never emits a "to-string" Call node
		"length":    compileLength,

		"!":   compileNot,
		"all": compileAll,
		"any": compileAny,

		"==":      compileComparison(func(c int) bool { return c == 0 }),
		"!=":      compileComparison(func(c int) bool { return c != 0 }),
		"<":       compileComparison(func(c int) bool { return c < 0 }),
		"<=":      compileComparison(func(c int) bool { return c <= 0 }),
		">":       compileComparison(func(c int) bool { return c > 0 }),
		">=":      compileComparison(func(c int) bool { return c >= 0 }),
		"between": compileBetween,

		"+":     compileVariadicArith(sum),
		"*":     compileVariadicArith(product),
		"-":     compileBinaryArith(func(a, b float64) float64 { return a - b }),
		"/":     compileBinaryArith(func(a, b float64) float64 { return a / b }),
		"%":     compileBinaryArith(mod),
		"^":     compileBinaryArith(pow),
		"clamp": compileClamp,
		"abs":   compileUnaryMath(absf),
		"floor": compileUnaryMath(floorf),
		"ceil":  compileUnaryMath(ceilf),
		"round": compileUnaryMath(roundf),
		"sin":   compileUnaryMath(sinf),
		"cos":   compileUnaryMath(cosf),
		"sqrt":  compileUnaryMath(sqrtf),
		"atan":  compileAtan,

		"case":         compileCase,
		"match-number": compileMatch,
		"match-string": compileMatch,
		"coalesce":     compileCoalesce,

		"interpolate": compileInterpolate,

		"in": compileIn,

		"array":   compileArrayCtor,
		"color":   compileColorCtor,
		"band":    compileBand,
		"palette": compilePalette,
	}
}

// Compile turns a parsed expression tree into a reusable evaluation
// closure. It never inspects EvaluationContext itself; all context
// access is deferred to the returned Func.
func Compile(expr exprast.Expression) (Func, error) {
	switch e := expr.(type) {
	case *exprast.Literal:
		value := e.Value
		return func(*EvaluationContext) (any, error) { return value, nil }, nil
	case *exprast.Call:
		return compileCall(e)
	default:
		return nil, fmt.Errorf("evaluator: unrecognized expression node %T", expr)
	}
}

func compileCall(call *exprast.Call) (Func, error) {
	compiler, ok := compilers[call.Operator]
	if !ok || compiler == nil {
		return nil, fmt.Errorf("evaluator: no compiler registered for operator %q", call.Operator)
	}
	return compiler(call)
}

// compileArgs compiles every argument of call in order.
func compileArgs(call *exprast.Call) ([]Func, error) {
	fns := make([]Func, len(call.Args))
	for i, arg := range call.Args {
		fn, err := Compile(arg)
		if err != nil {
			return nil, err
		}
		fns[i] = fn
	}
	return fns, nil
}

func compileReader(read func(*EvaluationContext) any) compileFn {
	return func(*exprast.Call) (Func, error) {
		return func(c *EvaluationContext) (any, error) { return read(c), nil }, nil
	}
}

func compileID(*exprast.Call) (Func, error) {
	return func(c *EvaluationContext) (any, error) { return c.featureID, nil }, nil
}

func compileGeometryType(*exprast.Call) (Func, error) {
	return func(c *EvaluationContext) (any, error) { return c.geometryType, nil }, nil
}
