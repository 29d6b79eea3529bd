package evaluator

import (
	"github.com/tschaub/openlayers/internal/exprast"
)

// compileCase implements "case cond1 out1 cond2 out2 … fallback": the
// first cond that evaluates true selects its paired output, else the
// fallback. Conditions are evaluated left to right and short-circuit.
func compileCase(call *exprast.Call) (Func, error) {
	args, err := compileArgs(call)
	if err != nil {
		return nil, err
	}
	fallback := args[len(args)-1]
	pairs := args[:len(args)-1]
	return func(c *EvaluationContext) (any, error) {
		for i := 0; i < len(pairs); i += 2 {
			ok, err := evalBoolean(pairs[i], c)
			if err != nil {
				return nil, err
			}
			if ok {
				return pairs[i+1](c)
			}
		}
		return fallback(c)
	}, nil
}

// compileMatch implements both "match-number" and "match-string": the
// discriminant is evaluated once, then compared by equality against each
// key in order; the first match selects its paired output, else the
// fallback.
func compileMatch(call *exprast.Call) (Func, error) {
	args, err := compileArgs(call)
	if err != nil {
		return nil, err
	}
	value := args[0]
	fallback := args[len(args)-1]
	pairs := args[1 : len(args)-1]
	return func(c *EvaluationContext) (any, error) {
		v, err := value(c)
		if err != nil {
			return nil, err
		}
		for i := 0; i < len(pairs); i += 2 {
			key, err := pairs[i](c)
			if err != nil {
				return nil, err
			}
			if key == v {
				return pairs[i+1](c)
			}
		}
		return fallback(c)
	}, nil
}

// compileCoalesce implements "coalesce a1 a2 …": evaluates each argument
// in order and returns the first one that is neither Undefined nor nil.
// An argument whose own sub-evaluation errors — e.g. arithmetic over a
// missing accessor — is likewise stepped past rather than propagated, so
// a style author can coalesce across expressions that might not even
// type-check against absent data.
func compileCoalesce(call *exprast.Call) (Func, error) {
	args, err := compileArgs(call)
	if err != nil {
		return nil, err
	}
	return func(c *EvaluationContext) (any, error) {
		var lastErr error
		for _, arg := range args {
			v, err := arg(c)
			if err != nil {
				lastErr = err
				continue
			}
			if isUndefined(v) {
				continue
			}
			return v, nil
		}
		if lastErr != nil {
			return nil, lastErr
		}
		return Undefined, nil
	}, nil
}
