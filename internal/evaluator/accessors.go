package evaluator

import (
	"fmt"

	"github.com/tschaub/openlayers/internal/exprast"
)

// compileAccessor builds the shared "get"/"var" compiler. Both operators
// carry their canonical accessor key as a single string-literal argument,
// set by exprparser.accessorParser; read selects which EvaluationContext
// table the key is looked up in. A key absent from the table evaluates to
// Undefined, never an error.
func compileAccessor(read func(*EvaluationContext, string) (any, bool)) compileFn {
	return func(call *exprast.Call) (Func, error) {
		slug, err := slugArg(call)
		if err != nil {
			return nil, err
		}
		return func(c *EvaluationContext) (any, error) {
			v, ok := read(c, slug)
			if !ok {
				return Undefined, nil
			}
			return v, nil
		}, nil
	}
}

func compileHas(call *exprast.Call) (Func, error) {
	slug, err := slugArg(call)
	if err != nil {
		return nil, err
	}
	return func(c *EvaluationContext) (any, error) {
		_, ok := c.property(slug)
		return ok, nil
	}, nil
}

func slugArg(call *exprast.Call) (string, error) {
	if len(call.Args) != 1 {
		return "", fmt.Errorf("evaluator: %s expects exactly one slug argument", call.Operator)
	}
	lit, ok := call.Args[0].(*exprast.Literal)
	if !ok {
		return "", fmt.Errorf("evaluator: %s expects a literal slug argument", call.Operator)
	}
	slug, ok := lit.Value.(string)
	if !ok {
		return "", fmt.Errorf("evaluator: %s expects a string slug, got %T", call.Operator, lit.Value)
	}
	return slug, nil
}
