package evaluator

import "fmt"

// evalTypeError reports a value of the wrong Go type reaching an
// operator's evaluation step. This only fires if a type-checking bug in
// exprparser let an ill-typed node compile; a correctly parsed expression
// never triggers it.
func evalTypeError(want string, got any) error {
	return fmt.Errorf("evaluator: expected a %s value, got %T", want, got)
}
