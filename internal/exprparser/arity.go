package exprparser

import "github.com/tschaub/openlayers/pkg/exprerr"

func requireExact(args []any, n int, op string) error {
	if len(args) != n {
		return exprerr.NewParseError(exprerr.MsgExpectedArgsExact, n, op, len(args))
	}
	return nil
}

func requireAtLeast(args []any, n int, op string) error {
	if len(args) < n {
		return exprerr.NewParseError(exprerr.MsgExpectedArgsAtLeast, n, op, len(args))
	}
	return nil
}

func requireOneOrTwo(args []any, op string) error {
	if len(args) != 1 && len(args) != 2 {
		return exprerr.NewParseError(exprerr.MsgExpectedArgsOneOrTwo, op, len(args))
	}
	return nil
}

func requireRange(args []any, min, max int, op string) error {
	if len(args) < min || len(args) > max {
		return exprerr.NewParseError(exprerr.MsgExpectedArgsRange, min, max, op, len(args))
	}
	return nil
}

func requireOdd(args []any, min int, op string) error {
	if len(args) < min || len(args)%2 == 0 {
		return exprerr.NewParseError(exprerr.MsgExpectedArgsOdd, min, op, len(args))
	}
	return nil
}

func requireEven(args []any, min int, op string) error {
	if len(args) < min || len(args)%2 != 0 {
		return exprerr.NewParseError(exprerr.MsgExpectedArgsEven, min, op, len(args))
	}
	return nil
}
