package exprerr

// Message Catalog
//
// Every error message template lives here as a %-style format string,
// grouped by the kind of failure it reports. Tests match these messages
// verbatim; keep the two in sync when changing either.

// Shape errors — malformed top-level input.
const (
	MsgEmptyExpression = "empty expression"
	MsgExpressionShape = "expression must be an array or a primitive value"
)

// Operator and arity errors.
const (
	MsgUnknownOperator       = "unknown operator: %s"
	MsgUnexpectedType        = "expected %s to produce a %s value, got %s"
	MsgExpectedArgsExact     = "expected %d argument(s) for %s, got %d"
	MsgExpectedArgsAtLeast   = "expected at least %d argument(s) for %s, got %d"
	MsgExpectedArgsOneOrTwo  = "expected 1 or 2 arguments for %s, got %d"
	MsgExpectedArgsOdd       = "expected an odd number of arguments (at least %d) for %s, got %d"
	MsgExpectedArgsEven      = "expected an even number of arguments (at least %d) for %s, got %d"
	MsgExpectedArgsRange     = "expected %d-%d argument(s) for %s, got %d"
)

// Path / accessor errors.
const (
	MsgEmptyPath            = "%s requires a non-empty path"
	MsgInvalidPathSegment   = "invalid path segment for %s: %v"
	MsgInvalidOptionsRecord = "invalid options for %s: expected an object with an optional \"default\" field"
)

// Interpolation errors.
const (
	MsgInvalidInterpolationType   = "invalid interpolation type: %v"
	MsgExpectedExponentialBase    = "expected a number base for exponential interpolation, got %q instead"
	MsgExponentialBasePositive    = "expected a positive number base for exponential interpolation, got %v instead"
	MsgStopsMustBeLiteral         = "interpolation stop %d must be a literal number"
	MsgStopsNotIncreasing         = "interpolation stops must be strictly increasing, stop %d (%v) is not greater than stop %d (%v)"
)

// Set membership ("in" operator) errors.
const (
	MsgInHaystackNotArray        = `the second argument for the "in" operator must be an array`
	MsgInStringArrayNeedsLiteral = `for the "in" operator, a string array should be wrapped in a "literal" operator to disambiguate from expressions`
)

// Palette errors.
const (
	MsgPaletteColorNotLiteral = "the palette color at index %d must be a literal value"
	MsgPaletteColorsNotArray  = `the second argument for the "palette" operator must be an array of colors`
)

// Nested-parse propagation. %w always binds the inner error.
const (
	MsgFailedArgument      = "failed to parse argument %d of %s expression: %w"
	MsgFailedHaystackItem  = `failed to parse haystack item %d for "in" expression: %w`
	MsgFailedPaletteColor  = "failed to parse color at index %d in palette expression: %w"
)

// Literal coercion errors.
const (
	MsgExpectedBoolean     = "expected a boolean"
	MsgExpectedNumber      = "expected a number"
	MsgExpectedString      = "expected a string"
	MsgExpectedColor       = "expected a color"
	MsgExpectedNumberArray = "expected a number array"
	MsgExpectedSize        = "expected a size (an array of two numbers)"
	MsgColorParseFailed    = "failed to parse %q as color"
)
