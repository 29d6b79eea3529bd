package valuetype

import (
	"math"
	"strconv"
	"strings"

	"github.com/tschaub/openlayers/pkg/exprerr"
)

// ColorParser converts a CSS-style color string to a Color, failing with
// an *exprerr.LiteralError of its own choosing. The concrete implementation
// lives in internal/colorparse; valuetype only depends on the function
// shape so it never imports its collaborator.
type ColorParser func(s string) (Color, error)

// Coerce converts a raw decoded value (bool, float64, string, []any, or
// nil) to the declared Type, following the literal coercion table. It
// fails with an *exprerr.LiteralError when the (raw kind, declared type)
// pair is not accepted.
func Coerce(raw any, t Type, parseColor ColorParser) (any, error) {
	switch t {
	case Boolean:
		return coerceBoolean(raw)
	case Number:
		return coerceNumber(raw)
	case String:
		return coerceString(raw)
	case ColorType:
		return coerceColor(raw, parseColor)
	case NumberArray:
		return coerceNumberArray(raw)
	case SizeType:
		return coerceSize(raw)
	default:
		return nil, exprerr.NewLiteralError("unknown declared type: %s", t)
	}
}

func coerceBoolean(raw any) (any, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		return v != "", nil
	case []any:
		// "array" row: boolean has no array coercion.
		return nil, exprerr.NewLiteralError(exprerr.MsgExpectedBoolean)
	default:
		if n, ok := toFloat64(raw); ok {
			return n != 0, nil
		}
		// "other" row: a total truthiness fallback so downstream operators
		// never have to special-case an absent/structural value.
		return raw != nil, nil
	}
}

func coerceNumber(raw any) (any, error) {
	switch v := raw.(type) {
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(n) {
			return nil, exprerr.NewLiteralError(exprerr.MsgExpectedNumber)
		}
		return n, nil
	case bool:
		return nil, exprerr.NewLiteralError(exprerr.MsgExpectedNumber)
	default:
		if n, ok := toFloat64(raw); ok {
			return n, nil
		}
		return nil, exprerr.NewLiteralError(exprerr.MsgExpectedNumber)
	}
}

func coerceString(raw any) (any, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			s, err := coerceString(item)
			if err != nil {
				return nil, err
			}
			parts[i] = s.(string)
		}
		return strings.Join(parts, ","), nil
	default:
		if n, ok := toFloat64(raw); ok {
			return formatNumber(n), nil
		}
		return nil, exprerr.NewLiteralError(exprerr.MsgExpectedString)
	}
}

func coerceColor(raw any, parseColor ColorParser) (any, error) {
	switch v := raw.(type) {
	case string:
		if parseColor == nil {
			return nil, exprerr.NewLiteralError(exprerr.MsgExpectedColor)
		}
		c, err := parseColor(v)
		if err != nil {
			return nil, err
		}
		return c, nil
	case []any:
		nums, ok := toFloatSlice(v)
		if !ok {
			return nil, exprerr.NewLiteralError(exprerr.MsgExpectedColor)
		}
		c, ok := ColorFromNumbers(nums)
		if !ok {
			return nil, exprerr.NewLiteralError(exprerr.MsgExpectedColor)
		}
		return c, nil
	case Color:
		return v, nil
	default:
		return nil, exprerr.NewLiteralError(exprerr.MsgExpectedColor)
	}
}

func coerceNumberArray(raw any) (any, error) {
	arr, ok := raw.([]any)
	if !ok {
		return nil, exprerr.NewLiteralError(exprerr.MsgExpectedNumberArray)
	}
	nums, ok := toFloatSlice(arr)
	if !ok {
		return nil, exprerr.NewLiteralError(exprerr.MsgExpectedNumberArray)
	}
	return nums, nil
}

func coerceSize(raw any) (any, error) {
	if n, ok := toFloat64(raw); ok {
		return SizeFromScalar(n), nil
	}
	arr, ok := raw.([]any)
	if !ok || len(arr) != 2 {
		return nil, exprerr.NewLiteralError(exprerr.MsgExpectedSize)
	}
	nums, ok := toFloatSlice(arr)
	if !ok {
		return nil, exprerr.NewLiteralError(exprerr.MsgExpectedSize)
	}
	return Size{nums[0], nums[1]}, nil
}

// toFloat64 accepts the numeric kinds encoding/json and hand-built test
// fixtures commonly produce.
func toFloat64(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func toFloatSlice(raw []any) ([]float64, bool) {
	out := make([]float64, len(raw))
	for i, item := range raw {
		n, ok := toFloat64(item)
		if !ok {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

// formatNumber renders v the way a style author would expect a numeric
// literal to print: the shortest decimal that round-trips to v, preferring
// fixed-point notation and only switching to exponential notation outside
// the range JavaScript's Number.prototype.toString uses ([1e-6, 1e21)),
// since style expressions are consumed by the same web-mapping tooling.
func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	abs := math.Abs(v)
	if v == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
