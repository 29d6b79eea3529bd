package colorparse

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/tschaub/openlayers/internal/valuetype"
	"github.com/tschaub/openlayers/pkg/exprerr"
)

var fold = cases.Fold()

// Parse converts a CSS-style color string to a valuetype.Color. It accepts
// named colors (case-insensitively, including "transparent"), hex forms
// (#rgb, #rgba, #rrggbb, #rrggbbaa), and the rgb()/rgba() functional forms.
// Parse returns an *exprerr.LiteralError on failure.
func Parse(s string) (valuetype.Color, error) {
	trimmed := strings.TrimSpace(s)

	if strings.HasPrefix(trimmed, "#") {
		if c, ok := parseHex(trimmed[1:]); ok {
			return c, nil
		}
		return valuetype.Color{}, exprerr.NewLiteralError(exprerr.MsgColorParseFailed, s)
	}

	if c, ok := parseFunctional(trimmed); ok {
		return c, nil
	}

	if c, ok := namedColor(fold.String(trimmed)); ok {
		return c, nil
	}

	return valuetype.Color{}, exprerr.NewLiteralError(exprerr.MsgColorParseFailed, s)
}

func parseHex(hex string) (valuetype.Color, bool) {
	expand := func(c byte) (float64, bool) {
		v, err := strconv.ParseUint(string(c)+string(c), 16, 8)
		if err != nil {
			return 0, false
		}
		return float64(v), true
	}
	byteVal := func(s string) (float64, bool) {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0, false
		}
		return float64(v), true
	}

	switch len(hex) {
	case 3, 4:
		r, ok1 := expand(hex[0])
		g, ok2 := expand(hex[1])
		b, ok3 := expand(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return valuetype.Color{}, false
		}
		a := 1.0
		if len(hex) == 4 {
			av, ok4 := expand(hex[3])
			if !ok4 {
				return valuetype.Color{}, false
			}
			a = av / 255
		}
		return valuetype.Color{r, g, b, a}, true
	case 6, 8:
		r, ok1 := byteVal(hex[0:2])
		g, ok2 := byteVal(hex[2:4])
		b, ok3 := byteVal(hex[4:6])
		if !ok1 || !ok2 || !ok3 {
			return valuetype.Color{}, false
		}
		a := 1.0
		if len(hex) == 8 {
			av, ok4 := byteVal(hex[6:8])
			if !ok4 {
				return valuetype.Color{}, false
			}
			a = av / 255
		}
		return valuetype.Color{r, g, b, a}, true
	default:
		return valuetype.Color{}, false
	}
}

func parseFunctional(s string) (valuetype.Color, bool) {
	lower := fold.String(s)
	var inner string
	var hasAlpha bool
	switch {
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")"):
		inner = s[5 : len(s)-1]
		hasAlpha = true
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		inner = s[4 : len(s)-1]
	default:
		return valuetype.Color{}, false
	}

	parts := strings.FieldsFunc(inner, func(r rune) bool { return r == ',' || r == ' ' || r == '/' })
	wanted := 3
	if hasAlpha {
		wanted = 4
	}
	if len(parts) != wanted {
		return valuetype.Color{}, false
	}

	channel := func(p string) (float64, bool) {
		p = strings.TrimSpace(p)
		if strings.HasSuffix(p, "%") {
			v, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
			if err != nil {
				return 0, false
			}
			return v * 255 / 100, true
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	r, ok1 := channel(parts[0])
	g, ok2 := channel(parts[1])
	b, ok3 := channel(parts[2])
	if !ok1 || !ok2 || !ok3 {
		return valuetype.Color{}, false
	}
	a := 1.0
	if hasAlpha {
		av, ok4 := channel(parts[3])
		if !ok4 {
			return valuetype.Color{}, false
		}
		if strings.Contains(parts[3], "%") {
			av = av / 255
		}
		a = av
	}
	return valuetype.Color{r, g, b, a}, true
}
