// Package colorparse implements the color-string collaborator the core
// depends on: it turns a CSS-style color string — a named color, a
// #rgb/#rrggbb/#rrggbbaa hex form, or an rgb()/rgba() functional form —
// into a valuetype.Color with alpha in [0, 1].
package colorparse
