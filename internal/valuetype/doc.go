// Package valuetype defines the closed set of value types a style expression
// can produce, along with the literal coercion rules that turn a raw decoded
// value (as produced by encoding/json) into a value of a declared type.
//
// The value types are: Boolean, Number, String, Color, NumberArray, Size.
// A Color is four channels (r, g, b, a) with r, g, b in [0, 255] and a in
// [0, 1]. A Size is exactly two numbers.
//
// Coercion is total for the accepted (raw kind, declared type) pairs in the
// table documented on Coerce, and fails with *exprerr.LiteralError for
// everything else.
package valuetype
