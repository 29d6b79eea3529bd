// Package parsectx implements the parsing context: the mutable,
// single-parse accumulator of accessor metadata (which feature properties
// and style variables an expression reads) and of whether the expression
// reads the feature id or the geometry type. A Context is discarded once
// parsing finishes; the accessor metadata it produced lives on
// independently of it.
package parsectx
