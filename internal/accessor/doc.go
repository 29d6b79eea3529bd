// Package accessor implements the accessor processor: given a raw,
// possibly nested JSON record and the accessor metadata a parse produced,
// it walks each accessor's path and coerces the resolved value (or its
// declared default) to the accessor's type, producing a flat lookup
// keyed by the same accessor key the parsing context used.
//
// Path walking is delegated to github.com/tidwall/gjson, which already
// understands array indices as numeric path segments — exactly what this
// walk needs and what a hand-rolled map/slice walk would have to
// reinvent.
package accessor
