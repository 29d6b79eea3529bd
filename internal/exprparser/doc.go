// Package exprparser implements the parser: it turns an encoded expression
// into a typed exprast.Expression, validating arity and argument shapes
// per operator and recursively parsing arguments with their expected
// types. It also performs type checking as part of the same pass — there
// is no separate semantic analysis stage, since every call site already
// knows the type its arguments and its own result must have.
//
// Dispatch is table-driven: Parse looks at the encoded value's shape, and
// for calls looks up the operator name in a fixed dispatch table rather
// than a type switch or inheritance hierarchy.
package exprparser
