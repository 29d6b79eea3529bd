// Package exprast defines the typed expression tree the parser produces.
// Every node is one of two shapes: a Literal, carrying a value
// that already conforms to its declared type, or a Call, carrying an
// operator name and already-typed argument nodes. The tree is a strict,
// acyclic, read-only structure: once parsed it is safe to share across
// goroutines and to evaluate concurrently against independent evaluation
// contexts.
package exprast
