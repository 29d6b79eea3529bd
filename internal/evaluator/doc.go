// Package evaluator implements the CPU evaluator for parsed style
// expressions.
//
// Compile walks a typed expression tree produced by exprparser and
// produces a pure closure: func(*EvaluationContext) (any, error). The
// closure re-reads whatever feature/view state it needs from its
// EvaluationContext argument on every call and performs no I/O and no
// caching across calls — it is safe to call concurrently from multiple
// goroutines evaluating different features against the same context, and
// from the same goroutine evaluating many features against a context that
// is mutated (see EvaluationContext.SetProperty et al.) between calls.
package evaluator
