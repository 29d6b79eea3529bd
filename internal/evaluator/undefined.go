package evaluator

// undefinedType is the sentinel Undefined's type. It is a zero-size
// comparable struct, so compileMatch's and compileIn's `==` equality
// checks naturally treat it as never matching any concrete key.
type undefinedType struct{}

// Undefined is the value "get"/"var" evaluate to when the evaluation
// context has no entry for the accessor's key. The accessor processor
// already applies a registered default before populating the context, so
// reaching Undefined here means the accessor is genuinely absent with no
// default. coalesce, case, and match treat it as absorbed rather than an
// error.
var Undefined any = undefinedType{}

func isUndefined(v any) bool {
	return v == nil || v == Undefined
}
