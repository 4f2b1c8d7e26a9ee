package inline

import "kotc/ir"

// privateInlineTarget resolves a symbol to a private inline function with a
// body, the only kind of declaration this stage may inline.
func privateInlineTarget(sym *ir.Symbol) (*ir.FuncDecl, bool) {
	fd, ok := sym.Def().(*ir.FuncDecl)
	if !ok {
		return nil, false
	}

	if !fd.IsInline || fd.Visibility() != ir.Private || fd.Body == nil {
		return nil, false
	}

	return fd, true
}

// eligibleCall reports whether the call site must be inlined by this stage.
// Direct calls are eligible whenever the target is private and inline,
// including reifiable targets: a direct call carries the information a
// specialized body copy needs.
func eligibleCall(call *ir.Call) (*ir.FuncDecl, bool) {
	target, ok := privateInlineTarget(call.Callee)
	if !ok {
		return nil, false
	}

	// An argument count mismatch is an upstream defect; leave the call for
	// the validator to report rather than producing a half-substituted body.
	if len(call.Args) != len(target.Params) {
		return nil, false
	}

	return target, true
}
