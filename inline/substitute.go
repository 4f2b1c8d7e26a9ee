package inline

import (
	"fmt"

	"kotc/ir"
)

// This file performs the call-site rewrite itself: cloning the callee body,
// substituting formal parameters with argument expressions, and binding
// arguments to temporaries where direct substitution would change how often or
// in what order the argument is evaluated.

// needsTempBinding reports whether the argument bound to the given parameter
// must be evaluated into a temporary at the call site.  The conservative
// trigger: the argument has an observable side effect, or the callee body
// references the parameter more than once.  Everything else substitutes
// directly without changing evaluation.
func needsTempBinding(body *ir.Block, param *ir.VarDef, arg ir.Expr) bool {
	if ir.HasSideEffects(arg) {
		return true
	}

	return ir.CountVarUses(body, param) > 1
}

// tempName derives a fresh temporary name from the substituted parameter's
// name.
func (inl *Inliner) tempName(base string) string {
	inl.tempCounter++
	return fmt.Sprintf("%s$%d", base, inl.tempCounter)
}

// inlineCall replaces a call to a private inline function with a copy of the
// callee's body.  Temporaries for effectful or repeated arguments are bound in
// the call site's left-to-right argument order, preserving exactly-once
// evaluation as written.
func (inl *Inliner) inlineCall(call *ir.Call, target *ir.FuncDecl) ir.Expr {
	subst := make(map[*ir.VarDef]ir.Expr, len(target.Params))
	var binds []ir.Stmt

	for i, param := range target.Params {
		arg := call.Args[i]

		if needsTempBinding(target.Body, param, arg) {
			tmp := &ir.VarDef{Name: inl.tempName(param.Name)}
			binds = append(binds, &ir.Let{Def: tmp, Init: arg})
			subst[param] = &ir.VarRef{Def: tmp}
		} else {
			subst[param] = arg
		}
	}

	body := ir.CloneBlockSubst(target.Body, subst)

	return inl.bodyToExpr(call, body, binds)
}

// bodyToExpr converts the cloned callee body into an expression usable at the
// call site.
func (inl *Inliner) bodyToExpr(call *ir.Call, body *ir.Block, binds []ir.Stmt) ir.Expr {
	// An expression-bodied callee reduces to its result expression directly.
	if len(body.Stmts) == 1 {
		if ret, ok := body.Stmts[0].(*ir.Return); ok && ret.Value != nil {
			if len(binds) == 0 {
				return ret.Value
			}

			return &ir.BlockExpr{
				ExprBase: ir.NewExprBaseOn(call.Span()),
				Stmts:    binds,
				Result:   ret.Value,
			}
		}
	}

	// General bodies lower to a block expression with a synthetic result
	// binding: every return in tail position becomes an assignment to it.
	// The declaration checker rejects inline functions with non-tail returns
	// before this rewrite can misplace one.
	res := &ir.VarDef{Name: inl.tempName("result"), Mutable: true}
	rewriteReturns(body, res)

	stmts := make([]ir.Stmt, 0, len(binds)+1+len(body.Stmts))
	stmts = append(stmts, binds...)
	stmts = append(stmts, &ir.Let{Def: res, Init: &ir.NullLit{}})
	stmts = append(stmts, body.Stmts...)

	return &ir.BlockExpr{
		ExprBase: ir.NewExprBaseOn(call.Span()),
		Stmts:    stmts,
		Result:   &ir.VarRef{Def: res},
	}
}

// rewriteReturns replaces each return belonging to the inlined body with an
// assignment to the result variable.  The rewrite walks the statement
// structure only: returns inside nested lambdas belong to those lambdas and
// are left alone.
func rewriteReturns(b *ir.Block, res *ir.VarDef) {
	if b == nil {
		return
	}

	for i, s := range b.Stmts {
		switch v := s.(type) {
		case *ir.Return:
			value := v.Value
			if value == nil {
				value = &ir.NullLit{}
			}

			b.Stmts[i] = &ir.Assign{StmtBase: ir.NewStmtBaseOn(v.Span()), Def: res, Value: value}
		case *ir.Block:
			rewriteReturns(v, res)
		case *ir.If:
			rewriteReturns(v.Then, res)
			rewriteReturns(v.Else, res)
		}
	}
}
