// Package inline implements early inlining: calls to inline functions that
// are private to the module being lowered are replaced by a fresh copy of the
// callee body before the module is serialized.  Calls to externally-visible
// inline functions are left untouched for the later, post-serialization stage.
package inline

import (
	"kotc/ir"
	"kotc/phases"
)

// Inliner rewrites the module's call sites in place.
type Inliner struct {
	mod *ir.Module
	ctx *phases.Context

	// rewrites counts the call sites rewritten during the current pass over
	// a body.
	rewrites int

	// tempCounter numbers the temporaries introduced for argument bindings.
	tempCounter int
}

// Run is the phase entry point.
func Run(mod *ir.Module, ctx *phases.Context) error {
	inl := &Inliner{mod: mod, ctx: ctx}
	inl.lowerModule()
	return nil
}

func (inl *Inliner) lowerModule() {
	inl.mod.EachDecl(func(d ir.Decl) {
		switch v := d.(type) {
		case *ir.FuncDecl:
			if v.Body != nil {
				inl.lowerBlock(v.Body)
			}
		case *ir.PropDecl:
			if v.Init != nil {
				v.Init = inl.lowerExpr(v.Init)
			}
		case *ir.ClassDecl:
			// Member bodies are visited by EachDecl.
		}
	})
}

// lowerBlock flattens every eligible call site in the block.  Each pass
// rewrites the call sites currently present; call sites introduced by the
// cloned callee bodies are picked up by the next pass.  This processes nested
// private-inline chains of any depth iteratively instead of recursing over
// them, and stops exactly when a pass performs no rewrite.
func (inl *Inliner) lowerBlock(b *ir.Block) {
	for {
		inl.rewrites = 0
		ir.RewriteBlock(b, inl.rewriteSite)

		if inl.rewrites == 0 {
			return
		}
	}
}

func (inl *Inliner) lowerExpr(e ir.Expr) ir.Expr {
	for {
		inl.rewrites = 0
		e = ir.RewriteExpr(e, inl.rewriteSite)

		if inl.rewrites == 0 {
			return e
		}
	}
}

// rewriteSite rewrites a single eligible call site or callable reference.
func (inl *Inliner) rewriteSite(e ir.Expr) ir.Expr {
	switch v := e.(type) {
	case *ir.Call:
		if target, ok := eligibleCall(v); ok {
			inl.rewrites++
			return inl.inlineCall(v, target)
		}
	case *ir.FuncRef:
		target, ok := privateInlineTarget(v.Target)
		if !ok {
			break
		}

		// A reference to a reifiable target cannot be resolved indirectly at
		// this stage; it is left in place and re-checked by the validator.
		if target.IsReified {
			break
		}

		inl.rewrites++
		return wrapReference(v, target)
	}

	return e
}

// wrapReference converts a first-class reference to a private inline function
// into a lambda invoking it, so the invocation becomes an ordinary call site
// that the next pass inlines.
func wrapReference(ref *ir.FuncRef, target *ir.FuncDecl) ir.Expr {
	params := make([]*ir.VarDef, len(target.Params))
	args := make([]ir.Expr, len(target.Params))

	for i, p := range target.Params {
		params[i] = &ir.VarDef{Name: p.Name}
		args[i] = &ir.VarRef{Def: params[i]}
	}

	body := ir.NewBlock(&ir.Return{Value: &ir.Call{
		ExprBase: ir.NewExprBaseOn(ref.Span()),
		Callee:   ref.Target,
		Args:     args,
	}})

	return &ir.Lambda{ExprBase: ir.NewExprBaseOn(ref.Span()), Params: params, Body: body}
}
