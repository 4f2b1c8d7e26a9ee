package lower

import (
	"kotc/ir"
	"kotc/phases"
)

// LowerOuterReceivers reroutes implicit outer-instance references that
// inlining has relocated outside their inner class.  Inside the class an
// outer-receiver read is resolved by the backend directly; once the reference
// sits in a foreign scope it must flow through a generated accessor on the
// inner class that exposes the outer instance.  When the run is configured to
// produce outer-this fields instead, a later backend stage materializes the
// fields and this pass leaves the module untouched.
func LowerOuterReceivers(mod *ir.Module, ctx *phases.Context) error {
	if ctx.Opts.ProduceOuterThisFields {
		return nil
	}

	g := &accessorGen{mod: mod, ctx: ctx}

	mod.EachDecl(func(d ir.Decl) {
		scope := d.Parent()

		rewrite := func(e ir.Expr) ir.Expr {
			ref, ok := e.(*ir.OuterRef)
			if !ok {
				return e
			}

			inner, ok := ref.Inner.Def().(*ir.ClassDecl)
			if !ok || !inner.IsInner {
				return e
			}

			// A reference still inside the inner class is not dangling.
			if scopeChainContains(scope, inner) {
				return e
			}

			if ref.Receiver == nil {
				ctx.Reporter.Errorf(ref.Span(),
					"relocated outer receiver of `%s` has no reachable inner instance", inner.Name())
				return e
			}

			acc := g.accessor(inner, ir.AccessOuter)
			return &ir.Call{
				ExprBase: ir.NewExprBaseOn(ref.Span()),
				Callee:   acc,
				Args:     []ir.Expr{ref.Receiver},
			}
		}

		switch v := d.(type) {
		case *ir.FuncDecl:
			if !v.Synthetic {
				ir.RewriteBlock(v.Body, rewrite)
			}
		case *ir.PropDecl:
			if v.Init != nil {
				v.Init = ir.RewriteExpr(v.Init, rewrite)
			}
		case *ir.ClassDecl:
		}
	})

	return nil
}

func scopeChainContains(scope ir.Scope, cd *ir.ClassDecl) bool {
	for s := scope; s != nil; s = s.EnclosingScope() {
		if s == cd {
			return true
		}
	}

	return false
}
