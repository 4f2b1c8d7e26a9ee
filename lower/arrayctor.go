package lower

import (
	"kotc/ir"
	"kotc/phases"
)

// RewriteArrayConstructors lowers the initialized form of the
// array-constructor intrinsic into a call to the module's array-fill runtime
// helper: NewArray(size, init) becomes fillArray(size, init).  The
// uninitialized form (a bare allocation) is left for the serializer.  Running
// before the inliner lets an init lambda that calls private inline functions
// be flattened like any other lambda.
func RewriteArrayConstructors(mod *ir.Module, ctx *phases.Context) error {
	rewrite := func(e ir.Expr) ir.Expr {
		na, ok := e.(*ir.NewArray)
		if !ok || na.Init == nil {
			return e
		}

		return &ir.Call{
			ExprBase: ir.NewExprBaseOn(na.Span()),
			Callee:   mod.Builtin(ir.BuiltinFillArray),
			Args:     []ir.Expr{na.Size, na.Init},
		}
	}

	mod.EachDecl(func(d ir.Decl) {
		switch v := d.(type) {
		case *ir.FuncDecl:
			ir.RewriteBlock(v.Body, rewrite)
		case *ir.PropDecl:
			if v.Init != nil {
				v.Init = ir.RewriteExpr(v.Init, rewrite)
			}
		case *ir.ClassDecl:
		}
	})

	return nil
}
