package lower

import (
	"kotc/ir"
	"kotc/phases"
)

// MaterializeLateinit gives every late-initialized property a concrete shape:
// a backing field initialized to the null sentinel and a guarded accessor pair.
// Reads go through a generated getter that raises the uninitialized-property
// error while the field still holds the sentinel; writes go through a
// generated setter.  Later passes depend on properties having a fully
// materialized field shape, so this runs first.
func MaterializeLateinit(mod *ir.Module, ctx *phases.Context) error {
	type guarded struct {
		getter *ir.Symbol
		setter *ir.Symbol
	}

	accessors := make(map[*ir.Symbol]guarded)
	synthesized := make(map[ir.Decl]bool)

	mod.EachDecl(func(d ir.Decl) {
		pd, ok := d.(*ir.PropDecl)
		if !ok || !pd.Lateinit {
			return
		}

		pd.Lateinit = false
		pd.Init = &ir.NullLit{}

		_, instance := pd.Parent().(*ir.ClassDecl)

		getter := buildLateinitGetter(mod, pd, instance)
		setter := buildLateinitSetter(pd, instance)

		addToScope(mod, pd.Parent(), getter)
		addToScope(mod, pd.Parent(), setter)

		accessors[pd.Sym()] = guarded{getter: getter.Sym(), setter: setter.Sym()}
		synthesized[getter] = true
		synthesized[setter] = true
	})

	if len(accessors) == 0 {
		return nil
	}

	// Reroute every field access outside the generated accessors themselves.
	rewrite := func(e ir.Expr) ir.Expr {
		switch v := e.(type) {
		case *ir.FieldGet:
			if g, ok := accessors[v.Target]; ok {
				var args []ir.Expr
				if v.Receiver != nil {
					args = append(args, v.Receiver)
				}
				return &ir.Call{ExprBase: ir.NewExprBaseOn(v.Span()), Callee: g.getter, Args: args}
			}
		case *ir.FieldSet:
			if g, ok := accessors[v.Target]; ok {
				var args []ir.Expr
				if v.Receiver != nil {
					args = append(args, v.Receiver)
				}
				args = append(args, v.Value)
				return &ir.Call{ExprBase: ir.NewExprBaseOn(v.Span()), Callee: g.setter, Args: args}
			}
		}

		return e
	}

	mod.EachDecl(func(d ir.Decl) {
		if synthesized[d] {
			return
		}

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

// buildLateinitGetter synthesizes the guarded read accessor:
//
//	if field == null { throwUninitializedProperty(name) }
//	return field
func buildLateinitGetter(mod *ir.Module, pd *ir.PropDecl, instance bool) *ir.FuncDecl {
	var params []*ir.VarDef
	var recv ir.Expr

	if instance {
		self := &ir.VarDef{Name: "self"}
		params = append(params, self)
		recv = &ir.VarRef{Def: self}
	}

	guard := &ir.If{
		Cond: &ir.Binary{
			Op:  "==",
			Lhs: &ir.FieldGet{Target: pd.Sym(), Receiver: recv},
			Rhs: &ir.NullLit{},
		},
		Then: ir.NewBlock(&ir.ExprStmt{X: &ir.Call{
			Callee: mod.Builtin(ir.BuiltinUninitialized),
			Args:   []ir.Expr{&ir.StrLit{Value: pd.Name()}},
		}}),
	}

	var recvAgain ir.Expr
	if instance {
		recvAgain = &ir.VarRef{Def: params[0]}
	}

	getter := ir.NewFuncDecl(pd.Name()+"$get", pd.Visibility(), params...)
	getter.Synthetic = true
	getter.Body = ir.NewBlock(
		guard,
		&ir.Return{Value: &ir.FieldGet{Target: pd.Sym(), Receiver: recvAgain}},
	)

	return getter
}

// buildLateinitSetter synthesizes the write accessor forwarding to the
// backing field.
func buildLateinitSetter(pd *ir.PropDecl, instance bool) *ir.FuncDecl {
	var params []*ir.VarDef
	var recv ir.Expr

	if instance {
		self := &ir.VarDef{Name: "self"}
		params = append(params, self)
		recv = &ir.VarRef{Def: self}
	}

	value := &ir.VarDef{Name: "value"}
	params = append(params, value)

	setter := ir.NewFuncDecl(pd.Name()+"$set", pd.Visibility(), params...)
	setter.Synthetic = true
	setter.Body = ir.NewBlock(&ir.Return{Value: &ir.FieldSet{
		Target:   pd.Sym(),
		Receiver: recv,
		Value:    &ir.VarRef{Def: value},
	}})

	return setter
}
