package lower

import (
	"kotc/ir"
	"kotc/phases"
)

// GenerateAccessors scans the post-inlining module for references that cross a
// visibility boundary: code relocated by inlining may now reference
// properties, functions, or constructors that are private relative to the
// reference's new enclosing scope.  Each such reference is rerouted through a
// generated public accessor colocated with the target's declaring scope.
// Accessors are deduplicated by (target symbol, access kind) and their names
// derive deterministically from that key, so repeated runs over identical
// input generate identical declarations.
func GenerateAccessors(mod *ir.Module, ctx *phases.Context) error {
	g := &accessorGen{mod: mod, ctx: ctx}

	mod.EachDecl(func(d ir.Decl) {
		scope := d.Parent()

		switch v := d.(type) {
		case *ir.FuncDecl:
			ir.RewriteBlock(v.Body, func(e ir.Expr) ir.Expr {
				return g.rewrite(e, scope)
			})
		case *ir.PropDecl:
			if v.Init != nil {
				v.Init = ir.RewriteExpr(v.Init, func(e ir.Expr) ir.Expr {
					return g.rewrite(e, scope)
				})
			}
		case *ir.ClassDecl:
		}
	})

	return nil
}

// accessorGen synthesizes and caches accessor declarations.  It is shared
// with the outer-receiver lowering, which generates accessors of kind
// AccessOuter through the same cache.
type accessorGen struct {
	mod *ir.Module
	ctx *phases.Context
}

func (g *accessorGen) rewrite(e ir.Expr, scope ir.Scope) ir.Expr {
	switch v := e.(type) {
	case *ir.FieldGet:
		pd, ok := v.Target.Def().(*ir.PropDecl)
		if !ok || ir.VisibleFrom(pd, scope) {
			return e
		}

		acc := g.accessor(pd, ir.AccessGet)
		var args []ir.Expr
		if v.Receiver != nil {
			args = append(args, v.Receiver)
		}
		return &ir.Call{ExprBase: ir.NewExprBaseOn(v.Span()), Callee: acc, Args: args}

	case *ir.FieldSet:
		pd, ok := v.Target.Def().(*ir.PropDecl)
		if !ok || ir.VisibleFrom(pd, scope) {
			return e
		}

		acc := g.accessor(pd, ir.AccessSet)
		var args []ir.Expr
		if v.Receiver != nil {
			args = append(args, v.Receiver)
		}
		args = append(args, v.Value)
		return &ir.Call{ExprBase: ir.NewExprBaseOn(v.Span()), Callee: acc, Args: args}

	case *ir.Call:
		fd, ok := v.Callee.Def().(*ir.FuncDecl)
		if !ok || ir.VisibleFrom(fd, scope) {
			return e
		}

		// Surviving calls to private inline functions are the validator's
		// business; wrapping them in an accessor would only hide the defect.
		if fd.IsInline {
			return e
		}

		acc := g.accessor(fd, ir.AccessCall)
		return &ir.Call{ExprBase: ir.NewExprBaseOn(v.Span()), Callee: acc, Args: v.Args}

	case *ir.New:
		cd, ok := v.Class.Def().(*ir.ClassDecl)
		if !ok || cd.CtorVis != ir.Private || ir.CtorVisibleFrom(cd, scope) {
			return e
		}

		acc := g.accessor(cd, ir.AccessInit)
		return &ir.Call{ExprBase: ir.NewExprBaseOn(v.Span()), Callee: acc, Args: v.Args}
	}

	return e
}

// accessor returns the accessor symbol for the given target and kind, reusing
// the cached one when a previous relocation already needed it.
func (g *accessorGen) accessor(target ir.Decl, kind ir.AccessKind) *ir.Symbol {
	key := phases.AccessorKey{Target: target.Sym(), Kind: kind}

	if sym, ok := g.ctx.Accessors.Lookup(key); ok {
		return sym
	}

	fd := g.build(target, kind)
	g.ctx.Accessors.Insert(key, fd.Sym())

	return fd.Sym()
}

// accessorName derives the accessor's name from its cache key.
func accessorName(target ir.Decl, kind ir.AccessKind) string {
	return "access$" + target.Name() + "$" + kind.Tag()
}

// build synthesizes one accessor declaration and installs it in the target's
// declaring scope.  The accessor's body is exactly the original access.
func (g *accessorGen) build(target ir.Decl, kind ir.AccessKind) *ir.FuncDecl {
	var params []*ir.VarDef
	var body *ir.Block
	scope := target.Parent()

	// Properties of a class are reached through an explicit receiver
	// parameter; functions already carry their receiver as their leading
	// parameter by convention, so only field accessors add one.
	fieldRecv := func() ir.Expr {
		if _, instance := scope.(*ir.ClassDecl); !instance {
			return nil
		}

		self := &ir.VarDef{Name: "self"}
		params = append(params, self)
		return &ir.VarRef{Def: self}
	}

	switch kind {
	case ir.AccessGet:
		body = ir.NewBlock(&ir.Return{Value: &ir.FieldGet{Target: target.Sym(), Receiver: fieldRecv()}})

	case ir.AccessSet:
		recv := fieldRecv()
		value := &ir.VarDef{Name: "value"}
		params = append(params, value)
		body = ir.NewBlock(&ir.Return{Value: &ir.FieldSet{
			Target:   target.Sym(),
			Receiver: recv,
			Value:    &ir.VarRef{Def: value},
		}})

	case ir.AccessCall:
		fn := target.(*ir.FuncDecl)
		args := make([]ir.Expr, len(fn.Params))
		for i, p := range fn.Params {
			fresh := &ir.VarDef{Name: p.Name}
			params = append(params, fresh)
			args[i] = &ir.VarRef{Def: fresh}
		}
		body = ir.NewBlock(&ir.Return{Value: &ir.Call{Callee: target.Sym(), Args: args}})

	case ir.AccessInit:
		cd := target.(*ir.ClassDecl)
		args := make([]ir.Expr, len(cd.CtorParams))
		for i, p := range cd.CtorParams {
			fresh := &ir.VarDef{Name: p.Name}
			params = append(params, fresh)
			args[i] = &ir.VarRef{Def: fresh}
		}
		body = ir.NewBlock(&ir.Return{Value: &ir.New{Class: target.Sym(), Args: args}})
		// Construction is only permitted from inside the class, so the
		// accessor lives there rather than beside it.
		scope = cd

	case ir.AccessOuter:
		cd := target.(*ir.ClassDecl)
		self := &ir.VarDef{Name: "self"}
		params = []*ir.VarDef{self}
		body = ir.NewBlock(&ir.Return{Value: &ir.OuterRef{
			Inner:    target.Sym(),
			Receiver: &ir.VarRef{Def: self},
		}})
		scope = cd
	}

	fd := ir.NewFuncDecl(accessorName(target, kind), ir.Public, params...)
	fd.Synthetic = true
	fd.Body = body

	addToScope(g.mod, scope, fd)

	return fd
}
