// Package lower implements the peer lowering passes that run alongside the
// inliner, the synthetic accessor generator, and the outer-receiver accessor
// lowering, and assembles them all into the standard pre-serialization phase
// list.
package lower

import "kotc/ir"

// forEachBlock calls f for the given block and every block nested beneath it:
// branch blocks, lambda bodies, and the statement lists of block expressions.
// Passes that rewrite statement lists in place use this to reach every list
// exactly once.
func forEachBlock(b *ir.Block, f func(*ir.Block)) {
	if b == nil {
		return
	}

	f(b)

	for _, s := range b.Stmts {
		stmtBlocks(s, f)
	}
}

func stmtBlocks(s ir.Stmt, f func(*ir.Block)) {
	switch v := s.(type) {
	case *ir.Block:
		forEachBlock(v, f)
	case *ir.Let:
		exprBlocks(v.Init, f)
	case *ir.Assign:
		exprBlocks(v.Value, f)
	case *ir.ExprStmt:
		exprBlocks(v.X, f)
	case *ir.Return:
		exprBlocks(v.Value, f)
	case *ir.If:
		exprBlocks(v.Cond, f)
		forEachBlock(v.Then, f)
		forEachBlock(v.Else, f)
	case *ir.LocalClass:
	}
}

func exprBlocks(e ir.Expr, f func(*ir.Block)) {
	if e == nil {
		return
	}

	switch v := e.(type) {
	case *ir.Binary:
		exprBlocks(v.Lhs, f)
		exprBlocks(v.Rhs, f)
	case *ir.Call:
		for _, arg := range v.Args {
			exprBlocks(arg, f)
		}
	case *ir.FieldGet:
		exprBlocks(v.Receiver, f)
	case *ir.FieldSet:
		exprBlocks(v.Receiver, f)
		exprBlocks(v.Value, f)
	case *ir.New:
		for _, arg := range v.Args {
			exprBlocks(arg, f)
		}
	case *ir.OuterRef:
		exprBlocks(v.Receiver, f)
	case *ir.Lambda:
		forEachBlock(v.Body, f)
	case *ir.BlockExpr:
		for _, s := range v.Stmts {
			stmtBlocks(s, f)
		}
		exprBlocks(v.Result, f)
	case *ir.NewArray:
		exprBlocks(v.Size, f)
		exprBlocks(v.Init, f)
	}
}

// addToScope appends a synthesized declaration to a scope: class members go
// into the class, everything else becomes a top-level declaration.
func addToScope(mod *ir.Module, scope ir.Scope, d ir.Decl) {
	if cd, ok := scope.(*ir.ClassDecl); ok {
		cd.AddMember(d)
		return
	}

	mod.AddDecl(d)
}
