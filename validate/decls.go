package validate

import (
	"kotc/ir"
	"kotc/phases"
	"kotc/report"
)

// CheckInlineDecls verifies that every inline function declared by the module
// has a shape the inliner can copy safely.  It runs after local classes have
// been hoisted and before the inliner clones any body.  Problems are batched
// per declaration and returned together.
func CheckInlineDecls(mod *ir.Module, ctx *phases.Context) error {
	var problems []*report.Diagnostic

	flag := func(d ir.Decl, msg string) {
		problems = append(problems, &report.Diagnostic{
			Severity: report.SeverityError,
			Kind:     report.KindInlineDecl,
			Message:  msg,
			Span:     d.Span(),
			Target:   ctx.Names.StableName(d),
		})
	}

	mod.EachDecl(func(d ir.Decl) {
		fd, ok := d.(*ir.FuncDecl)
		if !ok {
			return
		}

		if fd.IsReified && !fd.IsInline {
			flag(fd, "reified type parameter requires an inline function")
			return
		}

		if !fd.IsInline {
			return
		}

		if fd.Body == nil {
			flag(fd, "inline function has no body")
			return
		}

		if hasNonTailReturn(fd.Body, true) {
			flag(fd, "inline function has a return outside tail position")
		}

		if hasLocalClass(fd.Body) {
			flag(fd, "inline function declares a local class that was not hoisted")
		}
	})

	if len(problems) == 0 {
		return nil
	}

	for _, d := range problems {
		ctx.Reporter.Report(d)
	}

	return &MalformedDeclarationError{Problems: problems}
}

// hasNonTailReturn reports whether the block contains a return that is not in
// tail position.  A return is in tail position when it is the final statement
// of the function body, or the final statement of a branch whose If statement
// is itself in tail position.  A return nested inside an expression (the
// statement list of a block expression) is never in tail position.  Lambda
// bodies are separate return domains and are not descended into.
func hasNonTailReturn(b *ir.Block, tail bool) bool {
	if b == nil {
		return false
	}

	for i, s := range b.Stmts {
		last := i == len(b.Stmts)-1

		switch v := s.(type) {
		case *ir.Return:
			if !tail || !last {
				return true
			}
			if exprHidesReturn(v.Value) {
				return true
			}
		case *ir.Block:
			if hasNonTailReturn(v, tail && last) {
				return true
			}
		case *ir.If:
			if exprHidesReturn(v.Cond) {
				return true
			}
			if hasNonTailReturn(v.Then, tail && last) || hasNonTailReturn(v.Else, tail && last) {
				return true
			}
		case *ir.Let:
			if exprHidesReturn(v.Init) {
				return true
			}
		case *ir.Assign:
			if exprHidesReturn(v.Value) {
				return true
			}
		case *ir.ExprStmt:
			if exprHidesReturn(v.X) {
				return true
			}
		}
	}

	return false
}

// exprHidesReturn reports whether the expression hides a return statement
// inside a nested block expression.  Such a return would be copied verbatim
// by the inliner and return from the wrong function at the call site.
// Returns inside lambda values belong to the lambda and do not count.
func exprHidesReturn(e ir.Expr) bool {
	if e == nil {
		return false
	}

	switch v := e.(type) {
	case *ir.Binary:
		return exprHidesReturn(v.Lhs) || exprHidesReturn(v.Rhs)
	case *ir.Call:
		for _, arg := range v.Args {
			if exprHidesReturn(arg) {
				return true
			}
		}
	case *ir.FieldGet:
		return exprHidesReturn(v.Receiver)
	case *ir.FieldSet:
		return exprHidesReturn(v.Receiver) || exprHidesReturn(v.Value)
	case *ir.New:
		for _, arg := range v.Args {
			if exprHidesReturn(arg) {
				return true
			}
		}
	case *ir.OuterRef:
		return exprHidesReturn(v.Receiver)
	case *ir.BlockExpr:
		// Any return in the statement list is non-tail by construction.
		if hasNonTailReturn(&ir.Block{Stmts: v.Stmts}, false) {
			return true
		}
		return exprHidesReturn(v.Result)
	case *ir.NewArray:
		return exprHidesReturn(v.Size) || exprHidesReturn(v.Init)
	case *ir.Lambda:
	}

	return false
}

// hasLocalClass reports whether the block still declares a local class.  The
// hoisting pass relocates these before inlining; one surviving here means the
// declaration cannot be cloned without duplicating its identity.
func hasLocalClass(b *ir.Block) bool {
	found := false

	var scan func(*ir.Block)
	scan = func(blk *ir.Block) {
		if blk == nil || found {
			return
		}

		for _, s := range blk.Stmts {
			switch v := s.(type) {
			case *ir.LocalClass:
				found = true
				return
			case *ir.Block:
				scan(v)
			case *ir.If:
				scan(v.Then)
				scan(v.Else)
			}
		}
	}

	scan(b)

	if !found {
		// Lambda bodies are cloned along with the enclosing inline body, so
		// classes local to them count as well.
		ir.WalkBlock(b, func(e ir.Expr) {
			if lam, ok := e.(*ir.Lambda); ok && hasLocalClass(lam.Body) {
				found = true
			}
		})
	}

	return found
}
