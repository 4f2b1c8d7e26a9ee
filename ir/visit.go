package ir

// This file implements the traversal helpers shared by the lowering passes.
// Rewrites are applied bottom-up and mutate statement nodes in place: the
// module is a single mutable tree for the lifetime of a pipeline run.

// RewriteExpr applies f to every expression in and beneath e, bottom-up, and
// returns the replacement for e.  The rewrite descends into lambda bodies,
// block expressions, and every nested statement.
func RewriteExpr(e Expr, f func(Expr) Expr) Expr {
	if e == nil {
		return nil
	}

	switch v := e.(type) {
	case *Binary:
		v.Lhs = RewriteExpr(v.Lhs, f)
		v.Rhs = RewriteExpr(v.Rhs, f)
	case *Call:
		for i, arg := range v.Args {
			v.Args[i] = RewriteExpr(arg, f)
		}
	case *FieldGet:
		v.Receiver = RewriteExpr(v.Receiver, f)
	case *FieldSet:
		v.Receiver = RewriteExpr(v.Receiver, f)
		v.Value = RewriteExpr(v.Value, f)
	case *New:
		for i, arg := range v.Args {
			v.Args[i] = RewriteExpr(arg, f)
		}
	case *OuterRef:
		v.Receiver = RewriteExpr(v.Receiver, f)
	case *Lambda:
		RewriteBlock(v.Body, f)
	case *BlockExpr:
		for _, s := range v.Stmts {
			rewriteStmt(s, f)
		}
		v.Result = RewriteExpr(v.Result, f)
	case *NewArray:
		v.Size = RewriteExpr(v.Size, f)
		v.Init = RewriteExpr(v.Init, f)
	}

	return f(e)
}

// RewriteBlock applies f to every expression in the block, bottom-up, in
// place.
func RewriteBlock(b *Block, f func(Expr) Expr) {
	if b == nil {
		return
	}

	for _, s := range b.Stmts {
		rewriteStmt(s, f)
	}
}

func rewriteStmt(s Stmt, f func(Expr) Expr) {
	switch v := s.(type) {
	case *Block:
		RewriteBlock(v, f)
	case *Let:
		v.Init = RewriteExpr(v.Init, f)
	case *Assign:
		v.Value = RewriteExpr(v.Value, f)
	case *ExprStmt:
		v.X = RewriteExpr(v.X, f)
	case *Return:
		v.Value = RewriteExpr(v.Value, f)
	case *If:
		v.Cond = RewriteExpr(v.Cond, f)
		RewriteBlock(v.Then, f)
		RewriteBlock(v.Else, f)
	case *LocalClass:
		// Member bodies of local classes are rewritten when the module-level
		// walk reaches the hoisted declaration.
	}
}

// -----------------------------------------------------------------------------

// WalkExpr calls f for e and every expression beneath it, pre-order.
func WalkExpr(e Expr, f func(Expr)) {
	if e == nil {
		return
	}

	f(e)

	switch v := e.(type) {
	case *Binary:
		WalkExpr(v.Lhs, f)
		WalkExpr(v.Rhs, f)
	case *Call:
		for _, arg := range v.Args {
			WalkExpr(arg, f)
		}
	case *FieldGet:
		WalkExpr(v.Receiver, f)
	case *FieldSet:
		WalkExpr(v.Receiver, f)
		WalkExpr(v.Value, f)
	case *New:
		for _, arg := range v.Args {
			WalkExpr(arg, f)
		}
	case *OuterRef:
		WalkExpr(v.Receiver, f)
	case *Lambda:
		WalkBlock(v.Body, f)
	case *BlockExpr:
		for _, s := range v.Stmts {
			walkStmt(s, f)
		}
		WalkExpr(v.Result, f)
	case *NewArray:
		WalkExpr(v.Size, f)
		WalkExpr(v.Init, f)
	}
}

// WalkBlock calls f for every expression in the block, pre-order.
func WalkBlock(b *Block, f func(Expr)) {
	if b == nil {
		return
	}

	for _, s := range b.Stmts {
		walkStmt(s, f)
	}
}

func walkStmt(s Stmt, f func(Expr)) {
	switch v := s.(type) {
	case *Block:
		WalkBlock(v, f)
	case *Let:
		WalkExpr(v.Init, f)
	case *Assign:
		WalkExpr(v.Value, f)
	case *ExprStmt:
		WalkExpr(v.X, f)
	case *Return:
		WalkExpr(v.Value, f)
	case *If:
		WalkExpr(v.Cond, f)
		WalkBlock(v.Then, f)
		WalkBlock(v.Else, f)
	case *LocalClass:
	}
}
