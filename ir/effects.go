package ir

// HasSideEffects conservatively reports whether evaluating the expression may
// have an observable effect.  Calls, constructions, field writes, and anything
// containing them are effectful; literals, variable and function references,
// outer-receiver reads, and lambda values are not.  The inliner uses this
// predicate to decide whether an argument may be substituted directly into the
// callee body or must be bound to a temporary first.
func HasSideEffects(e Expr) bool {
	effectful := false

	WalkExpr(e, func(x Expr) {
		switch x.(type) {
		case *Call, *New, *FieldSet, *NewArray, *BlockExpr:
			effectful = true
		}
	})

	return effectful
}

// CountVarUses returns the number of references to the given variable
// definition within the block, including references inside nested lambdas.
func CountVarUses(b *Block, def *VarDef) int {
	uses := 0

	WalkBlock(b, func(x Expr) {
		if vr, ok := x.(*VarRef); ok && vr.Def == def {
			uses++
		}
	})

	return uses
}
