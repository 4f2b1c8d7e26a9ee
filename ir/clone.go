package ir

// This file implements deep copying of IR trees.  Inlining must insert a fresh
// copy of the callee body at every call site: the inlined tree never aliases
// the original declaration's tree, so the original can still be serialized or
// rewritten independently.

// cloner tracks per-copy state: fresh variable definitions for locals declared
// inside the copied tree, and the substitution map for formal parameters.
type cloner struct {
	// vars maps variable definitions declared inside the cloned tree to
	// their fresh copies.
	vars map[*VarDef]*VarDef

	// subst maps formal parameters to their bound argument expressions.
	subst map[*VarDef]Expr

	// substUsed records parameters whose argument expression has already
	// been inserted once.  Later insertions copy the expression so that the
	// resulting tree never contains one node in two positions.
	substUsed map[*VarDef]bool
}

func newCloner(subst map[*VarDef]Expr) *cloner {
	return &cloner{
		vars:      make(map[*VarDef]*VarDef),
		subst:     subst,
		substUsed: make(map[*VarDef]bool),
	}
}

// CloneExpr returns a deep copy of the given expression.
func CloneExpr(e Expr) Expr {
	return newCloner(nil).expr(e)
}

// CloneBlock returns a deep copy of the given block.
func CloneBlock(b *Block) *Block {
	return newCloner(nil).block(b)
}

// CloneBlockSubst returns a deep copy of the given block with each variable
// reference to a key of subst replaced by the mapped expression.  Substituted
// expressions are inserted as-is on first use and copied on any further use.
func CloneBlockSubst(b *Block, subst map[*VarDef]Expr) *Block {
	return newCloner(subst).block(b)
}

// -----------------------------------------------------------------------------

// def returns the fresh copy of a variable definition declared inside the
// cloned tree, allocating it on first sight.
func (c *cloner) def(vd *VarDef) *VarDef {
	if fresh, ok := c.vars[vd]; ok {
		return fresh
	}

	fresh := &VarDef{Name: vd.Name, Mutable: vd.Mutable, Captured: vd.Captured}
	c.vars[vd] = fresh
	return fresh
}

// ref resolves a variable reference inside the cloned tree: parameters are
// substituted, locally declared variables are remapped to their fresh copies,
// and free variables are referenced unchanged.
func (c *cloner) ref(vr *VarRef) Expr {
	if c.subst != nil {
		if arg, ok := c.subst[vr.Def]; ok {
			if c.substUsed[vr.Def] {
				return CloneExpr(arg)
			}

			c.substUsed[vr.Def] = true
			return arg
		}
	}

	if fresh, ok := c.vars[vr.Def]; ok {
		return &VarRef{ExprBase: vr.ExprBase, Def: fresh}
	}

	return &VarRef{ExprBase: vr.ExprBase, Def: vr.Def}
}

func (c *cloner) exprs(es []Expr) []Expr {
	if es == nil {
		return nil
	}

	copied := make([]Expr, len(es))
	for i, e := range es {
		copied[i] = c.expr(e)
	}

	return copied
}

func (c *cloner) expr(e Expr) Expr {
	if e == nil {
		return nil
	}

	switch v := e.(type) {
	case *IntLit:
		lit := *v
		return &lit
	case *StrLit:
		lit := *v
		return &lit
	case *NullLit:
		lit := *v
		return &lit
	case *VarRef:
		return c.ref(v)
	case *Binary:
		return &Binary{ExprBase: v.ExprBase, Op: v.Op, Lhs: c.expr(v.Lhs), Rhs: c.expr(v.Rhs)}
	case *Call:
		return &Call{ExprBase: v.ExprBase, Callee: v.Callee, Args: c.exprs(v.Args)}
	case *FuncRef:
		ref := *v
		return &ref
	case *FieldGet:
		return &FieldGet{ExprBase: v.ExprBase, Target: v.Target, Receiver: c.expr(v.Receiver)}
	case *FieldSet:
		return &FieldSet{ExprBase: v.ExprBase, Target: v.Target, Receiver: c.expr(v.Receiver), Value: c.expr(v.Value)}
	case *New:
		return &New{ExprBase: v.ExprBase, Class: v.Class, Args: c.exprs(v.Args)}
	case *OuterRef:
		return &OuterRef{ExprBase: v.ExprBase, Inner: v.Inner, Receiver: c.expr(v.Receiver)}
	case *Lambda:
		params := make([]*VarDef, len(v.Params))
		for i, p := range v.Params {
			params[i] = c.def(p)
		}
		return &Lambda{ExprBase: v.ExprBase, Params: params, Body: c.block(v.Body)}
	case *BlockExpr:
		return &BlockExpr{ExprBase: v.ExprBase, Stmts: c.stmts(v.Stmts), Result: c.expr(v.Result)}
	case *NewArray:
		return &NewArray{ExprBase: v.ExprBase, Size: c.expr(v.Size), Init: c.expr(v.Init)}
	default:
		return e
	}
}

func (c *cloner) stmts(ss []Stmt) []Stmt {
	if ss == nil {
		return nil
	}

	copied := make([]Stmt, len(ss))
	for i, s := range ss {
		copied[i] = c.stmt(s)
	}

	return copied
}

func (c *cloner) stmt(s Stmt) Stmt {
	if s == nil {
		return nil
	}

	switch v := s.(type) {
	case *Block:
		return c.block(v)
	case *Let:
		// The definition must be copied before the initializer so that a
		// (malformed) self-referential initializer still resolves.
		def := c.def(v.Def)
		return &Let{StmtBase: v.StmtBase, Def: def, Init: c.expr(v.Init)}
	case *Assign:
		target := v.Def
		if fresh, ok := c.vars[target]; ok {
			target = fresh
		}
		return &Assign{StmtBase: v.StmtBase, Def: target, Value: c.expr(v.Value)}
	case *ExprStmt:
		return &ExprStmt{StmtBase: v.StmtBase, X: c.expr(v.X)}
	case *Return:
		return &Return{StmtBase: v.StmtBase, Value: c.expr(v.Value)}
	case *If:
		return &If{StmtBase: v.StmtBase, Cond: c.expr(v.Cond), Then: c.block(v.Then), Else: c.block(v.Else)}
	case *LocalClass:
		// Local classes are hoisted to module scope before any pass clones
		// bodies, so a surviving LocalClass keeps its declaration identity.
		return &LocalClass{StmtBase: v.StmtBase, Class: v.Class}
	default:
		return s
	}
}

func (c *cloner) block(b *Block) *Block {
	if b == nil {
		return nil
	}

	return &Block{StmtBase: b.StmtBase, Stmts: c.stmts(b.Stmts)}
}
