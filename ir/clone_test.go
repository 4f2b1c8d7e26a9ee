package ir

import "testing"

func TestCloneBlockSharesNoNodes(t *testing.T) {
	local := &VarDef{Name: "x", Mutable: true}
	orig := NewBlock(
		&Let{Def: local, Init: &IntLit{Value: 1}},
		&Return{Value: &VarRef{Def: local}},
	)

	copied := CloneBlock(orig)

	if copied == orig {
		t.Fatalf("CloneBlock() returned the original block")
	}

	// Locals declared inside the copied tree get fresh definitions.
	let := copied.Stmts[0].(*Let)
	if let.Def == local {
		t.Errorf("cloned let shares the original variable definition")
	}

	ret := copied.Stmts[1].(*Return)
	if ret.Value.(*VarRef).Def != let.Def {
		t.Errorf("cloned reference does not resolve to the cloned definition")
	}

	// Mutating the copy must leave the original untouched.
	let.Init = &IntLit{Value: 99}
	if orig.Stmts[0].(*Let).Init.(*IntLit).Value != 1 {
		t.Errorf("mutating the copy changed the original")
	}
}

func TestCloneBlockKeepsFreeVariables(t *testing.T) {
	free := &VarDef{Name: "outer"}
	orig := NewBlock(&Return{Value: &VarRef{Def: free}})

	copied := CloneBlock(orig)

	if copied.Stmts[0].(*Return).Value.(*VarRef).Def != free {
		t.Errorf("free variable reference was remapped")
	}
}

func TestCloneBlockSubst(t *testing.T) {
	param := &VarDef{Name: "p"}
	body := NewBlock(&Return{Value: &Binary{
		Op:  "+",
		Lhs: &VarRef{Def: param},
		Rhs: &VarRef{Def: param},
	}})

	arg := &Binary{Op: "*", Lhs: &IntLit{Value: 2}, Rhs: &IntLit{Value: 3}}
	copied := CloneBlockSubst(body, map[*VarDef]Expr{param: arg})

	sum := copied.Stmts[0].(*Return).Value.(*Binary)

	// First use inserts the argument itself; the second use must be a copy,
	// never the same node twice in one tree.
	if sum.Lhs != Expr(arg) {
		t.Errorf("first substitution is not the argument expression")
	}
	if sum.Rhs == Expr(arg) {
		t.Errorf("second substitution aliases the first")
	}
	if got := sum.Rhs.(*Binary).Op; got != "*" {
		t.Errorf("second substitution = %q expression, want copy of the argument", got)
	}
}

func TestCloneLambdaParamsFresh(t *testing.T) {
	lp := &VarDef{Name: "it"}
	orig := NewBlock(&Return{Value: &Lambda{
		Params: []*VarDef{lp},
		Body:   NewBlock(&Return{Value: &VarRef{Def: lp}}),
	}})

	copied := CloneBlock(orig)
	lam := copied.Stmts[0].(*Return).Value.(*Lambda)

	if lam.Params[0] == lp {
		t.Errorf("cloned lambda shares the original parameter definition")
	}
	if lam.Body.Stmts[0].(*Return).Value.(*VarRef).Def != lam.Params[0] {
		t.Errorf("cloned lambda body does not reference the cloned parameter")
	}
}

func TestCloneLocalClassKeepsIdentity(t *testing.T) {
	cd := NewClassDecl("Local", Private)
	orig := NewBlock(&LocalClass{Class: cd})

	copied := CloneBlock(orig)

	if copied.Stmts[0].(*LocalClass).Class != cd {
		t.Errorf("cloning a local class duplicated its declaration")
	}
}

func TestHasSideEffects(t *testing.T) {
	fn := NewFuncDecl("f", Public)
	prop := NewPropDecl("p", Public)
	v := &VarDef{Name: "v"}

	tests := []struct {
		name string
		expr Expr
		want bool
	}{
		{"int literal", &IntLit{Value: 1}, false},
		{"variable reference", &VarRef{Def: v}, false},
		{"function reference", &FuncRef{Target: fn.Sym()}, false},
		{"field read", &FieldGet{Target: prop.Sym()}, false},
		{"pure binary", &Binary{Op: "+", Lhs: &IntLit{Value: 1}, Rhs: &IntLit{Value: 2}}, false},
		{"call", &Call{Callee: fn.Sym()}, true},
		{"call nested in binary", &Binary{Op: "+", Lhs: &Call{Callee: fn.Sym()}, Rhs: &IntLit{Value: 1}}, true},
		{"construction", &New{Class: NewClassDecl("C", Public).Sym()}, true},
		{"field write", &FieldSet{Target: prop.Sym(), Value: &IntLit{Value: 1}}, true},
	}

	for _, tt := range tests {
		if got := HasSideEffects(tt.expr); got != tt.want {
			t.Errorf("%s: HasSideEffects() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCountVarUses(t *testing.T) {
	p := &VarDef{Name: "p"}
	other := &VarDef{Name: "q"}

	body := NewBlock(
		&Let{Def: other, Init: &VarRef{Def: p}},
		&Return{Value: &Lambda{Body: NewBlock(&Return{Value: &VarRef{Def: p}})}},
	)

	if got := CountVarUses(body, p); got != 2 {
		t.Errorf("CountVarUses() = %d, want 2 (including lambda body)", got)
	}
	if got := CountVarUses(body, other); got != 0 {
		t.Errorf("CountVarUses() = %d, want 0", got)
	}
}
