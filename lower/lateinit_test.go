package lower

import (
	"testing"

	"kotc/ir"
)

func TestMaterializeLateinitTopLevel(t *testing.T) {
	mod := ir.NewModule("m")

	prop := ir.NewPropDecl("conn", ir.Internal)
	prop.Mutable = true
	prop.Lateinit = true
	mod.AddDecl(prop)

	user := ir.NewFuncDecl("user", ir.Public)
	user.Body = ir.NewBlock(
		&ir.ExprStmt{X: &ir.FieldSet{Target: prop.Sym(), Value: &ir.IntLit{Value: 1}}},
		&ir.Return{Value: &ir.FieldGet{Target: prop.Sym()}},
	)
	mod.AddDecl(user)

	if err := MaterializeLateinit(mod, newTestContext()); err != nil {
		t.Fatalf("MaterializeLateinit() error = %v", err)
	}

	// The property becomes an ordinary null-initialized field.
	if prop.Lateinit {
		t.Errorf("lateinit flag not cleared")
	}
	if _, ok := prop.Init.(*ir.NullLit); !ok {
		t.Errorf("backing field init = %T, want the null sentinel", prop.Init)
	}

	getter, _ := findTopLevel(mod, "conn$get").(*ir.FuncDecl)
	setter, _ := findTopLevel(mod, "conn$set").(*ir.FuncDecl)
	if getter == nil || setter == nil {
		t.Fatalf("guarded accessor pair not generated")
	}
	if !getter.Synthetic || !setter.Synthetic {
		t.Errorf("generated accessors not marked synthetic")
	}

	// The getter guards the sentinel before reading.
	guard, ok := getter.Body.Stmts[0].(*ir.If)
	if !ok {
		t.Fatalf("getter starts with %T, want the sentinel guard", getter.Body.Stmts[0])
	}
	raise := guard.Then.Stmts[0].(*ir.ExprStmt).X.(*ir.Call)
	if raise.Callee != mod.Builtin(ir.BuiltinUninitialized) {
		t.Errorf("guard does not raise the uninitialized-property error")
	}
	if name := raise.Args[0].(*ir.StrLit).Value; name != "conn" {
		t.Errorf("error names property %q, want %q", name, "conn")
	}

	// Field accesses outside the pair are rerouted.
	write := user.Body.Stmts[0].(*ir.ExprStmt).X.(*ir.Call)
	if write.Callee != setter.Sym() {
		t.Errorf("field write not rerouted through the setter")
	}
	read := user.Body.Stmts[1].(*ir.Return).Value.(*ir.Call)
	if read.Callee != getter.Sym() {
		t.Errorf("field read not rerouted through the getter")
	}
}

func TestMaterializeLateinitClassMember(t *testing.T) {
	mod := ir.NewModule("m")

	cls := ir.NewClassDecl("C", ir.Public)
	mod.AddDecl(cls)

	prop := ir.NewPropDecl("field", ir.Public)
	prop.Mutable = true
	prop.Lateinit = true
	cls.AddMember(prop)

	recv := &ir.VarDef{Name: "c"}
	user := ir.NewFuncDecl("user", ir.Public, recv)
	user.Body = ir.NewBlock(&ir.Return{Value: &ir.FieldGet{
		Target:   prop.Sym(),
		Receiver: &ir.VarRef{Def: recv},
	}})
	mod.AddDecl(user)

	if err := MaterializeLateinit(mod, newTestContext()); err != nil {
		t.Fatalf("MaterializeLateinit() error = %v", err)
	}

	getter, _ := findMember(cls, "field$get").(*ir.FuncDecl)
	if getter == nil {
		t.Fatalf("getter not colocated with the declaring class")
	}

	// Instance accessors take the receiver explicitly.
	if len(getter.Params) != 1 {
		t.Fatalf("instance getter has %d params, want the receiver", len(getter.Params))
	}

	setter, _ := findMember(cls, "field$set").(*ir.FuncDecl)
	if setter == nil || len(setter.Params) != 2 {
		t.Fatalf("instance setter must take receiver and value")
	}

	// The read forwards its receiver.
	read := user.Body.Stmts[0].(*ir.Return).Value.(*ir.Call)
	if read.Callee != getter.Sym() || len(read.Args) != 1 {
		t.Errorf("member read not rerouted with its receiver")
	}
	if read.Args[0].(*ir.VarRef).Def != recv {
		t.Errorf("rerouted read lost the original receiver")
	}
}

func TestMaterializeLateinitLeavesOrdinaryProps(t *testing.T) {
	mod := ir.NewModule("m")

	prop := ir.NewPropDecl("plain", ir.Public)
	prop.Init = &ir.IntLit{Value: 5}
	mod.AddDecl(prop)

	if err := MaterializeLateinit(mod, newTestContext()); err != nil {
		t.Fatalf("MaterializeLateinit() error = %v", err)
	}

	if len(mod.Decls) != 1 {
		t.Errorf("module grew to %d decls, want 1", len(mod.Decls))
	}
	if lit, ok := prop.Init.(*ir.IntLit); !ok || lit.Value != 5 {
		t.Errorf("ordinary property initializer was touched")
	}
}
