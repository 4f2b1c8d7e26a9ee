package lower

import (
	"testing"

	"kotc/ir"
	"kotc/phases"
)

// innerClassModule builds a module with an inner class whose outer receiver is
// referenced from a function outside the class, the shape inlining produces
// when it relocates an inner-class method body.
func innerClassModule() (*ir.Module, *ir.ClassDecl, *ir.FuncDecl) {
	mod := ir.NewModule("m")

	outer := ir.NewClassDecl("Outer", ir.Public)
	mod.AddDecl(outer)

	inner := ir.NewClassDecl("Inner", ir.Public)
	inner.IsInner = true
	outer.AddMember(inner)

	recv := &ir.VarDef{Name: "inst"}
	relocated := ir.NewFuncDecl("relocated", ir.Public, recv)
	relocated.Body = ir.NewBlock(&ir.Return{Value: &ir.OuterRef{
		Inner:    inner.Sym(),
		Receiver: &ir.VarRef{Def: recv},
	}})
	mod.AddDecl(relocated)

	return mod, inner, relocated
}

func TestLowerOuterReceivers(t *testing.T) {
	mod, inner, relocated := innerClassModule()

	ctx := newTestContext()
	if err := LowerOuterReceivers(mod, ctx); err != nil {
		t.Fatalf("LowerOuterReceivers() error = %v", err)
	}

	call, ok := relocated.Body.Stmts[0].(*ir.Return).Value.(*ir.Call)
	if !ok {
		t.Fatalf("dangling outer reference lowered to %T, want Call", relocated.Body.Stmts[0].(*ir.Return).Value)
	}

	acc, _ := findMember(inner, "access$Inner$outer").(*ir.FuncDecl)
	if acc == nil {
		t.Fatalf("outer accessor not declared on the inner class")
	}
	if call.Callee != acc.Sym() {
		t.Errorf("reference does not go through the outer accessor")
	}

	// The accessor exposes the outer instance of the inner instance passed in.
	ref, ok := acc.Body.Stmts[0].(*ir.Return).Value.(*ir.OuterRef)
	if !ok || ref.Inner != inner.Sym() {
		t.Fatalf("accessor body does not read the outer instance")
	}
	if ref.Receiver.(*ir.VarRef).Def != acc.Params[0] {
		t.Errorf("accessor does not read through its receiver parameter")
	}
}

func TestLowerOuterReceiversLeavesInScopeReferences(t *testing.T) {
	mod := ir.NewModule("m")

	outer := ir.NewClassDecl("Outer", ir.Public)
	mod.AddDecl(outer)

	inner := ir.NewClassDecl("Inner", ir.Public)
	inner.IsInner = true
	outer.AddMember(inner)

	// A method still inside the inner class resolves its outer receiver
	// directly.
	method := ir.NewFuncDecl("method", ir.Public)
	method.Body = ir.NewBlock(&ir.Return{Value: &ir.OuterRef{Inner: inner.Sym()}})
	inner.AddMember(method)

	ctx := newTestContext()
	if err := LowerOuterReceivers(mod, ctx); err != nil {
		t.Fatalf("LowerOuterReceivers() error = %v", err)
	}

	if _, ok := method.Body.Stmts[0].(*ir.Return).Value.(*ir.OuterRef); !ok {
		t.Errorf("in-scope outer reference was rewritten")
	}
	if ctx.Accessors.Len() != 0 {
		t.Errorf("accessor generated for a module with no dangling references")
	}
}

func TestLowerOuterReceiversDisabledByFields(t *testing.T) {
	mod, _, relocated := innerClassModule()

	ctx := phases.NewContext(phases.Options{ProduceOuterThisFields: true}, nil, nil)
	if err := LowerOuterReceivers(mod, ctx); err != nil {
		t.Fatalf("LowerOuterReceivers() error = %v", err)
	}

	// With materialized outer fields the pass has nothing to do.
	if _, ok := relocated.Body.Stmts[0].(*ir.Return).Value.(*ir.OuterRef); !ok {
		t.Errorf("pass rewrote references despite outer-this fields being produced")
	}
}

func TestLowerOuterReceiversReportsMissingReceiver(t *testing.T) {
	mod := ir.NewModule("m")

	outer := ir.NewClassDecl("Outer", ir.Public)
	mod.AddDecl(outer)

	inner := ir.NewClassDecl("Inner", ir.Public)
	inner.IsInner = true
	outer.AddMember(inner)

	// Relocated code referencing the implicit outer receiver with no inner
	// instance in reach cannot be repaired.
	broken := ir.NewFuncDecl("broken", ir.Public)
	broken.Body = ir.NewBlock(&ir.Return{Value: &ir.OuterRef{Inner: inner.Sym()}})
	mod.AddDecl(broken)

	ctx := newTestContext()
	if err := LowerOuterReceivers(mod, ctx); err != nil {
		t.Fatalf("LowerOuterReceivers() error = %v", err)
	}

	if !ctx.Reporter.AnyErrors() {
		t.Errorf("unreachable outer instance not reported")
	}
}

func TestOuterAndAccessorPassesShareCache(t *testing.T) {
	mod, inner, _ := innerClassModule()

	// A second dangling reference to the same inner class from another
	// function must reuse the accessor the first one generated.
	recv := &ir.VarDef{Name: "inst"}
	another := ir.NewFuncDecl("another", ir.Public, recv)
	another.Body = ir.NewBlock(&ir.Return{Value: &ir.OuterRef{
		Inner:    inner.Sym(),
		Receiver: &ir.VarRef{Def: recv},
	}})
	mod.AddDecl(another)

	ctx := newTestContext()
	if err := LowerOuterReceivers(mod, ctx); err != nil {
		t.Fatalf("LowerOuterReceivers() error = %v", err)
	}

	if got := ctx.Accessors.Len(); got != 1 {
		t.Errorf("accessor cache holds %d entries, want 1 shared accessor", got)
	}

	outers := 0
	for _, m := range inner.Members {
		if m.Name() == "access$Inner$outer" {
			outers++
		}
	}
	if outers != 1 {
		t.Errorf("inner class carries %d outer accessors, want 1", outers)
	}
}
