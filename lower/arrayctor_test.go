package lower

import (
	"testing"

	"kotc/ir"
)

func TestRewriteArrayConstructors(t *testing.T) {
	mod := ir.NewModule("m")

	it := &ir.VarDef{Name: "i"}
	fn := ir.NewFuncDecl("fn", ir.Public)
	fn.Body = ir.NewBlock(&ir.Return{Value: &ir.NewArray{
		Size: &ir.IntLit{Value: 8},
		Init: &ir.Lambda{
			Params: []*ir.VarDef{it},
			Body:   ir.NewBlock(&ir.Return{Value: &ir.VarRef{Def: it}}),
		},
	}})
	mod.AddDecl(fn)

	if err := RewriteArrayConstructors(mod, newTestContext()); err != nil {
		t.Fatalf("RewriteArrayConstructors() error = %v", err)
	}

	call, ok := fn.Body.Stmts[0].(*ir.Return).Value.(*ir.Call)
	if !ok {
		t.Fatalf("initialized constructor lowered to %T, want Call", fn.Body.Stmts[0].(*ir.Return).Value)
	}

	if call.Callee != mod.Builtin(ir.BuiltinFillArray) {
		t.Errorf("lowered call does not target the array-fill helper")
	}

	if len(call.Args) != 2 {
		t.Fatalf("helper call has %d args, want size and init", len(call.Args))
	}
	if size := call.Args[0].(*ir.IntLit); size.Value != 8 {
		t.Errorf("helper call lost the size argument")
	}
	if _, ok := call.Args[1].(*ir.Lambda); !ok {
		t.Errorf("helper call lost the init lambda")
	}
}

func TestRewriteArrayConstructorsLeavesBareAllocations(t *testing.T) {
	mod := ir.NewModule("m")

	fn := ir.NewFuncDecl("fn", ir.Public)
	fn.Body = ir.NewBlock(&ir.Return{Value: &ir.NewArray{
		Size: &ir.IntLit{Value: 4},
	}})
	mod.AddDecl(fn)

	if err := RewriteArrayConstructors(mod, newTestContext()); err != nil {
		t.Fatalf("RewriteArrayConstructors() error = %v", err)
	}

	if _, ok := fn.Body.Stmts[0].(*ir.Return).Value.(*ir.NewArray); !ok {
		t.Errorf("uninitialized allocation was rewritten; it belongs to the serializer")
	}
}
