package lower

import (
	"kotc/ir"
	"kotc/phases"
)

// boxClassName is the name of the synthesized per-module box class used for
// mutable variables shared with lambdas.
const boxClassName = "SharedRef"

// BoxSharedVariables rewrites mutable local variables captured by lambdas to
// live in heap boxes.  A lambda body copied elsewhere by inlining must still
// observe writes made by the declaring function (and vice versa), which plain
// locals cannot provide once the two no longer share a frame.  Each such
// variable becomes a box allocation; reads and writes on either side go
// through the box's element field.
func BoxSharedVariables(mod *ir.Module, ctx *phases.Context) error {
	var box *ir.ClassDecl

	mod.EachDecl(func(d ir.Decl) {
		fd, ok := d.(*ir.FuncDecl)
		if !ok || fd.Body == nil || fd.Synthetic {
			return
		}

		boxes := make(map[*ir.VarDef]*ir.VarDef)

		// Replace each shared declaration with a box allocation.
		forEachBlock(fd.Body, func(b *ir.Block) {
			for i, s := range b.Stmts {
				let, ok := s.(*ir.Let)
				if !ok || !let.Def.Mutable || !let.Def.Captured {
					continue
				}

				if box == nil {
					box = boxClass(mod)
				}

				init := let.Init
				if init == nil {
					init = &ir.NullLit{}
				}

				boxDef := &ir.VarDef{Name: let.Def.Name + "$ref"}
				boxes[let.Def] = boxDef
				b.Stmts[i] = &ir.Let{StmtBase: ir.NewStmtBaseOn(let.Span()), Def: boxDef, Init: &ir.New{
					Class: box.Sym(),
					Args:  []ir.Expr{init},
				}}
			}
		})

		if len(boxes) == 0 {
			return
		}

		element := boxElement(box)

		// Reroute reads.
		ir.RewriteBlock(fd.Body, func(e ir.Expr) ir.Expr {
			if vr, ok := e.(*ir.VarRef); ok {
				if boxDef, shared := boxes[vr.Def]; shared {
					return &ir.FieldGet{
						ExprBase: ir.NewExprBaseOn(vr.Span()),
						Target:   element.Sym(),
						Receiver: &ir.VarRef{Def: boxDef},
					}
				}
			}

			return e
		})

		// Reroute writes, which are statements.
		forEachBlock(fd.Body, func(b *ir.Block) {
			for i, s := range b.Stmts {
				asn, ok := s.(*ir.Assign)
				if !ok {
					continue
				}

				if boxDef, shared := boxes[asn.Def]; shared {
					b.Stmts[i] = &ir.ExprStmt{StmtBase: ir.NewStmtBaseOn(asn.Span()), X: &ir.FieldSet{
						Target:   element.Sym(),
						Receiver: &ir.VarRef{Def: boxDef},
						Value:    asn.Value,
					}}
				}
			}
		})
	})

	return nil
}

// boxClass returns the module's box class, synthesizing it on first use.  The
// class is public: boxes allocated here may be referenced from code that
// inlining later relocates anywhere in the module or beyond.
func boxClass(mod *ir.Module) *ir.ClassDecl {
	for _, d := range mod.Decls {
		if cd, ok := d.(*ir.ClassDecl); ok && cd.Name() == boxClassName {
			return cd
		}
	}

	element := ir.NewPropDecl("element", ir.Public)
	element.Mutable = true

	cd := ir.NewClassDecl(boxClassName, ir.Public)
	cd.CtorParams = []*ir.VarDef{{Name: "element"}}
	cd.AddMember(element)
	mod.AddDecl(cd)

	return cd
}

// boxElement returns the box class's element property.
func boxElement(box *ir.ClassDecl) *ir.PropDecl {
	for _, m := range box.Members {
		if pd, ok := m.(*ir.PropDecl); ok && pd.Name() == "element" {
			return pd
		}
	}

	// The box class is always synthesized with its element member.
	panic("lower: box class missing element member")
}
