package lower

import (
	"fmt"

	"kotc/ir"
	"kotc/phases"
)

// HoistLocalClasses relocates class declarations out of bodies that inlining
// will clone: the bodies of inline functions and the lambda arguments of calls
// to inline functions.  A class declaration copied along with a body would
// yield two declarations sharing one symbol; hoisting to module scope under a
// deterministic mangled name preserves declaration identity.  References keep
// working unchanged because they go through the class's symbol.
func HoistLocalClasses(mod *ir.Module, ctx *phases.Context) error {
	var hoisted []*ir.ClassDecl

	mod.EachDecl(func(d ir.Decl) {
		fd, ok := d.(*ir.FuncDecl)
		if !ok || fd.Body == nil {
			return
		}

		seq := 0

		if fd.IsInline {
			hoisted = append(hoisted, extractLocalClasses(fd, fd.Body, &seq)...)
			return
		}

		ir.WalkBlock(fd.Body, func(e ir.Expr) {
			call, ok := e.(*ir.Call)
			if !ok {
				return
			}

			callee, ok := call.Callee.Def().(*ir.FuncDecl)
			if !ok || !callee.IsInline {
				return
			}

			for _, arg := range call.Args {
				if lam, ok := arg.(*ir.Lambda); ok {
					hoisted = append(hoisted, extractLocalClasses(fd, lam.Body, &seq)...)
				}
			}
		})
	})

	for _, cd := range hoisted {
		mod.AddDecl(cd)
	}

	return nil
}

// extractLocalClasses removes every LocalClass statement beneath the body and
// returns the extracted declarations renamed for module scope.
func extractLocalClasses(owner *ir.FuncDecl, body *ir.Block, seq *int) []*ir.ClassDecl {
	var extracted []*ir.ClassDecl

	forEachBlock(body, func(b *ir.Block) {
		kept := b.Stmts[:0]

		for _, s := range b.Stmts {
			lc, ok := s.(*ir.LocalClass)
			if !ok {
				kept = append(kept, s)
				continue
			}

			// Mangle in hoisting order: names stay reproducible because the
			// traversal order is the declaration order of the source body.
			lc.Class.Rename(fmt.Sprintf("%s$%s$%d", owner.Name(), lc.Class.Name(), *seq))
			*seq++

			extracted = append(extracted, lc.Class)
		}

		b.Stmts = kept
	})

	return extracted
}
