// Package validate implements the post-lowering invariant checks: no
// disallowed reference to a private inline declaration may survive the
// pipeline, and inline declarations themselves must have an inlinable shape.
package validate

import (
	"kotc/ir"
	"kotc/phases"
	"kotc/report"
)

// CheckCallSites is the final validation phase.  It traverses every call site
// and function reference in the lowered module; any reference whose target is
// still a private inline function is a violation unless the run's injected
// call-site policy admits it.  All violations are collected and returned as
// one batched failure.
func CheckCallSites(mod *ir.Module, ctx *phases.Context) error {
	var violations []*report.Diagnostic

	check := func(site ir.Expr, sym *ir.Symbol) {
		fd, ok := sym.Def().(*ir.FuncDecl)
		if !ok || !fd.IsInline || fd.Visibility() != ir.Private {
			return
		}

		if ctx.Opts.CheckCallSite(site, fd) {
			return
		}

		violations = append(violations, &report.Diagnostic{
			Severity: report.SeverityError,
			Kind:     report.KindCallSite,
			Message:  "reference to private inline function survived lowering",
			Span:     site.Span(),
			Target:   ctx.Names.StableName(fd),
		})
	}

	eachReference(mod, func(site ir.Expr) {
		switch v := site.(type) {
		case *ir.Call:
			check(v, v.Callee)
		case *ir.FuncRef:
			check(v, v.Target)
		}
	})

	if len(violations) == 0 {
		return nil
	}

	for _, d := range violations {
		ctx.Reporter.Report(d)
	}

	return &StructuralViolationError{Violations: violations}
}

// eachReference calls f for every expression in every body reachable from the
// module root.
func eachReference(mod *ir.Module, f func(ir.Expr)) {
	mod.EachDecl(func(d ir.Decl) {
		switch v := d.(type) {
		case *ir.FuncDecl:
			ir.WalkBlock(v.Body, f)
		case *ir.PropDecl:
			ir.WalkExpr(v.Init, f)
		case *ir.ClassDecl:
			// Members are visited by EachDecl.
		}
	})
}
