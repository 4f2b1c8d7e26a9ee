// Package phases implements the ordered, dependency-constrained execution of
// whole-module lowering passes.  A pipeline is constructed from an explicit
// phase list: there is no process-wide registry, and the same list always
// produces the same execution order.
package phases

import "kotc/ir"

// Phase describes a single named lowering step.  Phases are declared once at
// pipeline construction and executed at most once per run.
type Phase struct {
	// The unique name of the phase.
	Name string

	// A one-line description used when displaying the phase plan.
	Desc string

	// The names of the phases that must execute before this one.  Phases
	// with no relative constraint keep their declaration order.
	Prereqs []string

	// Run applies the phase's transformation to the module.  A non-nil error
	// aborts the whole run: no later phase observes the module.
	Run func(mod *ir.Module, ctx *Context) error
}
