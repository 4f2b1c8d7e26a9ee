package lower

import (
	"kotc/inline"
	"kotc/phases"
	"kotc/validate"
)

// Phase names of the standard pre-serialization pipeline.
const (
	PhaseLateinit         = "lateinit"
	PhaseSharedVariables  = "shared-variables"
	PhaseLocalClasses     = "local-classes"
	PhaseArrayConstructor = "array-constructor"
	PhaseCheckInlineDecls = "check-inline-declarations"
	PhaseInline           = "inline"
	PhaseAccessors        = "synthetic-accessors"
	PhaseOuterReceivers   = "outer-receivers"
	PhaseValidate         = "validate-call-sites"
)

// PreSerializationPhases returns the standard phase list lowering a module
// before serialization.  The executor resolves the declared prerequisites
// into the execution order; declaration order here only breaks ties.
func PreSerializationPhases() []*phases.Phase {
	return []*phases.Phase{
		{
			Name: PhaseLateinit,
			Desc: "materialize lateinit properties into guarded backing fields",
			Run:  MaterializeLateinit,
		},
		{
			Name:    PhaseSharedVariables,
			Desc:    "box mutable variables captured by lambdas",
			Prereqs: []string{PhaseLateinit},
			Run:     BoxSharedVariables,
		},
		{
			Name:    PhaseLocalClasses,
			Desc:    "hoist local classes out of bodies the inliner clones",
			Prereqs: []string{PhaseSharedVariables},
			Run:     HoistLocalClasses,
		},
		{
			Name:    PhaseArrayConstructor,
			Desc:    "rewrite array-constructor intrinsics to the fill helper",
			Prereqs: []string{PhaseLateinit},
			Run:     RewriteArrayConstructors,
		},
		{
			Name:    PhaseCheckInlineDecls,
			Desc:    "reject inline declarations the inliner cannot copy safely",
			Prereqs: []string{PhaseLocalClasses},
			Run:     validate.CheckInlineDecls,
		},
		{
			Name:    PhaseInline,
			Desc:    "inline calls to module-private inline functions",
			Prereqs: []string{PhaseCheckInlineDecls, PhaseArrayConstructor},
			Run:     inline.Run,
		},
		{
			Name:    PhaseAccessors,
			Desc:    "reroute relocated private references through accessors",
			Prereqs: []string{PhaseInline},
			Run:     GenerateAccessors,
		},
		{
			Name:    PhaseOuterReceivers,
			Desc:    "reroute relocated outer-receiver references",
			Prereqs: []string{PhaseAccessors},
			Run:     LowerOuterReceivers,
		},
		{
			Name:    PhaseValidate,
			Desc:    "verify no disallowed private-inline call site survived",
			Prereqs: []string{PhaseAccessors, PhaseOuterReceivers},
			Run:     validate.CheckCallSites,
		},
	}
}
