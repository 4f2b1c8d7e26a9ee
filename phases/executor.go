package phases

import (
	"fmt"

	"kotc/ir"
	"kotc/serial"
	"kotc/util"
)

// Pipeline executes a fixed, validated sequence of phases over one module.
// The pipeline is single-threaded and cooperative: phases run strictly
// sequentially, and no phase ever observes a partially-transformed module from
// another run.  Parallelism exists only across independent modules, each with
// its own pipeline instance and context.
type Pipeline struct {
	order []*Phase
}

// NewPipeline validates the phase list and computes its execution order once.
// It fails with a CyclicDependencyError if the declared prerequisites admit no
// valid order.
func NewPipeline(phs []*Phase) (*Pipeline, error) {
	order, err := computeOrder(phs)
	if err != nil {
		return nil, err
	}

	return &Pipeline{order: order}, nil
}

// Order returns the phase names in execution order.
func (p *Pipeline) Order() []string {
	return util.Map(p.order, func(ph *Phase) string { return ph.Name })
}

// Phases returns the phases in execution order.
func (p *Pipeline) Phases() []*Phase {
	return p.order
}

// Run executes the phases in order, passing the same module and context to
// each.  The first phase failure aborts the whole run: lowering is
// deterministic and a failure indicates a genuine defect, so there is no
// partial continuation and no retry.  Running a pipeline twice over the same
// module is not supported.
func (p *Pipeline) Run(mod *ir.Module, ctx *Context) error {
	for _, ph := range p.order {
		ctx.Reporter.StartPhase(ph.Name)

		if err := ph.Run(mod, ctx); err != nil {
			return &PhaseError{Phase: ph.Name, Err: err}
		}

		ctx.Reporter.EndPhase()
	}

	if ctx.Reporter.AnyErrors() {
		return fmt.Errorf("lowering failed with %d error(s)", ctx.Reporter.ErrorCount())
	}

	return nil
}

// RunAndSerialize runs the pipeline and, only if every phase succeeded, hands
// the lowered module to the serializer.  A module from a failed run is never
// serialized.
func (p *Pipeline) RunAndSerialize(mod *ir.Module, ctx *Context, s serial.Serializer) error {
	if err := p.Run(mod, ctx); err != nil {
		return err
	}

	return s.Serialize(mod)
}
