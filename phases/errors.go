package phases

import (
	"fmt"
	"strings"
)

// CyclicDependencyError reports that the declared phase prerequisites admit no
// valid execution order.  It names the phases forming the cycle in dependency
// order.
type CyclicDependencyError struct {
	// The names of the phases forming the cycle.  The first name is repeated
	// conceptually after the last: each phase requires the next.
	Cycle []string
}

func (cde *CyclicDependencyError) Error() string {
	return fmt.Sprintf(
		"cyclic phase dependency: %s -> %s",
		strings.Join(cde.Cycle, " -> "),
		cde.Cycle[0],
	)
}

// PhaseError wraps a failure raised by a single phase during execution.
type PhaseError struct {
	// The name of the failing phase.
	Phase string

	// The underlying failure.
	Err error
}

func (pe *PhaseError) Error() string {
	return fmt.Sprintf("phase `%s`: %s", pe.Phase, pe.Err)
}

func (pe *PhaseError) Unwrap() error {
	return pe.Err
}
