package phases

import (
	"fmt"

	"kotc/util"
)

// computeOrder returns a total order over the given phases such that every
// phase appears after all of its prerequisites.  Ties among phases with no
// relative constraint are broken by declaration order, so the order is
// deterministic for a given phase list.  If the prerequisites form a cycle,
// the returned error names it.
func computeOrder(phs []*Phase) ([]*Phase, error) {
	byName := make(map[string]*Phase, len(phs))
	for _, ph := range phs {
		if _, ok := byName[ph.Name]; ok {
			return nil, fmt.Errorf("duplicate phase name: `%s`", ph.Name)
		}

		byName[ph.Name] = ph
	}

	for _, ph := range phs {
		for _, pre := range ph.Prereqs {
			if _, ok := byName[pre]; !ok {
				return nil, fmt.Errorf("phase `%s` requires unknown phase `%s`", ph.Name, pre)
			}
		}
	}

	// Kahn's algorithm with an ordered scan: each round emits the first
	// declared phase whose prerequisites have all been emitted.  Quadratic in
	// the number of phases, which stays in the low dozens.
	var order []*Phase
	emitted := make(map[string]bool, len(phs))

	for len(order) < len(phs) {
		progressed := false

		for _, ph := range phs {
			if emitted[ph.Name] {
				continue
			}

			ready := true
			for _, pre := range ph.Prereqs {
				if !emitted[pre] {
					ready = false
					break
				}
			}

			if ready {
				order = append(order, ph)
				emitted[ph.Name] = true
				progressed = true
				break
			}
		}

		if !progressed {
			return nil, &CyclicDependencyError{Cycle: findCycle(phs, byName, emitted)}
		}
	}

	return order, nil
}

// findCycle locates one dependency cycle among the phases that could not be
// ordered.  This is a three-color depth-first search over the prerequisite
// edges of the remaining phases.
func findCycle(phs []*Phase, byName map[string]*Phase, emitted map[string]bool) []string {
	const (
		white = iota // Not yet visited.
		grey         // On the current search path.
		black        // Fully explored, not part of a cycle.
	)

	colors := make(map[string]int, len(phs))
	var stack []string

	var search func(name string) []string
	search = func(name string) []string {
		colors[name] = grey
		stack = append(stack, name)

		for _, pre := range byName[name].Prereqs {
			if emitted[pre] {
				continue
			}

			switch colors[pre] {
			case white:
				if cycle := search(pre); cycle != nil {
					return cycle
				}
			case grey:
				// The cycle is the slice of the search path starting at the
				// first occurrence of the revisited phase.
				at := util.IndexOf(stack, pre)
				return append([]string{}, stack[at:]...)
			}
		}

		stack = stack[:len(stack)-1]
		colors[name] = black
		return nil
	}

	for _, ph := range phs {
		if !emitted[ph.Name] && colors[ph.Name] == white {
			if cycle := search(ph.Name); cycle != nil {
				return cycle
			}
		}
	}

	// Unreachable when computeOrder stalled, but never return an empty cycle.
	return util.Map(phs, func(ph *Phase) string { return ph.Name })
}
