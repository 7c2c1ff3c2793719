package search

import (
	"slices"

	"github.com/aretw0/sxm/pkg/machine"
)

// DefaultDepthBound caps the guard-aware search when the caller does not
// configure one. It is the sole termination guarantee against runaway
// exploration on ill-formed models.
const DefaultDepthBound = 10

// Witness finds an input sequence, replayed from an initial configuration,
// whose resulting memory satisfies targetPhi's guard for trigger at target.
// It returns the sequence together with the memory snapshot the replay
// produces; the caller re-executes targetPhi against a clone of that
// snapshot to capture the actual output.
//
// The frontier holds (state, memory, path) triples. Memory is never
// deduplicated: revisiting a state with different accumulated memory is the
// point of this search, since a guard's satisfiability depends on the data,
// not the topology. Each branch owns an independent clone, so a failed
// speculative execution cannot corrupt the rest of the frontier. Branches
// whose guard fails are pruned; branches longer than depth are abandoned.
//
// When no witness exists within depth, Witness returns a
// *machine.SearchExhaustedError. That is a coverage gap, not a failure.
func Witness[I, O, S, P comparable, M machine.Memory[M]](
	m machine.Machine[I, O, S, P, M],
	target S,
	targetPhi P,
	trigger I,
	depth int,
) ([]I, M, error) {
	type node struct {
		state S
		mem   M
		path  []I
	}

	if depth <= 0 {
		depth = DefaultDepthBound
	}

	var queue []node
	for _, start := range m.InitialStates() {
		queue = append(queue, node{state: start, mem: m.InitialMemory()})
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.state == target {
			probe := cur.mem.Clone()
			if _, _, err := m.ExecutePhi(targetPhi, probe, trigger); err == nil {
				return cur.path, cur.mem, nil
			}
		}

		if len(cur.path) >= depth {
			continue
		}

		for _, input := range m.AllInputs() {
			phi, ok := m.RoutedPhi(cur.state, input)
			if !ok {
				continue
			}
			next, ok := m.Transition(cur.state, phi)
			if !ok {
				continue
			}
			branch := cur.mem.Clone()
			if _, _, err := m.ExecutePhi(phi, branch, input); err != nil {
				continue
			}
			queue = append(queue, node{
				state: next,
				mem:   branch,
				path:  append(slices.Clone(cur.path), input),
			})
		}
	}

	var zero M
	return nil, zero, &machine.SearchExhaustedError{Depth: depth}
}
