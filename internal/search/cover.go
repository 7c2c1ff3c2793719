package search

import (
	"slices"

	"github.com/aretw0/sxm/pkg/machine"
)

// Cover returns the shortest input sequence reaching target from any
// initial state under routed dispatch, ignoring guards entirely. The
// boolean is false when target is topologically unreachable.
//
// The search is a multi-source BFS seeded from every initial state at
// once, deduplicating by state identity only. Ties break on the
// enumeration order of inputs, then of initial states, so the result is
// deterministic for a fixed model. Path length is minimal in symbol count.
func Cover[I, O, S, P comparable, M machine.Memory[M]](m machine.Machine[I, O, S, P, M], target S) ([]I, bool) {
	type node struct {
		state S
		path  []I
	}

	visited := make(map[S]bool)
	var queue []node

	for _, start := range m.InitialStates() {
		if start == target {
			return []I{}, true
		}
		if visited[start] {
			continue
		}
		visited[start] = true
		queue = append(queue, node{state: start})
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, input := range m.AllInputs() {
			phi, ok := m.RoutedPhi(cur.state, input)
			if !ok {
				continue
			}
			next, ok := m.Transition(cur.state, phi)
			if !ok {
				continue
			}
			if next == target {
				return append(slices.Clone(cur.path), input), true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, node{state: next, path: append(slices.Clone(cur.path), input)})
			}
		}
	}

	return nil, false
}
