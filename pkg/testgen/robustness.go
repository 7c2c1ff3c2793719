package testgen

import (
	"fmt"

	"github.com/aretw0/sxm/internal/search"
	"github.com/aretw0/sxm/pkg/machine"
)

// Robustness generates input-completeness tests: for every reachable state
// and every input with no routed processing function, one test asserting
// the machine safely ignores the input: no output, no state change. The
// verification sequence is empty and the expected output nil.
//
// Together with Logic this proves the implementation is total over the
// full input alphabet, not just the defined transitions.
func Robustness[I, O, S, P comparable, M machine.Memory[M]](
	m machine.Machine[I, O, S, P, M],
) []machine.TestCase[I, O] {
	var tests []machine.TestCase[I, O]

	for _, state := range m.AllStates() {
		path, reachable := search.Cover(m, state)
		if !reachable {
			continue
		}
		for _, input := range m.AllInputs() {
			if _, defined := m.RoutedPhi(state, input); defined {
				continue
			}
			tests = append(tests, machine.TestCase[I, O]{
				Name:          fmt.Sprintf("Robustness: %v rejects %v", state, input),
				SetupSequence: path,
				TestInput:     input,
			})
		}
	}

	return tests
}
