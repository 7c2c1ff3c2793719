package testgen

import (
	"fmt"

	"github.com/aretw0/sxm/internal/search"
	"github.com/aretw0/sxm/pkg/machine"
)

// Logic generates W-method conformance tests: for every reachable state
// and every input with a routed processing function and a defined
// destination, one test asserting that the setup path plus the input
// yields the expected output and lands in a state indistinguishable from
// the destination under the supplied W-set.
//
// The expected output is computed by executing the processing function
// against a fresh initial memory, not against the memory the setup
// sequence would actually accumulate. For memory-sensitive guards this is
// an approximation; Coverage is the guard-accurate generator.
func Logic[I, O, S, P comparable, M machine.Memory[M]](
	m machine.Machine[I, O, S, P, M],
	distinguish Distinguisher[S, I],
) []machine.TestCase[I, O] {
	var tests []machine.TestCase[I, O]

	for _, target := range m.AllStates() {
		path, reachable := search.Cover(m, target)
		if !reachable {
			continue
		}
		for _, input := range m.AllInputs() {
			phi, ok := m.RoutedPhi(target, input)
			if !ok {
				continue
			}
			next, ok := m.Transition(target, phi)
			if !ok {
				continue
			}

			fresh := m.InitialMemory()
			var expected *O
			if out, emitted, err := m.ExecutePhi(phi, fresh, input); err == nil && emitted {
				expected = &out
			}

			tests = append(tests, machine.TestCase[I, O]{
				Name:                 fmt.Sprintf("Logic: %v + %v -> %v", target, input, next),
				SetupSequence:        path,
				TestInput:            input,
				ExpectedOutput:       expected,
				VerificationSequence: distinguish(next),
			})
		}
	}

	return tests
}
