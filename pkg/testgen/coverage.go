package testgen

import (
	"fmt"

	"github.com/aretw0/sxm/internal/search"
	"github.com/aretw0/sxm/pkg/machine"
)

// Obligation identifies a (state, input, phi) triple the guard-aware
// search could not cover within the depth bound. Uncovered obligations are
// coverage gaps, not errors: a model whose guards are unsatisfiable within
// the bound is silently under-tested.
type Obligation[I, S, P comparable] struct {
	State S `json:"state" yaml:"state"`
	Input I `json:"input" yaml:"input"`
	Phi   P `json:"phi" yaml:"phi"`
}

func (o Obligation[I, S, P]) String() string {
	return fmt.Sprintf("%v at %v on %v", o.Phi, o.State, o.Input)
}

// Coverage generates data-path tests: for every (state, input) pair with a
// routed processing function, it searches for a concrete setup sequence
// whose accumulated memory satisfies that function's guard, then emits a
// test whose expected output is the actual result of executing the
// function against the discovered memory. Unlike Logic, the expectation is
// guard-accurate.
//
// Pairs with no witness inside the depth bound are returned as the second
// result instead of failing the generation.
func Coverage[I, O, S, P comparable, M machine.Memory[M]](
	m machine.Machine[I, O, S, P, M],
	distinguish Distinguisher[S, I],
	opts ...Option,
) ([]machine.TestCase[I, O], []Obligation[I, S, P]) {
	o := newOptions(opts)

	var tests []machine.TestCase[I, O]
	var uncovered []Obligation[I, S, P]

	for _, state := range m.AllStates() {
		for _, input := range m.AllInputs() {
			phi, ok := m.RoutedPhi(state, input)
			if !ok {
				continue
			}

			path, mem, err := search.Witness(m, state, phi, input, o.depthBound)
			if err != nil {
				uncovered = append(uncovered, Obligation[I, S, P]{State: state, Input: input, Phi: phi})
				continue
			}

			probe := mem.Clone()
			var expected *O
			if out, emitted, execErr := m.ExecutePhi(phi, probe, input); execErr == nil && emitted {
				expected = &out
			}

			var verify []I
			if next, ok := m.Transition(state, phi); ok {
				verify = distinguish(next)
			}

			tests = append(tests, machine.TestCase[I, O]{
				Name:                 fmt.Sprintf("Phi: %v at %v via %v", phi, state, path),
				SetupSequence:        path,
				TestInput:            input,
				ExpectedOutput:       expected,
				VerificationSequence: verify,
			})
		}
	}

	return tests, uncovered
}
