package registry

import (
	"fmt"

	"github.com/aretw0/sxm/pkg/machine"
	"github.com/aretw0/sxm/pkg/ports"
	"github.com/aretw0/sxm/pkg/runner"
	"github.com/aretw0/sxm/pkg/testgen"
)

// InputParser turns a raw CLI/HTTP string into an input symbol.
type InputParser[I comparable] func(raw string) (I, error)

// Bind adapts a concrete machine into a type-erased Model. distinguish is
// the caller-supplied W-set used by the logic and coverage generators;
// parse feeds interactive sessions.
func Bind[I, O, S, P comparable, M machine.Memory[M]](
	name string,
	m machine.Machine[I, O, S, P, M],
	distinguish testgen.Distinguisher[S, I],
	parse InputParser[I],
) Model {
	return &bound[I, O, S, P, M]{
		name:        name,
		machine:     m,
		distinguish: distinguish,
		parse:       parse,
	}
}

type bound[I, O, S, P comparable, M machine.Memory[M]] struct {
	name        string
	machine     machine.Machine[I, O, S, P, M]
	distinguish testgen.Distinguisher[S, I]
	parse       InputParser[I]
}

func (b *bound[I, O, S, P, M]) Name() string {
	return b.name
}

func (b *bound[I, O, S, P, M]) Topology() Topology {
	topo := Topology{
		Name:    b.name,
		States:  renderAll(b.machine.AllStates()),
		Initial: renderAll(b.machine.InitialStates()),
		Final:   renderAll(b.machine.FinalStates()),
		Inputs:  renderAll(b.machine.AllInputs()),
		Phis:    renderAll(b.machine.AllPhis()),
	}
	for _, from := range b.machine.AllStates() {
		for _, phi := range b.machine.AllPhis() {
			if to, ok := b.machine.Transition(from, phi); ok {
				topo.Edges = append(topo.Edges, Edge{
					From:  fmt.Sprint(from),
					To:    fmt.Sprint(to),
					Label: fmt.Sprint(phi),
				})
			}
		}
	}
	return topo
}

func (b *bound[I, O, S, P, M]) Generate(kind Kind, depthBound int) (*Suite, error) {
	suite := &Suite{Model: b.name, Kind: kind}

	switch kind {
	case KindLogic:
		suite.Cases = renderCases(testgen.Logic(b.machine, b.distinguish))
	case KindRobustness:
		suite.Cases = renderCases(testgen.Robustness(b.machine))
	case KindCoverage:
		tests, uncovered := testgen.Coverage(b.machine, b.distinguish, testgen.WithDepthBound(depthBound))
		suite.Cases = renderCases(tests)
		for _, o := range uncovered {
			suite.Uncovered = append(suite.Uncovered, o.String())
		}
	default:
		return nil, &ErrUnknownKind{Kind: kind}
	}

	return suite, nil
}

func (b *bound[I, O, S, P, M]) NewSession() Session {
	return &boundSession[I, O, S, P, M]{
		model:   b.name,
		parse:   b.parse,
		session: runner.New(b.machine),
	}
}

type boundSession[I, O, S, P comparable, M machine.Memory[M]] struct {
	model   string
	parse   InputParser[I]
	session *runner.Session[I, O, S, P, M]
}

func (s *boundSession[I, O, S, P, M]) State() string {
	return fmt.Sprint(s.session.State())
}

func (s *boundSession[I, O, S, P, M]) Step(rawInput string) (string, bool, error) {
	input, err := s.parse(rawInput)
	if err != nil {
		return "", false, fmt.Errorf("invalid input %q: %w", rawInput, err)
	}
	out, emitted, err := s.session.Step(input)
	if err != nil {
		return "", false, err
	}
	if !emitted {
		return "", false, nil
	}
	return fmt.Sprint(out), true, nil
}

func (s *boundSession[I, O, S, P, M]) Snapshot() (*ports.Snapshot, error) {
	return s.session.Snapshot(s.model)
}

func (s *boundSession[I, O, S, P, M]) Restore(snap *ports.Snapshot) error {
	if snap.Model != s.model {
		return fmt.Errorf("snapshot belongs to model %q, not %q", snap.Model, s.model)
	}
	return s.session.Restore(snap)
}

func renderAll[T comparable](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

func renderCases[I, O comparable](tests []machine.TestCase[I, O]) []Case {
	cases := make([]Case, 0, len(tests))
	for _, tc := range tests {
		c := Case{
			Name:         tc.Name,
			Setup:        renderAll(tc.SetupSequence),
			Input:        fmt.Sprint(tc.TestInput),
			Verification: renderAll(tc.VerificationSequence),
		}
		if tc.ExpectedOutput != nil {
			rendered := fmt.Sprint(*tc.ExpectedOutput)
			c.ExpectedOutput = &rendered
		}
		cases = append(cases, c)
	}
	return cases
}
