/*
Package compose chains two machine instances into one system by routing
one machine's outputs into the other's inputs through externally supplied
partial conversion functions. An input is pumped through both machines
until neither produces further internal activity; outputs that do not
convert escape to the environment.

The engine itself has no multi-machine concept: composition is an
orchestration layer over two runner sessions.
*/
package compose

import (
	"fmt"

	"github.com/aretw0/sxm/pkg/machine"
	"github.com/aretw0/sxm/pkg/runner"
)

// Emission records an output that left the composed system for the
// environment.
type Emission struct {
	Source string `json:"source"`
	Output string `json:"output"`
}

// Convert maps one machine's output to the other's input. The boolean is
// false when the output stays external.
type Convert[O, I comparable] func(O) (I, bool)

// Pair wires two sessions together. AtoB and BtoA are the partial
// cross-machine routing functions.
type Pair[IA, OA, SA, PA comparable, MA machine.Memory[MA], IB, OB, SB, PB comparable, MB machine.Memory[MB]] struct {
	A     *runner.Session[IA, OA, SA, PA, MA]
	B     *runner.Session[IB, OB, SB, PB, MB]
	NameA string
	NameB string
	AtoB  Convert[OA, IB]
	BtoA  Convert[OB, IA]
}

// ProcessA feeds an external input into machine A and drains the chained
// activity: each produced output is either routed to the peer machine or
// emitted to the environment, until both machines are quiescent. Rejected
// inputs (no valid transition) end the chain silently, mirroring a machine
// that simply ignores a symbol it cannot consume.
func (p *Pair[IA, OA, SA, PA, MA, IB, OB, SB, PB, MB]) ProcessA(input IA) []Emission {
	pendingA := &input
	var pendingB *IB
	return p.drain(pendingA, pendingB)
}

// ProcessB feeds an external input into machine B.
func (p *Pair[IA, OA, SA, PA, MA, IB, OB, SB, PB, MB]) ProcessB(input IB) []Emission {
	var pendingA *IA
	pendingB := &input
	return p.drain(pendingA, pendingB)
}

func (p *Pair[IA, OA, SA, PA, MA, IB, OB, SB, PB, MB]) drain(pendingA *IA, pendingB *IB) []Emission {
	var emissions []Emission

	for {
		activity := false

		if pendingA != nil {
			in := *pendingA
			pendingA = nil
			if out, emitted, err := p.A.Step(in); err == nil {
				activity = true
				if emitted {
					if converted, ok := p.AtoB(out); ok {
						pendingB = &converted
					} else {
						emissions = append(emissions, Emission{Source: p.NameA, Output: fmt.Sprint(out)})
					}
				}
			}
		}

		if pendingB != nil {
			in := *pendingB
			pendingB = nil
			if out, emitted, err := p.B.Step(in); err == nil {
				activity = true
				if emitted {
					if converted, ok := p.BtoA(out); ok {
						pendingA = &converted
					} else {
						emissions = append(emissions, Emission{Source: p.NameB, Output: fmt.Sprint(out)})
					}
				}
			}
		}

		if !activity {
			return emissions
		}
	}
}
