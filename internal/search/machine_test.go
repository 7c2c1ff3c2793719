package search_test

import (
	"github.com/aretw0/sxm/pkg/machine"
)

// lightSwitch is a minimal fixture: a two-state toggle whose single guard
// only accepts the input 1, plus a Broken state nothing routes to.
type switchMemory struct {
	Clicks int
}

func (m *switchMemory) Clone() *switchMemory {
	clone := *m
	return &clone
}

type lightSwitch struct{}

type switchMachine = machine.Machine[int, string, string, string, *switchMemory]

var _ switchMachine = (*lightSwitch)(nil)

func (s *lightSwitch) InitialStates() []string { return []string{"Off"} }
func (s *lightSwitch) FinalStates() []string   { return []string{"Off", "On"} }
func (s *lightSwitch) AllStates() []string     { return []string{"Off", "On", "Broken"} }
func (s *lightSwitch) AllInputs() []int        { return []int{0, 1} }
func (s *lightSwitch) AllOutputs() []string    { return []string{"on", "off"} }
func (s *lightSwitch) AllPhis() []string       { return []string{"TurnOn", "TurnOff"} }

func (s *lightSwitch) InitialMemory() *switchMemory { return &switchMemory{} }

func (s *lightSwitch) Transition(state, phi string) (string, bool) {
	switch {
	case state == "Off" && phi == "TurnOn":
		return "On", true
	case state == "On" && phi == "TurnOff":
		return "Off", true
	}
	return "", false
}

func (s *lightSwitch) AvailablePhis(state string) []string {
	switch state {
	case "Off":
		return []string{"TurnOn"}
	case "On":
		return []string{"TurnOff"}
	}
	return nil
}

func (s *lightSwitch) RoutedPhi(state string, input int) (string, bool) {
	if input != 1 {
		return "", false
	}
	switch state {
	case "Off":
		return "TurnOn", true
	case "On":
		return "TurnOff", true
	}
	return "", false
}

func (s *lightSwitch) ExecutePhi(phi string, mem *switchMemory, input int) (string, bool, error) {
	if input != 1 {
		return "", false, machine.ErrGuardRejected
	}
	switch phi {
	case "TurnOn":
		mem.Clicks++
		return "on", true, nil
	case "TurnOff":
		mem.Clicks++
		return "off", true, nil
	}
	return "", false, machine.ErrGuardRejected
}
