package models

import (
	"github.com/aretw0/sxm/pkg/machine"
)

// DoorInput is the sliding door's input alphabet.
type DoorInput string

const (
	DoorOpen  DoorInput = "Open"
	DoorClose DoorInput = "Close"
)

// DoorOutput is the sliding door's output alphabet.
type DoorOutput string

const (
	DoorOpens    DoorOutput = "DoorOpens"
	DoorCloses   DoorOutput = "DoorCloses"
	OpenIgnored  DoorOutput = "OpenIgnored"
	CloseIgnored DoorOutput = "CloseIgnored"
)

// DoorState is the door's control state.
type DoorState string

const (
	DoorStateClosed DoorState = "Closed"
	DoorStateOpened DoorState = "Opened"
)

// DoorPhi names the door's processing functions.
type DoorPhi string

const (
	PhiOpenDoor    DoorPhi = "OpenDoor"
	PhiCloseDoor   DoorPhi = "CloseDoor"
	PhiIgnoreOpen  DoorPhi = "IgnoreOpen"
	PhiIgnoreClose DoorPhi = "IgnoreClose"
)

// DoorMemory counts how many times the door has opened.
type DoorMemory struct {
	OpenCount uint32 `json:"open_count" yaml:"open_count"`
}

// Clone returns an independent copy for speculative search branches.
func (m *DoorMemory) Clone() *DoorMemory {
	clone := *m
	return &clone
}

// Door is the sliding door machine. Every guard is input-only, so all of
// its data paths are coverable at depth zero or one.
type Door struct{}

// NewDoor builds a sliding door starting closed with a zero open count.
func NewDoor() *Door {
	return &Door{}
}

var _ machine.Machine[DoorInput, DoorOutput, DoorState, DoorPhi, *DoorMemory] = (*Door)(nil)

func (d *Door) InitialStates() []DoorState {
	return []DoorState{DoorStateClosed}
}

func (d *Door) FinalStates() []DoorState {
	return []DoorState{DoorStateClosed, DoorStateOpened}
}

func (d *Door) AllStates() []DoorState {
	return []DoorState{DoorStateClosed, DoorStateOpened}
}

func (d *Door) AllInputs() []DoorInput {
	return []DoorInput{DoorOpen, DoorClose}
}

func (d *Door) AllOutputs() []DoorOutput {
	return []DoorOutput{DoorOpens, DoorCloses, OpenIgnored, CloseIgnored}
}

func (d *Door) AllPhis() []DoorPhi {
	return []DoorPhi{PhiOpenDoor, PhiCloseDoor, PhiIgnoreOpen, PhiIgnoreClose}
}

func (d *Door) InitialMemory() *DoorMemory {
	return &DoorMemory{}
}

func (d *Door) Transition(state DoorState, phi DoorPhi) (DoorState, bool) {
	switch {
	case state == DoorStateClosed && phi == PhiOpenDoor:
		return DoorStateOpened, true
	case state == DoorStateClosed && phi == PhiIgnoreClose:
		return DoorStateClosed, true
	case state == DoorStateOpened && phi == PhiCloseDoor:
		return DoorStateClosed, true
	case state == DoorStateOpened && phi == PhiIgnoreOpen:
		return DoorStateOpened, true
	}
	return "", false
}

func (d *Door) AvailablePhis(state DoorState) []DoorPhi {
	switch state {
	case DoorStateClosed:
		return []DoorPhi{PhiOpenDoor, PhiIgnoreClose}
	case DoorStateOpened:
		return []DoorPhi{PhiCloseDoor, PhiIgnoreOpen}
	}
	return nil
}

func (d *Door) RoutedPhi(state DoorState, input DoorInput) (DoorPhi, bool) {
	switch {
	case state == DoorStateClosed && input == DoorOpen:
		return PhiOpenDoor, true
	case state == DoorStateClosed && input == DoorClose:
		return PhiIgnoreClose, true
	case state == DoorStateOpened && input == DoorClose:
		return PhiCloseDoor, true
	case state == DoorStateOpened && input == DoorOpen:
		return PhiIgnoreOpen, true
	}
	return "", false
}

func (d *Door) ExecutePhi(phi DoorPhi, mem *DoorMemory, input DoorInput) (DoorOutput, bool, error) {
	switch {
	case phi == PhiOpenDoor && input == DoorOpen:
		mem.OpenCount++
		return DoorOpens, true, nil
	case phi == PhiCloseDoor && input == DoorClose:
		return DoorCloses, true, nil
	case phi == PhiIgnoreOpen && input == DoorOpen:
		return OpenIgnored, true, nil
	case phi == PhiIgnoreClose && input == DoorClose:
		return CloseIgnored, true, nil
	}
	return "", false, machine.ErrGuardRejected
}
