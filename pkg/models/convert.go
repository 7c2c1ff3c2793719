package models

import "github.com/aretw0/sxm/pkg/machine"

// DigicodeMachine is the digicode's instantiated contract. Assigning a
// *Digicode to a variable of this type lets the generic searches and
// generators infer every type parameter.
type DigicodeMachine = machine.Machine[DigicodeInput, DigicodeOutput, DigicodeState, DigicodePhi, *DigicodeMemory]

// DoorMachine is the sliding door's instantiated contract.
type DoorMachine = machine.Machine[DoorInput, DoorOutput, DoorState, DoorPhi, *DoorMemory]

// DigicodeToDoor maps digicode outputs to door inputs for composition.
// Only Open crosses the boundary; everything else goes to the environment.
func DigicodeToDoor(out DigicodeOutput) (DoorInput, bool) {
	if out.Kind == OutputKindOpen {
		return DoorOpen, true
	}
	return "", false
}

// DoorToDigicode maps door outputs back to digicode inputs. Only the
// door-closes event feeds back, re-arming the keypad.
func DoorToDigicode(out DoorOutput) (DigicodeInput, bool) {
	if out == DoorCloses {
		return DoorClosed, true
	}
	return DigicodeInput{}, false
}

// DistinguishDigicode is the worked W-set for the digicode: pressing OK
// produces RejectInput in Ready, an echo-dependent outcome in Accepting
// and nothing in CodeEntered, which tells the three states apart.
func DistinguishDigicode(state DigicodeState) []DigicodeInput {
	switch state {
	case StateCodeEntered:
		return []DigicodeInput{DoorClosed}
	default:
		return []DigicodeInput{PressOK}
	}
}

// DistinguishDoor is the worked W-set for the door: Close answers
// DoorCloses only from Opened.
func DistinguishDoor(state DoorState) []DoorInput {
	return []DoorInput{DoorClose}
}
