package models

import (
	"fmt"
	"slices"

	"github.com/aretw0/sxm/pkg/machine"
)

// DigicodeInputKind discriminates the digicode input alphabet.
type DigicodeInputKind string

const (
	InputKindDigit      DigicodeInputKind = "digit"
	InputKindOK         DigicodeInputKind = "ok"
	InputKindDoorClosed DigicodeInputKind = "door_closed"
)

// DigicodeInput is one symbol of the digicode's input alphabet: a keypad
// digit, the OK/enter key, or the door-closed notification.
type DigicodeInput struct {
	Kind  DigicodeInputKind `json:"kind" yaml:"kind"`
	Digit uint8             `json:"digit,omitempty" yaml:"digit,omitempty"`
}

func (i DigicodeInput) String() string {
	if i.Kind == InputKindDigit {
		return fmt.Sprintf("Digit(%d)", i.Digit)
	}
	return string(i.Kind)
}

// Digit returns the input symbol for pressing a keypad digit.
func Digit(d uint8) DigicodeInput {
	return DigicodeInput{Kind: InputKindDigit, Digit: d}
}

// PressOK is the OK/enter key.
var PressOK = DigicodeInput{Kind: InputKindOK}

// DoorClosed is the notification the door feeds back once it shuts.
var DoorClosed = DigicodeInput{Kind: InputKindDoorClosed}

// DigicodeOutputKind discriminates the digicode output alphabet.
type DigicodeOutputKind string

const (
	OutputKindDigit       DigicodeOutputKind = "digit"
	OutputKindOpen        DigicodeOutputKind = "open"
	OutputKindInitialise  DigicodeOutputKind = "initialise"
	OutputKindIgnoreDigit DigicodeOutputKind = "ignore_digit"
	OutputKindRejectInput DigicodeOutputKind = "reject_input"
)

// DigicodeOutput is one symbol of the digicode's output alphabet.
type DigicodeOutput struct {
	Kind  DigicodeOutputKind `json:"kind" yaml:"kind"`
	Digit uint8              `json:"digit,omitempty" yaml:"digit,omitempty"`
}

func (o DigicodeOutput) String() string {
	if o.Kind == OutputKindDigit {
		return fmt.Sprintf("Echo(%d)", o.Digit)
	}
	return string(o.Kind)
}

// EchoDigit is the acknowledgement output for an accepted digit press.
func EchoDigit(d uint8) DigicodeOutput {
	return DigicodeOutput{Kind: OutputKindDigit, Digit: d}
}

// Outputs without a digit payload.
var (
	OutputOpen        = DigicodeOutput{Kind: OutputKindOpen}
	OutputInitialise  = DigicodeOutput{Kind: OutputKindInitialise}
	OutputIgnoreDigit = DigicodeOutput{Kind: OutputKindIgnoreDigit}
	OutputRejectInput = DigicodeOutput{Kind: OutputKindRejectInput}
)

// DigicodeState is the digicode's control state.
type DigicodeState string

const (
	StateReady       DigicodeState = "Ready"
	StateAccepting   DigicodeState = "Accepting"
	StateCodeEntered DigicodeState = "CodeEntered"
)

// DigicodePhi names the digicode's processing functions.
type DigicodePhi string

const (
	PhiReject     DigicodePhi = "Reject"
	PhiInputDigit DigicodePhi = "InputDigit"
	PhiIgnore     DigicodePhi = "Ignore"
	PhiFinish     DigicodePhi = "Finish"
	PhiLock       DigicodePhi = "Lock"
)

// DigicodeMemory accumulates the digits entered so far next to the valid
// code they must match.
type DigicodeMemory struct {
	Entered []uint8 `json:"entered" yaml:"entered"`
	Code    []uint8 `json:"code" yaml:"code"`
}

// Clone returns an independent copy for speculative search branches.
func (m *DigicodeMemory) Clone() *DigicodeMemory {
	return &DigicodeMemory{
		Entered: slices.Clone(m.Entered),
		Code:    slices.Clone(m.Code),
	}
}

// Digicode is the keypad machine guarding the secure door. Its guards are
// memory-dependent: Finish only fires once the accumulated digits exactly
// match the code, which makes it the canonical exercise for the
// guard-aware search.
type Digicode struct {
	code []uint8
}

// NewDigicode builds a digicode for the given code. With no digits it
// defaults to 4-9-2.
func NewDigicode(code ...uint8) *Digicode {
	if len(code) == 0 {
		code = []uint8{4, 9, 2}
	}
	return &Digicode{code: slices.Clone(code)}
}

var _ machine.Machine[DigicodeInput, DigicodeOutput, DigicodeState, DigicodePhi, *DigicodeMemory] = (*Digicode)(nil)

func (d *Digicode) InitialStates() []DigicodeState {
	return []DigicodeState{StateReady}
}

func (d *Digicode) FinalStates() []DigicodeState {
	return []DigicodeState{StateReady, StateAccepting, StateCodeEntered}
}

func (d *Digicode) AllStates() []DigicodeState {
	return []DigicodeState{StateReady, StateAccepting, StateCodeEntered}
}

func (d *Digicode) AllInputs() []DigicodeInput {
	inputs := []DigicodeInput{PressOK, DoorClosed}
	for digit := uint8(0); digit <= 9; digit++ {
		inputs = append(inputs, Digit(digit))
	}
	return inputs
}

func (d *Digicode) AllOutputs() []DigicodeOutput {
	var outputs []DigicodeOutput
	for digit := uint8(0); digit <= 9; digit++ {
		outputs = append(outputs, EchoDigit(digit))
	}
	return append(outputs, OutputOpen, OutputInitialise, OutputIgnoreDigit, OutputRejectInput)
}

func (d *Digicode) AllPhis() []DigicodePhi {
	return []DigicodePhi{PhiReject, PhiInputDigit, PhiIgnore, PhiFinish, PhiLock}
}

func (d *Digicode) InitialMemory() *DigicodeMemory {
	return &DigicodeMemory{Code: slices.Clone(d.code)}
}

func (d *Digicode) Transition(state DigicodeState, phi DigicodePhi) (DigicodeState, bool) {
	switch {
	case state == StateReady && phi == PhiInputDigit:
		return StateAccepting, true
	case state == StateReady && phi == PhiReject:
		return StateReady, true
	case state == StateAccepting && phi == PhiInputDigit:
		return StateAccepting, true
	case state == StateAccepting && phi == PhiFinish:
		return StateCodeEntered, true
	case state == StateAccepting && phi == PhiReject:
		return StateReady, true
	case state == StateAccepting && phi == PhiIgnore:
		return StateAccepting, true
	case state == StateCodeEntered && phi == PhiLock:
		return StateReady, true
	}
	return "", false
}

func (d *Digicode) AvailablePhis(state DigicodeState) []DigicodePhi {
	switch state {
	case StateReady:
		return []DigicodePhi{PhiInputDigit, PhiReject}
	case StateAccepting:
		return []DigicodePhi{PhiFinish, PhiInputDigit, PhiIgnore, PhiReject}
	case StateCodeEntered:
		return []DigicodePhi{PhiLock}
	}
	return nil
}

func (d *Digicode) RoutedPhi(state DigicodeState, input DigicodeInput) (DigicodePhi, bool) {
	switch {
	case state == StateReady && input.Kind == InputKindDigit:
		return PhiInputDigit, true
	case state == StateReady && input.Kind == InputKindOK:
		return PhiReject, true
	case state == StateAccepting && input.Kind == InputKindDigit:
		return PhiInputDigit, true
	case state == StateAccepting && input.Kind == InputKindOK:
		return PhiFinish, true
	case state == StateCodeEntered && input.Kind == InputKindDoorClosed:
		return PhiLock, true
	}
	return "", false
}

func (d *Digicode) ExecutePhi(phi DigicodePhi, mem *DigicodeMemory, input DigicodeInput) (DigicodeOutput, bool, error) {
	var none DigicodeOutput

	switch {
	case phi == PhiReject && input.Kind == InputKindOK:
		if slices.Equal(mem.Entered, mem.Code) {
			return none, false, machine.ErrGuardRejected
		}
		mem.Entered = mem.Entered[:0]
		return OutputRejectInput, true, nil

	case phi == PhiInputDigit && input.Kind == InputKindDigit:
		if len(mem.Entered) >= len(mem.Code) {
			return none, false, machine.ErrGuardRejected
		}
		mem.Entered = append(mem.Entered, input.Digit)
		return EchoDigit(input.Digit), true, nil

	case phi == PhiIgnore && input.Kind == InputKindDigit:
		if len(mem.Entered) != len(mem.Code) {
			return none, false, machine.ErrGuardRejected
		}
		return OutputIgnoreDigit, true, nil

	case phi == PhiFinish && input.Kind == InputKindOK:
		if !slices.Equal(mem.Entered, mem.Code) {
			return none, false, machine.ErrGuardRejected
		}
		return OutputOpen, true, nil

	case phi == PhiLock && input.Kind == InputKindDoorClosed:
		mem.Entered = mem.Entered[:0]
		return OutputInitialise, true, nil
	}

	return none, false, machine.ErrGuardRejected
}
