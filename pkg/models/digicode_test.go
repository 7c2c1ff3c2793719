package models_test

import (
	"reflect"
	"testing"

	"github.com/aretw0/sxm/pkg/machine"
	"github.com/aretw0/sxm/pkg/models"
	"github.com/aretw0/sxm/pkg/runner"
)

func newDigicodeSession() *runner.Session[models.DigicodeInput, models.DigicodeOutput, models.DigicodeState, models.DigicodePhi, *models.DigicodeMemory] {
	var m models.DigicodeMachine = models.NewDigicode()
	return runner.New(m)
}

func TestDigicode_CorrectCodeOpens(t *testing.T) {
	session := newDigicodeSession()

	for _, d := range []uint8{4, 9, 2} {
		out, emitted, err := session.Step(models.Digit(d))
		if err != nil {
			t.Fatalf("Digit %d rejected: %v", d, err)
		}
		if !emitted || out != models.EchoDigit(d) {
			t.Errorf("Expected Echo(%d), got %v", d, out)
		}
	}

	out, emitted, err := session.Step(models.PressOK)
	if err != nil {
		t.Fatalf("OK rejected: %v", err)
	}
	if !emitted || out != models.OutputOpen {
		t.Errorf("Expected Open, got %v", out)
	}
	if session.State() != models.StateCodeEntered {
		t.Errorf("Expected CodeEntered, got %v", session.State())
	}
}

func TestDigicode_WrongCodeRejectsAndClears(t *testing.T) {
	session := newDigicodeSession()

	for _, d := range []uint8{4, 9, 3} {
		if _, _, err := session.Step(models.Digit(d)); err != nil {
			t.Fatalf("Digit %d rejected: %v", d, err)
		}
	}

	out, _, err := session.Step(models.PressOK)
	if err != nil {
		t.Fatalf("OK rejected: %v", err)
	}
	if out != models.OutputRejectInput {
		t.Errorf("Expected RejectInput, got %v", out)
	}
	if session.State() != models.StateReady {
		t.Errorf("Expected Ready after rejection, got %v", session.State())
	}
	if len(session.Memory().Entered) != 0 {
		t.Errorf("Rejection must clear the accumulated sequence, got %v", session.Memory().Entered)
	}
}

func TestDigicode_FourthDigitIgnored(t *testing.T) {
	session := newDigicodeSession()

	for _, d := range []uint8{4, 9, 2} {
		if _, _, err := session.Step(models.Digit(d)); err != nil {
			t.Fatalf("Digit %d rejected: %v", d, err)
		}
	}
	before := session.Memory().Clone()

	out, _, err := session.Step(models.Digit(7))
	if err != nil {
		t.Fatalf("Fourth digit rejected: %v", err)
	}
	if out != models.OutputIgnoreDigit {
		t.Errorf("Expected IgnoreDigit, got %v", out)
	}
	if session.State() != models.StateAccepting {
		t.Errorf("Expected to stay in Accepting, got %v", session.State())
	}
	if !reflect.DeepEqual(before, session.Memory()) {
		t.Errorf("Ignored digit must not change memory: %+v vs %+v", before, session.Memory())
	}
}

func TestDigicode_GuardFailureIsAtomic(t *testing.T) {
	d := models.NewDigicode()
	mem := &models.DigicodeMemory{Entered: []uint8{4, 9}, Code: []uint8{4, 9, 2}}
	before := mem.Clone()

	_, _, err := d.ExecutePhi(models.PhiFinish, mem, models.PressOK)
	if err == nil {
		t.Fatal("Finish should reject a partial code")
	}
	if !reflect.DeepEqual(before, mem) {
		t.Errorf("Failed guard must leave memory untouched: %+v vs %+v", before, mem)
	}
}

func TestDigicode_CustomCode(t *testing.T) {
	d := models.NewDigicode(1, 2)
	mem := d.InitialMemory()
	if !reflect.DeepEqual(mem.Code, []uint8{1, 2}) {
		t.Errorf("Expected code [1 2], got %v", mem.Code)
	}

	mem.Entered = []uint8{1, 2}
	out, _, err := d.ExecutePhi(models.PhiFinish, mem, models.PressOK)
	if err != nil || out != models.OutputOpen {
		t.Errorf("Expected Open for matching custom code, got (%v, %v)", out, err)
	}
}

func TestDigicode_MemoryCloneIsIndependent(t *testing.T) {
	mem := &models.DigicodeMemory{Entered: []uint8{4}, Code: []uint8{4, 9, 2}}
	clone := mem.Clone()

	clone.Entered = append(clone.Entered, 9)
	if len(mem.Entered) != 1 {
		t.Errorf("Mutating the clone leaked into the original: %v", mem.Entered)
	}
}

func TestDigicode_ContractAgreement(t *testing.T) {
	// Every routed phi must have a defined destination.
	var m models.DigicodeMachine = models.NewDigicode()
	for _, state := range m.AllStates() {
		for _, input := range m.AllInputs() {
			phi, ok := m.RoutedPhi(state, input)
			if !ok {
				continue
			}
			if _, defined := m.Transition(state, phi); !defined {
				t.Errorf("RoutedPhi(%v, %v) = %v but Transition is undefined", state, input, phi)
			}
		}
	}
}

func TestDigicode_UnmatchedPhiInputPairRejects(t *testing.T) {
	d := models.NewDigicode()
	mem := d.InitialMemory()

	if _, _, err := d.ExecutePhi(models.PhiFinish, mem, models.Digit(4)); err != machine.ErrGuardRejected {
		t.Errorf("Finish with a digit input should reject, got %v", err)
	}
}
