package compose_test

import (
	"reflect"
	"testing"

	"github.com/aretw0/sxm/pkg/compose"
	"github.com/aretw0/sxm/pkg/models"
	"github.com/aretw0/sxm/pkg/runner"
)

type securePair = compose.Pair[
	models.DigicodeInput, models.DigicodeOutput, models.DigicodeState, models.DigicodePhi, *models.DigicodeMemory,
	models.DoorInput, models.DoorOutput, models.DoorState, models.DoorPhi, *models.DoorMemory,
]

func newSecureDoor() *securePair {
	var keypad models.DigicodeMachine = models.NewDigicode()
	var door models.DoorMachine = models.NewDoor()
	return &securePair{
		A:     runner.New(keypad),
		B:     runner.New(door),
		NameA: "digicode",
		NameB: "door",
		AtoB:  models.DigicodeToDoor,
		BtoA:  models.DoorToDigicode,
	}
}

func TestPair_EchoesStayExternal(t *testing.T) {
	pair := newSecureDoor()

	emissions := pair.ProcessA(models.Digit(4))
	want := []compose.Emission{{Source: "digicode", Output: "Echo(4)"}}
	if !reflect.DeepEqual(emissions, want) {
		t.Errorf("Expected %v, got %v", want, emissions)
	}
	if pair.B.State() != models.DoorStateClosed {
		t.Errorf("Echo must not reach the door, door state %v", pair.B.State())
	}
}

func TestPair_CorrectCodeOpensTheDoor(t *testing.T) {
	pair := newSecureDoor()

	for _, d := range []uint8{4, 9, 2} {
		pair.ProcessA(models.Digit(d))
	}
	emissions := pair.ProcessA(models.PressOK)

	// Open crosses into the door, so only the door's response escapes.
	want := []compose.Emission{{Source: "door", Output: "DoorOpens"}}
	if !reflect.DeepEqual(emissions, want) {
		t.Errorf("Expected %v, got %v", want, emissions)
	}
	if pair.A.State() != models.StateCodeEntered {
		t.Errorf("Expected keypad in CodeEntered, got %v", pair.A.State())
	}
	if pair.B.State() != models.DoorStateOpened {
		t.Errorf("Expected door Opened, got %v", pair.B.State())
	}
	if pair.B.Memory().OpenCount != 1 {
		t.Errorf("Expected OpenCount 1, got %d", pair.B.Memory().OpenCount)
	}
}

func TestPair_ClosingTheDoorRearmsTheKeypad(t *testing.T) {
	pair := newSecureDoor()
	for _, in := range []models.DigicodeInput{
		models.Digit(4), models.Digit(9), models.Digit(2), models.PressOK,
	} {
		pair.ProcessA(in)
	}

	emissions := pair.ProcessB(models.DoorClose)

	// DoorCloses routes back into the keypad, which re-initialises.
	want := []compose.Emission{{Source: "digicode", Output: "initialise"}}
	if !reflect.DeepEqual(emissions, want) {
		t.Errorf("Expected %v, got %v", want, emissions)
	}
	if pair.A.State() != models.StateReady {
		t.Errorf("Expected keypad re-armed at Ready, got %v", pair.A.State())
	}
	if pair.B.State() != models.DoorStateClosed {
		t.Errorf("Expected door Closed, got %v", pair.B.State())
	}
	if len(pair.A.Memory().Entered) != 0 {
		t.Errorf("Expected cleared buffer, got %v", pair.A.Memory().Entered)
	}
}

func TestPair_RejectedInputEndsTheChainSilently(t *testing.T) {
	pair := newSecureDoor()

	// DoorClosed is meaningless at Ready; nothing escapes and nothing moves.
	emissions := pair.ProcessA(models.DoorClosed)
	if len(emissions) != 0 {
		t.Errorf("Expected no emissions, got %v", emissions)
	}
	if pair.A.State() != models.StateReady || pair.B.State() != models.DoorStateClosed {
		t.Errorf("Rejected input must not move either machine: %v / %v", pair.A.State(), pair.B.State())
	}
}

func TestPair_FullCycleRepeats(t *testing.T) {
	pair := newSecureDoor()

	for cycle := 0; cycle < 2; cycle++ {
		for _, in := range []models.DigicodeInput{
			models.Digit(4), models.Digit(9), models.Digit(2), models.PressOK,
		} {
			pair.ProcessA(in)
		}
		pair.ProcessB(models.DoorClose)
	}

	if pair.B.Memory().OpenCount != 2 {
		t.Errorf("Expected the door to have opened twice, got %d", pair.B.Memory().OpenCount)
	}
	if pair.A.State() != models.StateReady {
		t.Errorf("Expected keypad at Ready after two cycles, got %v", pair.A.State())
	}
}
