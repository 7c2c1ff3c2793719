package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDigicodeInput parses interactive input for the digicode: a single
// digit, "ok", or "closed".
func ParseDigicodeInput(raw string) (DigicodeInput, error) {
	switch clean := strings.ToLower(strings.TrimSpace(raw)); clean {
	case "ok", "enter":
		return PressOK, nil
	case "closed", "door_closed":
		return DoorClosed, nil
	default:
		n, err := strconv.Atoi(clean)
		if err != nil || n < 0 || n > 9 {
			return DigicodeInput{}, fmt.Errorf("expected a digit 0-9, \"ok\" or \"closed\"")
		}
		return Digit(uint8(n)), nil
	}
}

// ParseDoorInput parses interactive input for the door: "open" or "close".
func ParseDoorInput(raw string) (DoorInput, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "open":
		return DoorOpen, nil
	case "close":
		return DoorClose, nil
	}
	return "", fmt.Errorf("expected \"open\" or \"close\"")
}
