package sxm

import (
	"github.com/aretw0/sxm/pkg/models"
	"github.com/aretw0/sxm/pkg/registry"
)

// Version is the current release of the sxm module.
const Version = "0.3.0"

// DefaultRegistry returns the built-in model catalogue: the digicode
// keypad (code 4-9-2) and the sliding door, wired with their worked
// W-sets and input parsers.
func DefaultRegistry() *registry.Registry {
	var digicode models.DigicodeMachine = models.NewDigicode()
	var door models.DoorMachine = models.NewDoor()

	r := registry.New()
	r.Add(registry.Bind("digicode", digicode, models.DistinguishDigicode, models.ParseDigicodeInput))
	r.Add(registry.Bind("door", door, models.DistinguishDoor, models.ParseDoorInput))
	return r
}
