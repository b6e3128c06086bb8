// Package loadout holds the rules for how many drones a player may carry and
// what a pickup turns into.
package loadout

import "fmt"

// MaxDrones is the number of drone anchor slots on a marble.
const MaxDrones = 3

// DroneType identifies both a pickup and the drone it becomes.
type DroneType int

const (
	DroneNone DroneType = iota
	DroneRocket
	DroneMortar
	DroneSeeker
)

// Types lists every type a pickup can carry, in spawn order.
var Types = []DroneType{DroneRocket, DroneMortar, DroneSeeker}

func (t DroneType) String() string {
	switch t {
	case DroneNone:
		return "None"
	case DroneRocket:
		return "Rocket"
	case DroneMortar:
		return "Mortar"
	case DroneSeeker:
		return "Seeker"
	}
	return fmt.Sprintf("DroneType(%d)", int(t))
}

var startingAmmo = map[DroneType]int{
	DroneRocket: 3,
	DroneMortar: 2,
	DroneSeeker: 1,
}

// Ammo is the number of shots a freshly collected drone of type t carries.
func Ammo(t DroneType) int {
	return startingAmmo[t]
}

// Award describes the drone granted by a pickup.
type Award struct {
	Type   DroneType
	Ammo   int
	Anchor int // anchor slot the drone hovers at
}

// Convert decides what a pickup of type t gives a player already holding held
// drones. ok is false when the player has no free slot or the pickup is empty,
// in which case the pickup must be left alone.
func Convert(held int, t DroneType) (award Award, ok bool) {
	if held < 0 || held >= MaxDrones {
		return Award{}, false
	}
	ammo := Ammo(t)
	if ammo == 0 {
		return Award{}, false
	}
	return Award{Type: t, Ammo: ammo, Anchor: held}, true
}

// CycleSelection moves the selected drone index by step, wrapping around count
// drones. With no drones the selection is always 0.
func CycleSelection(selected, count, step int) int {
	if count <= 0 {
		return 0
	}
	return ((selected+step)%count + count) % count
}
