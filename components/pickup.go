package components

import (
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PickupData struct {
	Type          loadout.DroneType
	Falling       bool
	VerticalSpeed float64 // negative while falling
	Altitude      float64
	Rotation      float64 // degrees
	Glow          *gween.Tween
	GlowLevel     float64 // last glow tween value, 0..1
}

var Pickup = donburi.NewComponentType[PickupData]()

// PendingPickup is a retired pickup waiting to be dropped back in.
type PendingPickup struct {
	Type  loadout.DroneType
	Timer float64 // seconds left
}

// PickupSpawnerData tracks pickups waiting to respawn (singleton).
type PickupSpawnerData struct {
	RespawnSeconds float64
	Pending        []PendingPickup
}

var PickupSpawner = donburi.NewComponentType[PickupSpawnerData]()
