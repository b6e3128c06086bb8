package factory

import (
	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// SpawnDrone takes a drone from the pool at pos/rotation with the awarded
// type, ammo and anchor slot.
func SpawnDrone(pool *Pool, owner *donburi.Entry, award loadout.Award, pos gamemath.Vec2, altitude, rotation float64) *donburi.Entry {
	drone := pool.acquire(KindDrone)

	half := float32(cfg.Drone.BobAmplitude)
	components.Drone.SetValue(drone, components.DroneData{
		Type:     award.Type,
		Owner:    owner,
		Ammo:     award.Ammo,
		Anchor:   award.Anchor,
		Position: pos,
		Altitude: altitude,
		Rotation: rotation,
		Bob:      gween.New(-half, half, float32(cfg.Drone.BobPeriod/2), ease.InOutSine),
	})

	return drone
}
