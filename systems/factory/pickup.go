package factory

import (
	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/automoto/marbledrones/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// SpawnPickup takes a pickup from the pool and drops it at pos. Every field
// is reset so a recycled pickup starts exactly like a new one.
func SpawnPickup(pool *Pool, t loadout.DroneType, pos gamemath.Vec2, altitude, rotation float64) *donburi.Entry {
	pickup := pool.acquire(KindPickup)

	size := cfg.Pickup.Size
	placeObject(pool.ecs, pickup, pos.X-size/2, pos.Y-size/2, size, size, tags.ResolvPickup)

	glow := gween.New(0, 1, float32(cfg.Pickup.GlowPeriod), ease.InOutSine)
	components.Pickup.SetValue(pickup, components.PickupData{
		Type:          t,
		Falling:       true,
		VerticalSpeed: 0,
		Altitude:      altitude,
		Rotation:      rotation,
		Glow:          glow,
	})

	return pickup
}
