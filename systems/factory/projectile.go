package factory

import (
	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/automoto/marbledrones/tags"
	"github.com/yohamta/donburi"
)

// ProjectileSettings returns the tuning for a drone type's projectile.
func ProjectileSettings(t loadout.DroneType) cfg.ProjectileTypeConfig {
	switch t {
	case loadout.DroneMortar:
		return cfg.Projectile.Mortar
	case loadout.DroneSeeker:
		return cfg.Projectile.Seeker
	}
	return cfg.Projectile.Rocket
}

// SpawnProjectile takes a projectile from the pool and launches it from pos
// along dir.
func SpawnProjectile(pool *Pool, owner *donburi.Entry, t loadout.DroneType, pos, dir gamemath.Vec2, altitude float64, target *donburi.Entry) *donburi.Entry {
	p := pool.acquire(KindProjectile)
	settings := ProjectileSettings(t)

	r := settings.Radius
	placeObject(pool.ecs, p, pos.X-r, pos.Y-r, r*2, r*2, tags.ResolvProjectile)

	components.Projectile.SetValue(p, components.ProjectileData{
		Type:          t,
		Owner:         owner,
		Velocity:      dir.Normalized().Scale(settings.Speed),
		Altitude:      altitude,
		VerticalSpeed: settings.LaunchSpeedZ,
		Target:        target,
		Lifetime:      settings.Lifetime,
	})

	return p
}
