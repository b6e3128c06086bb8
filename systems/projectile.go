package systems

import (
	"math"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/systems/factory"
	"github.com/automoto/marbledrones/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type projectileHit struct {
	projectile *donburi.Entry
	target     *donburi.Entry
}

// NewUpdateProjectiles returns the projectile system: flight, homing, wall and
// marble hits, and expiry.
func NewUpdateProjectiles(pool *factory.Pool) ecs.System {
	var (
		hits    []projectileHit
		expired []*donburi.Entry
	)

	return func(ecs *ecs.ECS) {
		dt := cfg.C.DeltaTime()
		hits = hits[:0]
		expired = expired[:0]

		projectileQuery.Each(ecs.World, func(entry *donburi.Entry) {
			p := components.Projectile.Get(entry)
			obj := components.Object.Get(entry).Object
			if obj == nil {
				expired = append(expired, entry)
				return
			}

			var targetPos *gamemath.Vec2
			if p.Target != nil && p.Target.Valid() && p.Target.HasComponent(components.Object) {
				if tobj := components.Object.Get(p.Target).Object; tobj != nil {
					c := objectCenter(tobj)
					targetPos = &c
				}
			}

			done := stepProjectile(p, objectCenter(obj), targetPos, dt)

			dx, dy := p.Velocity.X*dt, p.Velocity.Y*dt
			if hitsWall(obj, dx, dy) {
				expired = append(expired, entry)
				return
			}
			obj.X += dx
			obj.Y += dy
			obj.Update()

			if target := struckMarble(entry, p); target != nil {
				hits = append(hits, projectileHit{projectile: entry, target: target})
				return
			}
			if done {
				expired = append(expired, entry)
			}
		})

		for _, h := range hits {
			resolveHit(pool, h)
		}
		for _, entry := range expired {
			if factory.IsPooled(entry) {
				continue
			}
			if obj := components.Object.Get(entry).Object; obj != nil {
				factory.CreateImpact(ecs, objectCenter(obj), cfg.DustColor)
			}
			pool.Despawn(entry)
		}
	}
}

// stepProjectile advances lifetime, homing and altitude. It returns true once
// the projectile has burnt out or, for arcing shots, landed.
func stepProjectile(p *components.ProjectileData, pos gamemath.Vec2, target *gamemath.Vec2, dt float64) bool {
	settings := factory.ProjectileSettings(p.Type)

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true
	}

	if target != nil && settings.TurnRate > 0 {
		desired := target.Sub(pos).Normalized()
		if !desired.IsZero() {
			p.Velocity = steer(p.Velocity, desired, settings.TurnRate*dt)
		}
	}

	if settings.Gravity > 0 {
		p.VerticalSpeed -= settings.Gravity * dt
		p.Altitude += p.VerticalSpeed * dt
		if p.Altitude <= 0 {
			p.Altitude = 0
			return true
		}
	}
	return false
}

// steer rotates vel toward desired by at most maxTurn radians, keeping its speed.
func steer(vel, desired gamemath.Vec2, maxTurn float64) gamemath.Vec2 {
	speed := vel.Magnitude()
	if speed == 0 {
		return vel
	}
	diff := desired.Angle() - vel.Angle()
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff < -math.Pi {
		diff += 2 * math.Pi
	}
	turn := gamemath.Clamp(diff, -maxTurn, maxTurn)
	return gamemath.FromAngle(vel.Angle() + turn).Scale(speed)
}

// hitsWall reports whether moving obj by (dx, dy) runs into a solid.
func hitsWall(obj *resolv.Object, dx, dy float64) bool {
	return blockingSolid(obj, dx, dy) != nil
}

// struckMarble returns a marble other than the owner's that overlaps the
// projectile at a close enough altitude.
func struckMarble(entry *donburi.Entry, p *components.ProjectileData) *donburi.Entry {
	obj := components.Object.Get(entry).Object
	check := obj.Check(0, 0, tags.ResolvMarble)
	if check == nil {
		return nil
	}
	for _, other := range check.ObjectsByTags(tags.ResolvMarble) {
		if !overlaps(obj, other) {
			continue
		}
		target, ok := other.Data.(*donburi.Entry)
		if !ok || target == p.Owner || !target.Valid() || !target.HasComponent(components.Marble) {
			continue
		}
		if math.Abs(components.Marble.Get(target).Altitude-p.Altitude) <= cfg.Projectile.HitAltitude {
			return target
		}
	}
	return nil
}

// resolveHit pushes the target along the projectile's flight and retires the
// projectile.
func resolveHit(pool *factory.Pool, h projectileHit) {
	if factory.IsPooled(h.projectile) {
		return
	}
	p := components.Projectile.Get(h.projectile)
	settings := factory.ProjectileSettings(p.Type)

	marble := components.Marble.Get(h.target)
	marble.Velocity = marble.Velocity.Add(p.Velocity.Normalized().Scale(settings.Knockback))

	ProjectileHit.Publish(pool.ECS().World, ProjectileHitEvent{
		Owner:    p.Owner,
		Target:   h.target,
		Type:     p.Type,
		Position: objectCenter(components.Object.Get(h.projectile).Object),
	})
	pool.Despawn(h.projectile)
}
