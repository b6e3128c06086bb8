package systems

import (
	"math"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// landingShakeSpeed is the impact speed above which a drop landing shakes the camera.
const landingShakeSpeed = 300

// marbleEvents reports what happened to a marble during one step.
type marbleEvents struct {
	Jumped       bool
	Dropped      bool
	Dashed       bool
	Landed       bool
	LandingSpeed float64
}

// UpdateMarbles moves every player's marble from its input.
func UpdateMarbles(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()

	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		marble := components.Marble.Get(entry)
		obj := components.Object.Get(entry).Object
		if obj == nil {
			return
		}

		ev := stepMarble(marble, input, dt)
		if moveMarble(obj, marble, dt) {
			PlaySFX(ecs, cfg.SoundBounce)
		}
		bumpMarbles(obj, marble)

		switch {
		case ev.Jumped:
			PlaySFX(ecs, cfg.SoundJump)
			TriggerSquashStretch(entry, 0.8, 1.2)
		case ev.Dropped:
			PlaySFX(ecs, cfg.SoundDrop)
		}
		if ev.Dashed {
			PlaySFX(ecs, cfg.SoundDash)
		}
		if ev.Landed {
			PlaySFX(ecs, cfg.SoundLand)
			TriggerSquashStretch(entry, 1.25, 0.8)
			if ev.LandingSpeed > landingShakeSpeed {
				TriggerScreenShake(ecs.World, components.Player.Get(entry).Index, cfg.ScreenShake.DropIntensity, cfg.ScreenShake.DropDuration)
			}
		}
	})
}

// stepMarble applies input, dash and vertical motion for one step. It does not
// touch the collision object.
func stepMarble(m *components.MarbleData, input *components.PlayerInputData, dt float64) marbleEvents {
	var ev marbleEvents

	// Horizontal acceleration
	accel := cfg.Marble.Acceleration
	if !m.Grounded {
		accel *= cfg.Marble.AirControl
	}
	m.Velocity = m.Velocity.Add(input.LeftStick.Scale(accel * dt))
	if m.Grounded {
		m.Velocity = gamemath.ApplyFriction(m.Velocity, cfg.Marble.Friction*dt)
	}

	// Dash meter drains; a dash needs it empty
	m.Dash = math.Max(0, m.Dash-cfg.Marble.DashDecay*dt)
	if input.Dash && m.Dash <= 0 {
		dir := input.DashVector
		if dir.IsZero() {
			dir = m.Heading
		}
		m.Velocity = m.Velocity.Add(dir.Normalized().Scale(cfg.Marble.DashImpulse))
		m.Dash = m.MaxDash
		ev.Dashed = true
	}

	limit := cfg.Marble.MaxSpeed
	if m.MaxDash > 0 {
		limit += cfg.Marble.DashImpulse * (m.Dash / m.MaxDash)
	}
	m.Velocity = m.Velocity.ClampMagnitude(limit)

	speed := m.Velocity.Magnitude()
	if speed > 1 {
		m.Heading = m.Velocity.Scale(1 / speed)
	}
	if m.Radius > 0 {
		m.AngularVelocity = speed / m.Radius
	}
	m.Spin = math.Mod(m.Spin+m.AngularVelocity*dt, 2*math.Pi)

	// Jump and drop fire on the press edge
	if GetPlayerAction(input, cfg.ActionJump).JustPressed && m.Grounded {
		m.VerticalSpeed = cfg.Marble.JumpSpeed
		m.Grounded = false
		m.JumpFired = true
		ev.Jumped = true
	} else if GetPlayerAction(input, cfg.ActionDrop).JustPressed && !m.Grounded && !m.DropFired {
		m.VerticalSpeed = -cfg.Marble.DropSpeed
		m.DropFired = true
		ev.Dropped = true
	}

	if !m.Grounded {
		m.VerticalSpeed -= cfg.Marble.Gravity * dt
		m.Altitude += m.VerticalSpeed * dt
		if m.Altitude <= 0 {
			ev.Landed = true
			ev.LandingSpeed = -m.VerticalSpeed
			m.Altitude = 0
			m.VerticalSpeed = 0
			m.Grounded = true
			m.JumpFired = false
			m.DropFired = false
		}
	}

	return ev
}

// moveMarble sweeps the marble's collision object along its velocity, bouncing
// off solid walls. Returns true when a wall was hit.
func moveMarble(obj *resolv.Object, m *components.MarbleData, dt float64) bool {
	bounced := false

	if dx := m.Velocity.X * dt; dx != 0 {
		if wall := blockingSolid(obj, dx, 0); wall != nil {
			if dx > 0 {
				dx = math.Max(0, wall.X-(obj.X+obj.W))
			} else {
				dx = math.Min(0, wall.X+wall.W-obj.X)
			}
			normal := gamemath.Vec2{X: -math.Copysign(1, m.Velocity.X)}
			m.Velocity = gamemath.Reflect(m.Velocity, normal, cfg.Marble.Restitution)
			bounced = true
		}
		obj.X += dx
	}

	if dy := m.Velocity.Y * dt; dy != 0 {
		if wall := blockingSolid(obj, 0, dy); wall != nil {
			if dy > 0 {
				dy = math.Max(0, wall.Y-(obj.Y+obj.H))
			} else {
				dy = math.Min(0, wall.Y+wall.H-obj.Y)
			}
			normal := gamemath.Vec2{Y: -math.Copysign(1, m.Velocity.Y)}
			m.Velocity = gamemath.Reflect(m.Velocity, normal, cfg.Marble.Restitution)
			bounced = true
		}
		obj.Y += dy
	}

	obj.Update()
	return bounced
}

// blockingSolid returns the nearest solid obj would overlap after moving by
// (dx, dy), or nil.
func blockingSolid(obj *resolv.Object, dx, dy float64) *resolv.Object {
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	x, y := obj.X+dx, obj.Y+dy
	var nearest *resolv.Object
	nearestDist := math.Inf(1)
	for _, s := range check.ObjectsByTags(tags.ResolvSolid) {
		if !(x < s.X+s.W && s.X < x+obj.W && y < s.Y+s.H && s.Y < y+obj.H) {
			continue
		}
		d := gamemath.Distance(objectCenter(obj), objectCenter(s))
		if d < nearestDist {
			nearest = s
			nearestDist = d
		}
	}
	return nearest
}

// bumpMarbles exchanges the approaching velocity component with any marble
// this one overlaps at a similar altitude.
func bumpMarbles(obj *resolv.Object, m *components.MarbleData) {
	check := obj.Check(0, 0, tags.ResolvMarble)
	if check == nil {
		return
	}

	center := objectCenter(obj)
	for _, other := range check.ObjectsByTags(tags.ResolvMarble) {
		if !overlaps(obj, other) {
			continue
		}
		otherEntry, ok := other.Data.(*donburi.Entry)
		if !ok || !otherEntry.Valid() || !otherEntry.HasComponent(components.Marble) {
			continue
		}
		om := components.Marble.Get(otherEntry)
		if math.Abs(om.Altitude-m.Altitude) > m.Radius*2 {
			continue
		}

		normal := objectCenter(other).Sub(center).Normalized()
		if normal.IsZero() {
			continue
		}
		approach := m.Velocity.Sub(om.Velocity).Dot(normal)
		if approach <= 0 {
			continue
		}
		impulse := normal.Scale(approach)
		m.Velocity = m.Velocity.Sub(impulse)
		om.Velocity = om.Velocity.Add(impulse)
	}
}

func objectCenter(obj *resolv.Object) gamemath.Vec2 {
	return gamemath.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
}

// overlaps is a bounds test; resolv checks only report shared cells.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
