package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles drives every marble's feedback emitters from its input and
// movement state, then simulates all live particles.
func UpdateParticles(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()

	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		rig := components.WheelParticles.Get(entry)
		input := components.PlayerInput.Get(entry)
		marble := components.Marble.Get(entry)
		obj := components.Object.Get(entry).Object
		if obj == nil {
			return
		}

		applyWheelRules(rig, input, marble)
		aimWheelEmitters(rig, input, marble)

		origin := objectCenter(obj)
		for _, em := range rig.All() {
			simulateEmitter(em, origin, marble.Altitude, dt)
		}
	})

	components.Impact.Each(ecs.World, func(entry *donburi.Entry) {
		impact := components.Impact.Get(entry)
		simulateEmitter(&impact.Emitter, impact.Position, 0, dt)
	})
}

// dashRatio is how full the marble's dash meter is, 0..1.
func dashRatio(m *components.MarbleData) float64 {
	if m.MaxDash <= 0 {
		return 0
	}
	return gamemath.Clamp(m.Dash/m.MaxDash, 0, 1)
}

// applyWheelRules sets emitter state from one marble's input and movement.
// It runs before the marble moves, so the fired flags still describe the
// previous step when a press edge arrives.
func applyWheelRules(rig *components.WheelParticlesData, input *components.PlayerInputData, m *components.MarbleData) {
	ratio := dashRatio(m)

	if m.Grounded {
		stick := input.LeftStick.Magnitude()
		rig.Dust.StartSpeed = stick * cfg.Particle.DustSpeedScale
		if stick > cfg.Particle.Deadzone {
			rig.Dust.Play()
		} else {
			rig.Dust.Stop()
		}

		if m.AngularVelocity > 0 {
			rig.Charge.Rate = m.AngularVelocity * cfg.Particle.ChargeRateScale * (1 - ratio)
			rig.Charge.Play()
		} else {
			rig.Charge.Stop()
		}
	} else {
		rig.Dust.Stop()
		rig.Charge.Stop()
	}

	rig.DashJets.Rate = ratio * cfg.Particle.DashRateScale
	rig.DashJets.StartSize = ratio * cfg.Particle.DashSizeScale
	rig.DashJets.Playing = ratio > 0

	jump := GetPlayerAction(input, cfg.ActionJump)
	if jump.Pressed {
		rig.JumpJets.Play()
		if jump.JustPressed && !m.JumpFired {
			rig.JumpBurst.Burst()
		}
	} else {
		rig.JumpJets.Stop()
	}

	drop := GetPlayerAction(input, cfg.ActionDrop)
	if drop.Pressed {
		rig.DropJets.Play()
		if drop.JustPressed && !m.DropFired {
			rig.DropBurst.Burst()
		}
	} else {
		rig.DropJets.Stop()
	}

	if input.Dash {
		rig.DashBurst.Burst()
	}
}

// aimWheelEmitters points the trailing emitters behind the marble.
func aimWheelEmitters(rig *components.WheelParticlesData, input *components.PlayerInputData, m *components.MarbleData) {
	behind := m.Heading.Scale(-1)
	rig.Dust.Direction = behind
	rig.DashJets.Direction = behind

	if input.Dash && !input.DashVector.IsZero() {
		rig.DashBurst.Direction = input.DashVector.Normalized().Scale(-1)
	} else {
		rig.DashBurst.Direction = behind
	}
}

// simulateEmitter spawns this step's particles at origin and ages the rest.
func simulateEmitter(em *components.Emitter, origin gamemath.Vec2, altitude, dt float64) {
	scale := cfg.Particle.WorldScale

	for n := em.Take(dt); n > 0 && len(em.Particles) < cfg.Particle.MaxPerEmitter; n-- {
		em.Particles = append(em.Particles, components.Particle{
			Position: origin,
			Velocity: emitDirection(em).Scale(em.StartSpeed * scale * (0.5 + rand.Float64()*0.5)),
			Altitude: altitude,
			Climb:    em.Lift * scale,
			Life:     cfg.Particle.Lifetime,
			MaxLife:  cfg.Particle.Lifetime,
			Size:     em.StartSize * scale,
			Color:    em.StartColor,
		})
	}

	drag := math.Max(0, 1-cfg.Particle.Drag*dt)
	live := em.Particles[:0]
	for _, p := range em.Particles {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		p.Velocity = p.Velocity.Scale(drag)
		p.Altitude = math.Max(0, p.Altitude+p.Climb*dt)
		live = append(live, p)
	}
	em.Particles = live
}

// emitDirection picks a unit vector within Spread of Direction, or any
// direction when the emitter has none.
func emitDirection(em *components.Emitter) gamemath.Vec2 {
	if em.Direction.IsZero() {
		return gamemath.FromAngle(rand.Float64() * 2 * math.Pi)
	}
	angle := em.Direction.Angle() + (rand.Float64()*2-1)*em.Spread
	return gamemath.FromAngle(angle)
}
