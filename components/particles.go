package components

import (
	"image/color"

	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Particle is a single simulated point.
type Particle struct {
	Position gamemath.Vec2
	Velocity gamemath.Vec2
	Altitude float64
	Climb    float64 // upward speed
	Life     float64 // seconds left
	MaxLife  float64
	Size     float64
	Color    color.RGBA
}

// Emitter is a point particle emitter. Rate is in particles per second while
// Playing; Burst emits BurstCount particles once on the next update.
type Emitter struct {
	Playing    bool
	Rate       float64
	StartSize  float64
	StartSpeed float64
	StartColor color.RGBA
	Spread     float64 // radians either side of Direction
	Direction  gamemath.Vec2
	Lift       float64 // upward speed given to new particles

	BurstCount int
	burst      bool
	carry      float64

	Particles []Particle
}

// Play starts continuous emission.
func (e *Emitter) Play() { e.Playing = true }

// Stop halts emission; live particles finish their lifetime.
func (e *Emitter) Stop() { e.Playing = false }

// Burst queues a one-shot burst.
func (e *Emitter) Burst() { e.burst = true }

// BurstQueued reports whether a burst is waiting to be emitted.
func (e *Emitter) BurstQueued() bool { return e.burst }

// Take returns how many particles to spawn for this step and clears the
// queued burst.
func (e *Emitter) Take(dt float64) int {
	n := 0
	if e.burst {
		n += e.BurstCount
		e.burst = false
	}
	if e.Playing && e.Rate > 0 {
		e.carry += e.Rate * dt
		whole := int(e.carry)
		e.carry -= float64(whole)
		n += whole
	} else {
		e.carry = 0
	}
	return n
}

// WheelParticlesData holds the emitters that give feedback for one marble.
type WheelParticlesData struct {
	Dust     Emitter
	Charge   Emitter
	DashJets Emitter
	JumpJets Emitter
	DropJets Emitter

	JumpBurst Emitter
	DropBurst Emitter
	DashBurst Emitter
}

// All returns every emitter in draw order.
func (w *WheelParticlesData) All() []*Emitter {
	return []*Emitter{
		&w.Dust, &w.Charge, &w.DashJets, &w.JumpJets, &w.DropJets,
		&w.JumpBurst, &w.DropBurst, &w.DashBurst,
	}
}

var WheelParticles = donburi.NewComponentType[WheelParticlesData]()

// ImpactData is a standalone burst left where a projectile hit.
type ImpactData struct {
	Position gamemath.Vec2
	Emitter  Emitter
}

var Impact = donburi.NewComponentType[ImpactData]()
