// Package gesture turns sampled controller input into discrete dash triggers.
//
// Analog pads dash with a flick: the stick rests near the centre, snaps out past
// the outer ring and springs back inside the inner ring, all within a short
// window. Keyboards dash on the press of a single key.
package gesture

import (
	"fmt"

	"github.com/automoto/marbledrones/shared/gamemath"
)

// Default flick thresholds, as stick magnitudes, and the per-step window in seconds.
const (
	DefaultInnerZone = 0.25
	DefaultOuterZone = 0.75
	DefaultTimeout   = 0.2
)

// DashState is the progress of a stick flick.
type DashState int

const (
	DashOutside       DashState = iota // waiting for the stick to settle near the centre
	DashInnerZone                      // stick rested inside the inner ring
	DashExitedInner                    // stick snapped past the outer ring
	DashReturnedInner                  // stick sprang back inside the inner ring
	DashConsumed                       // trigger delivered, reset on the next step
)

func (s DashState) String() string {
	switch s {
	case DashOutside:
		return "Outside"
	case DashInnerZone:
		return "InnerZone"
	case DashExitedInner:
		return "ExitedInner"
	case DashReturnedInner:
		return "ReturnedInner"
	case DashConsumed:
		return "Consumed"
	}
	return fmt.Sprintf("DashState(%d)", int(s))
}

// StickDash recognises the flick gesture on an analog stick. The zero value is
// ready to use with the default thresholds.
type StickDash struct {
	InnerZone float64
	OuterZone float64
	Timeout   float64

	state     DashState
	timer     float64
	vector    gamemath.Vec2
	triggered bool
}

// NewStickDash returns a detector with explicit thresholds.
func NewStickDash(inner, outer, timeout float64) StickDash {
	return StickDash{InnerZone: inner, OuterZone: outer, Timeout: timeout}
}

func (d *StickDash) limits() (inner, outer, timeout float64) {
	inner, outer, timeout = d.InnerZone, d.OuterZone, d.Timeout
	if inner <= 0 {
		inner = DefaultInnerZone
	}
	if outer <= 0 {
		outer = DefaultOuterZone
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return inner, outer, timeout
}

// Step feeds one sample of the stick and the seconds elapsed since the last
// sample. It returns true on the single step that completes a flick.
func (d *StickDash) Step(stick gamemath.Vec2, dt float64) bool {
	inner, outer, timeout := d.limits()
	magnitude := stick.Magnitude()

	d.triggered = false

	if d.timer > 0 {
		d.timer -= dt
	}
	if d.timer <= 0 && d.state != DashOutside {
		d.state = DashOutside
	}

	if d.state == DashConsumed {
		d.state = DashOutside
		d.timer = 0
	}

	switch d.state {
	case DashOutside:
		if magnitude < inner {
			d.state = DashInnerZone
			d.timer = timeout
		}
	case DashInnerZone:
		if magnitude > outer {
			d.state = DashExitedInner
			d.timer = timeout
			d.vector = stick.Normalized()
		}
	case DashExitedInner:
		if magnitude < inner {
			d.state = DashReturnedInner
			d.timer = timeout
		}
	}

	if d.state == DashReturnedInner {
		d.triggered = true
		d.state = DashConsumed
		d.timer = timeout
	}

	return d.triggered
}

// Reset abandons any gesture in progress.
func (d *StickDash) Reset() {
	d.state = DashOutside
	d.timer = 0
	d.triggered = false
}

func (d *StickDash) State() DashState {
	return d.state
}

// Timer is the time left before the current state is abandoned.
func (d *StickDash) Timer() float64 {
	return d.timer
}

// Triggered reports whether the last Step completed a flick.
func (d *StickDash) Triggered() bool {
	return d.triggered
}

// Vector is the flick direction captured when the stick left the inner ring.
func (d *StickDash) Vector() gamemath.Vec2 {
	return d.vector
}

// KeyDash triggers on the rising edge of a dash key.
type KeyDash struct {
	prev      bool
	triggered bool
	vector    gamemath.Vec2
}

// Step samples the key and the current movement stick. A press captures the
// stick direction at that moment.
func (k *KeyDash) Step(pressed bool, stick gamemath.Vec2) bool {
	k.triggered = pressed && !k.prev
	if k.triggered {
		k.vector = stick.Normalized()
	}
	k.prev = pressed
	return k.triggered
}

func (k *KeyDash) Triggered() bool {
	return k.triggered
}

func (k *KeyDash) Vector() gamemath.Vec2 {
	return k.vector
}
