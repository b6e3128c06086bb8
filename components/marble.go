package components

import (
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/yohamta/donburi"
)

// MarbleData is the rolling body a player drives. Position lives on the
// entry's collision object; Altitude is the height above the arena floor.
type MarbleData struct {
	Velocity        gamemath.Vec2
	Heading         gamemath.Vec2 // last non-zero movement direction
	Altitude        float64
	VerticalSpeed   float64 // positive is up
	Grounded        bool
	AngularVelocity float64 // radians per second
	Spin            float64 // accumulated roll angle for drawing

	// JumpFired and DropFired stay set until the marble lands again.
	JumpFired bool
	DropFired bool

	// Dash is the cooldown meter: a dash fills it to MaxDash and it drains
	// back to zero. Dashing needs an empty meter.
	Dash    float64
	MaxDash float64

	Radius float64
}

var Marble = donburi.NewComponentType[MarbleData]()
