package components

import (
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData is one split-screen view that follows a player's marble.
type CameraData struct {
	PlayerIndex int
	Target      *donburi.Entry
	Viewport    gamemath.Rect // normalized, y from the bottom
	CullingMask uint32
	Position    gamemath.Vec2 // world point at the viewport centre
	Offset      gamemath.Vec2 // shake offset for this frame
}

var Camera = donburi.NewComponentType[CameraData]()
