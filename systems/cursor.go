package systems

import (
	"github.com/automoto/marbledrones/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCursorLock captures the mouse cursor on a left click and releases it
// on Escape.
func UpdateCursorLock(ecs *ecs.ECS) {
	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(entry)

	switch {
	case arena.CursorGrab && inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		arena.CursorGrab = false
	case !arena.CursorGrab && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		arena.CursorGrab = true
	}
}
