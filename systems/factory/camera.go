package factory

import (
	"github.com/automoto/marbledrones/archetypes"
	"github.com/automoto/marbledrones/components"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the split-screen view for player idx of count, looking
// at the player's marble.
func CreateCamera(ecs *ecs.ECS, player *donburi.Entry, idx, count int) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	var pos gamemath.Vec2
	if player.HasComponent(components.Object) {
		if obj := components.Object.Get(player).Object; obj != nil {
			pos = gamemath.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
		}
	}

	components.Camera.SetValue(camera, components.CameraData{
		PlayerIndex: idx,
		Target:      player,
		Viewport:    gamemath.CalculateViewport(count, idx),
		CullingMask: gamemath.CullingMask(idx),
		Position:    pos,
	})
	return camera
}
