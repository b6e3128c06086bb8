package factory

import (
	"math/rand"

	"github.com/automoto/marbledrones/archetypes"
	"github.com/automoto/marbledrones/components"
	"github.com/automoto/marbledrones/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Collision grid cell size in pixels.
const spaceCell = 16

// CreateArena spawns the arena singleton, its collision space and walls.
func CreateArena(ecs *ecs.ECS, data *leveldata.ArenaData, rng *rand.Rand, playerCount int, respawnSeconds float64) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{
		Data:        data,
		Rng:         rng,
		PlayerCount: playerCount,
	})
	components.PickupSpawner.SetValue(arena, components.PickupSpawnerData{
		RespawnSeconds: respawnSeconds,
	})

	CreateSpace(ecs, data.MapWidth, data.MapHeight, spaceCell, spaceCell)
	for _, w := range data.Walls {
		CreateWall(ecs, w.X, w.Y, w.W, w.H)
	}

	return arena
}
