package systems

import (
	"math"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/automoto/marbledrones/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tick = 1.0 / 60

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 480, 16, 16)
	return e
}

func spawnTestPlayer(e *ecs.ECS, idx int, pos gamemath.Vec2) *donburi.Entry {
	return factory.CreatePlayer(e, idx, pos, components.DeviceBinding{Kind: components.DeviceKeyboard})
}

// giveDrones fills the player's rack the way collecting pickups would.
func giveDrones(pool *factory.Pool, player *donburi.Entry, types ...loadout.DroneType) {
	p := components.Player.Get(player)
	for _, t := range types {
		award, ok := loadout.Convert(len(p.Drones), t)
		if !ok {
			return
		}
		p.Drones = append(p.Drones, factory.SpawnDrone(pool, player, award, gamemath.Vec2{}, 0, 0))
	}
}

// press marks an action as pressed this step and released last step.
func press(input *components.PlayerInputData, id cfg.ActionID) {
	input.PreviousInput[id] = false
	input.CurrentInput[id] = true
}

// hold marks an action as pressed on both this step and the last.
func hold(input *components.PlayerInputData, id cfg.ActionID) {
	input.PreviousInput[id] = true
	input.CurrentInput[id] = true
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
