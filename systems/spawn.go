package systems

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/leveldata"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/automoto/marbledrones/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrNotEnoughSpawns is returned when an arena has fewer spawn points than
// local players.
var ErrNotEnoughSpawns = errors.New("not enough spawn points for players")

// placementTries bounds the search for a pickup spot clear of walls.
const placementTries = 8

// ChooseSpawnPoints picks n distinct spawn points at random. Players left
// without a point are placed at fallback and ErrNotEnoughSpawns is returned.
func ChooseSpawnPoints(points []leveldata.SpawnPoint, n int, fallback gamemath.Vec2, rng *rand.Rand) ([]gamemath.Vec2, error) {
	available := make([]leveldata.SpawnPoint, len(points))
	copy(available, points)

	out := make([]gamemath.Vec2, 0, n)
	for i := 0; i < n; i++ {
		if len(available) == 0 {
			out = append(out, fallback)
			continue
		}
		pick := rng.Intn(len(available))
		out = append(out, gamemath.Vec2{X: available[pick].X, Y: available[pick].Y})
		available = append(available[:pick], available[pick+1:]...)
	}

	if len(points) < n {
		return out, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughSpawns, len(points), n)
	}
	return out, nil
}

// RandomPickupPlacement picks a ground position inside the arena's pickup
// zone, a drop altitude of 25..100 and a rotation of 0..359 degrees.
func RandomPickupPlacement(arena *leveldata.ArenaData, rng *rand.Rand) (pos gamemath.Vec2, altitude, rotation float64) {
	zone := arena.PickupZone
	for try := 0; try < placementTries; try++ {
		pos = gamemath.Vec2{
			X: zone.X + rng.Float64()*zone.W,
			Y: zone.Y + rng.Float64()*zone.H,
		}
		if !insideWall(arena.Walls, pos) {
			break
		}
	}
	altitude = cfg.Pickup.MinSpawnAltitude + rng.Float64()*cfg.Pickup.SpawnAltitudeRange
	rotation = float64(rng.Intn(360))
	return pos, altitude, rotation
}

func insideWall(walls []leveldata.SolidRect, p gamemath.Vec2) bool {
	for _, w := range walls {
		if p.X >= w.X && p.X <= w.X+w.W && p.Y >= w.Y && p.Y <= w.Y+w.H {
			return true
		}
	}
	return false
}

// SetupMatch spawns the arena, one marble and camera per local player, and
// the starting pickups. A spawn shortage is returned as an error after every
// player has still been placed.
func SetupMatch(e *ecs.ECS, pool *factory.Pool, arena *leveldata.ArenaData, match cfg.MatchConfig, pads []PadInfo, rng *rand.Rand) ([]*donburi.Entry, error) {
	count := cfg.ClampPlayerCount(match.LocalPlayerCount)
	factory.CreateArena(e, arena, rng, count, match.PickupRespawnSeconds)

	center := gamemath.Vec2{X: float64(arena.MapWidth) / 2, Y: float64(arena.MapHeight) / 2}
	spawns, err := ChooseSpawnPoints(arena.SpawnPoints, count, center, rng)
	if err != nil {
		err = fmt.Errorf("arena %s: %w", arena.Name, err)
	}

	players := make([]*donburi.Entry, 0, count)
	for i := 0; i < count; i++ {
		binding, _ := BindDevice(i, pads)
		player := factory.CreatePlayer(e, i, spawns[i], binding)
		factory.CreateCamera(e, player, i, count)
		players = append(players, player)
	}

	SpawnPickups(e, pool, match.PickupsPerType)
	return players, err
}

// SpawnPickups drops perType pickups of every drone type at random spots.
func SpawnPickups(e *ecs.ECS, pool *factory.Pool, perType int) {
	for _, t := range loadout.Types {
		for i := 0; i < perType; i++ {
			SpawnRandomPickup(e, pool, t)
		}
	}
}

// SpawnRandomPickup drops one pickup of type t at a random spot in the arena.
func SpawnRandomPickup(e *ecs.ECS, pool *factory.Pool, t loadout.DroneType) *donburi.Entry {
	entry, ok := components.Arena.First(e.World)
	if !ok {
		return nil
	}
	arena := components.Arena.Get(entry)
	if arena.Data == nil || arena.Rng == nil {
		return nil
	}

	pos, altitude, rotation := RandomPickupPlacement(arena.Data, arena.Rng)
	return factory.SpawnPickup(pool, t, pos, altitude, rotation)
}
