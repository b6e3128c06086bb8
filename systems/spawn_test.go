package systems

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/leveldata"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/automoto/marbledrones/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestChooseSpawnPointsDistinct(t *testing.T) {
	points := []leveldata.SpawnPoint{
		{X: 10, Y: 10, Index: 0},
		{X: 20, Y: 10, Index: 1},
		{X: 10, Y: 20, Index: 2},
		{X: 20, Y: 20, Index: 3},
	}
	rng := rand.New(rand.NewSource(1))

	for round := 0; round < 20; round++ {
		got, err := ChooseSpawnPoints(points, 4, gamemath.Vec2{}, rng)
		if err != nil {
			t.Fatalf("ChooseSpawnPoints() error = %v", err)
		}
		seen := map[gamemath.Vec2]bool{}
		for _, p := range got {
			if seen[p] {
				t.Fatalf("spawn %v handed out twice: %v", p, got)
			}
			seen[p] = true
		}
	}
}

func TestChooseSpawnPointsFallback(t *testing.T) {
	points := []leveldata.SpawnPoint{{X: 5, Y: 5}, {X: 15, Y: 5}}
	fallback := gamemath.Vec2{X: 100, Y: 100}

	got, err := ChooseSpawnPoints(points, 3, fallback, rand.New(rand.NewSource(2)))
	if !errors.Is(err, ErrNotEnoughSpawns) {
		t.Fatalf("error = %v, want ErrNotEnoughSpawns", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d positions, want 3", len(got))
	}
	if got[2] != fallback {
		t.Errorf("third player at %v, want fallback %v", got[2], fallback)
	}
	if got[0] == fallback || got[1] == fallback {
		t.Errorf("real spawn points not used first: %v", got)
	}
}

func TestRandomPickupPlacement(t *testing.T) {
	arena := &leveldata.ArenaData{
		PickupZone: leveldata.SolidRect{X: 0, Y: 0, W: 200, H: 200},
		Walls:      []leveldata.SolidRect{{X: 0, Y: 0, W: 100, H: 200}},
	}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		pos, alt, rot := RandomPickupPlacement(arena, rng)
		if pos.X < 0 || pos.X > 200 || pos.Y < 0 || pos.Y > 200 {
			t.Fatalf("position %v outside the pickup zone", pos)
		}
		minAlt := cfg.Pickup.MinSpawnAltitude
		if alt < minAlt || alt > minAlt+cfg.Pickup.SpawnAltitudeRange {
			t.Fatalf("altitude %v outside [%v, %v]", alt, minAlt, minAlt+cfg.Pickup.SpawnAltitudeRange)
		}
		if rot < 0 || rot >= 360 || rot != float64(int(rot)) {
			t.Fatalf("rotation %v is not a whole degree in [0, 360)", rot)
		}
	}
}

func TestSetupMatchClampsAndFallsBack(t *testing.T) {
	arena := &leveldata.ArenaData{
		Name:      "short",
		MapWidth:  640,
		MapHeight: 480,
		SpawnPoints: []leveldata.SpawnPoint{
			{X: 64, Y: 64, Index: 0},
			{X: 576, Y: 64, Index: 1},
			{X: 64, Y: 416, Index: 2},
		},
		PickupZone: leveldata.SolidRect{X: 32, Y: 32, W: 576, H: 416},
	}
	match := cfg.MatchConfig{LocalPlayerCount: 9, PickupsPerType: 5}

	e := ecs.NewECS(donburi.NewWorld())
	pool := factory.NewPool(e)
	players, err := SetupMatch(e, pool, arena, match, nil, rand.New(rand.NewSource(7)))

	if !errors.Is(err, ErrNotEnoughSpawns) {
		t.Fatalf("SetupMatch() error = %v, want ErrNotEnoughSpawns", err)
	}
	if len(players) != cfg.MaxLocalPlayers {
		t.Fatalf("players = %d, want %d", len(players), cfg.MaxLocalPlayers)
	}

	center := gamemath.Vec2{X: 320, Y: 240}
	atCenter := 0
	seen := map[gamemath.Vec2]bool{}
	for _, p := range players {
		spawn := components.Player.Get(p).Spawn
		if spawn == center {
			atCenter++
			continue
		}
		if seen[spawn] {
			t.Errorf("spawn %v used twice", spawn)
		}
		seen[spawn] = true
	}
	if atCenter != 1 {
		t.Errorf("players at the arena centre = %d, want 1", atCenter)
	}

	if got := cameraQuery.Count(e.World); got != len(players) {
		t.Fatalf("cameras = %d, want %d", got, len(players))
	}
	cameraQuery.Each(e.World, func(entry *donburi.Entry) {
		c := components.Camera.Get(entry)
		idx := c.PlayerIndex
		if c.Target != players[idx] {
			t.Errorf("camera %d does not follow player %d", idx, idx)
		}
		if want := gamemath.CalculateViewport(len(players), idx); c.Viewport != want {
			t.Errorf("camera %d viewport = %v, want %v", idx, c.Viewport, want)
		}
		if want := gamemath.CullingMask(idx); c.CullingMask != want {
			t.Errorf("camera %d mask = %#x, want %#x", idx, c.CullingMask, want)
		}
	})

	perType := map[loadout.DroneType]int{}
	pickupQuery.Each(e.World, func(entry *donburi.Entry) {
		perType[components.Pickup.Get(entry).Type]++
	})
	for _, dt := range loadout.Types {
		if perType[dt] != match.PickupsPerType {
			t.Errorf("%v pickups = %d, want %d", dt, perType[dt], match.PickupsPerType)
		}
	}
}
